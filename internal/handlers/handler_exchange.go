package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voyaplan/travel_wallet_app/internal/apperrors"
	portssvc "github.com/voyaplan/travel_wallet_app/internal/core/ports/services"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
	"github.com/voyaplan/travel_wallet_app/internal/middleware"
)

// exchangeHandler handles currency exchange between the user's accounts.
type exchangeHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newExchangeHandler(ls portssvc.LedgerSvcFacade) *exchangeHandler {
	return &exchangeHandler{ledgerService: ls}
}

// RegisterExchangeRoutes registers the exchange route with rate limiting.
func RegisterExchangeRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, rateLimit gin.HandlerFunc) {
	h := newExchangeHandler(ledgerService)

	rg.POST("/exchange", rateLimit, h.exchange)
}

// exchange godoc
// @Summary Exchange between two of the user's currency accounts
// @Description Debits fromCurrency and credits toCurrency atomically at the resolved rate
// @Tags exchange
// @Accept  json
// @Produce  json
// @Param   exchange body dto.ExchangeRequest true "Exchange details"
// @Success 200 {object} dto.ExchangeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Security BearerAuth
// @Router /exchange [post]
func (h *exchangeHandler) exchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Exchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req.FromCurrency = strings.ToUpper(req.FromCurrency)
	req.ToCurrency = strings.ToUpper(req.ToCurrency)

	result, err := h.ledgerService.Exchange(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrInsufficientBalance) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to exchange", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to exchange"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeResponse(result))
}
