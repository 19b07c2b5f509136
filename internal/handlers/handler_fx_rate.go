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

// fxRateHandler handles the static exchange-rate table and pair resolution.
type fxRateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newFxRateHandler(rs portssvc.RateSvcFacade) *fxRateHandler {
	return &fxRateHandler{rateService: rs}
}

// registerFxRateRoutes registers routes related to exchange rates.
func registerFxRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newFxRateHandler(rateService)

	rates := rg.Group("/fx-rates")
	{
		rates.POST("", h.createFxRate)
		rates.GET("", h.listFxRates)
		rates.GET("/:base/:quote", h.resolveQuote)
	}
}

// createFxRate godoc
// @Summary Store a new exchange rate
// @Tags fx-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateFxRateRequest true "Rate details"
// @Success 201 {object} dto.FxRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Rate already exists for this pair"
// @Security BearerAuth
// @Router /fx-rates [post]
func (h *fxRateHandler) createFxRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFxRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req.BaseCurrency = strings.ToUpper(req.BaseCurrency)
	req.QuoteCurrency = strings.ToUpper(req.QuoteCurrency)

	rate, err := h.rateService.CreateFxRate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "A rate for this pair already exists"})
		} else {
			logger.Error("Failed to create fx rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFxRateResponse(rate))
}

// listFxRates godoc
// @Summary List all stored exchange rates
// @Tags fx-rates
// @Produce  json
// @Success 200 {array} dto.FxRateResponse
// @Security BearerAuth
// @Router /fx-rates [get]
func (h *fxRateHandler) listFxRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rates, err := h.rateService.ListFxRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list fx rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFxRateResponse(rates))
}

// resolveQuote godoc
// @Summary Resolve the rate for a currency pair
// @Description Always returns a rate; the source field distinguishes real data from the 1:1 fallback
// @Tags fx-rates
// @Produce  json
// @Param   base  path string true "Base currency code"
// @Param   quote path string true "Quote currency code"
// @Success 200 {object} dto.RateQuoteResponse
// @Security BearerAuth
// @Router /fx-rates/{base}/{quote} [get]
func (h *fxRateHandler) resolveQuote(c *gin.Context) {
	base := strings.ToUpper(c.Param("base"))
	quote := strings.ToUpper(c.Param("quote"))

	resolved := h.rateService.ResolveRate(c.Request.Context(), base, quote)
	c.JSON(http.StatusOK, dto.ToRateQuoteResponse(resolved))
}
