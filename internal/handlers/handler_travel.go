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

// travelHandler handles travel mode, wallets, spends and guides.
type travelHandler struct {
	travelService portssvc.TravelSvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

func newTravelHandler(ts portssvc.TravelSvcFacade, ls portssvc.LedgerSvcFacade) *travelHandler {
	return &travelHandler{
		travelService: ts,
		ledgerService: ls,
	}
}

// RegisterTravelRoutes registers travel-mode and wallet routes. Spend
// recording shares the rate limit applied to exchanges.
func RegisterTravelRoutes(rg *gin.RouterGroup, travelService portssvc.TravelSvcFacade, ledgerService portssvc.LedgerSvcFacade, rateLimit gin.HandlerFunc) {
	h := newTravelHandler(travelService, ledgerService)

	travel := rg.Group("/travel")
	{
		travel.POST("/activate", h.activateTravelMode)
		travel.GET("/state", h.getTravelState)
		travel.GET("/guides/:countryCode", h.getGuide)

		wallets := travel.Group("/wallets")
		{
			wallets.POST("", h.createWallet)
			wallets.GET("", h.listWallets)
			wallets.GET("/:walletID", h.getWalletDetail)
			wallets.POST("/:walletID/transactions", rateLimit, h.recordSpend)
			wallets.GET("/:walletID/transactions", h.listTransactions)
			wallets.GET("/:walletID/summary", h.getSummary)
		}
	}
}

// activateTravelMode godoc
// @Summary Activate travel mode for a destination country
// @Description Overwrites any previous travel state and pre-creates the local-currency account
// @Tags travel
// @Accept  json
// @Produce  json
// @Param   destination body dto.ActivateTravelModeRequest true "Destination country"
// @Success 200 {object} dto.TravelStateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /travel/activate [post]
func (h *travelHandler) activateTravelMode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ActivateTravelModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ActivateTravelMode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.travelService.ActivateTravelMode(c.Request.Context(), userID, req.CountryCode)
	if err != nil {
		logger.Error("Failed to activate travel mode", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate travel mode"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTravelStateResponse(state))
}

// getTravelState godoc
// @Summary Get the user's active travel state
// @Tags travel
// @Produce  json
// @Success 200 {object} dto.TravelStateResponse
// @Failure 404 {object} map[string]string "Travel mode never activated"
// @Security BearerAuth
// @Router /travel/state [get]
func (h *travelHandler) getTravelState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	state, err := h.travelService.GetTravelState(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Travel mode has not been activated"})
		} else {
			logger.Error("Failed to get travel state", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get travel state"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTravelStateResponse(state))
}

// getGuide godoc
// @Summary Get the spending guide for a country
// @Tags travel
// @Produce  json
// @Param   countryCode path string true "ISO-3166 country code"
// @Success 200 {object} dto.TravelGuideResponse
// @Failure 404 {object} map[string]string "No guide for this country"
// @Security BearerAuth
// @Router /travel/guides/{countryCode} [get]
func (h *travelHandler) getGuide(c *gin.Context) {
	guide, err := h.travelService.GetGuide(c.Param("countryCode"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No guide available for this country"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get guide"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTravelGuideResponse(guide))
}

// createWallet godoc
// @Summary Create a travel wallet for a trip
// @Tags travel-wallets
// @Accept  json
// @Produce  json
// @Param   wallet body dto.CreateWalletRequest true "Wallet details"
// @Success 201 {object} dto.WalletResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /travel/wallets [post]
func (h *travelHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.travelService.CreateWallet(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wallet"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWalletResponse(wallet))
}

// listWallets godoc
// @Summary List the user's travel wallets
// @Tags travel-wallets
// @Produce  json
// @Success 200 {array} dto.WalletResponse
// @Security BearerAuth
// @Router /travel/wallets [get]
func (h *travelHandler) listWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	wallets, err := h.travelService.ListWallets(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list wallets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list wallets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWalletResponse(wallets))
}

// getWalletDetail godoc
// @Summary Get a wallet with its transactions, summary and destination guide
// @Tags travel-wallets
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Success 200 {object} dto.WalletDetailResponse
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /travel/wallets/{walletID} [get]
func (h *travelHandler) getWalletDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	walletID := c.Param("walletID")

	wallet, err := h.travelService.GetWallet(c.Request.Context(), userID, walletID)
	if err != nil {
		h.respondWalletError(c, logger, err)
		return
	}

	txns, err := h.travelService.ListTransactions(c.Request.Context(), userID, walletID)
	if err != nil {
		h.respondWalletError(c, logger, err)
		return
	}

	summary, err := h.ledgerService.SummarizeWallet(c.Request.Context(), userID, walletID)
	if err != nil {
		h.respondWalletError(c, logger, err)
		return
	}

	detail := dto.WalletDetailResponse{
		Wallet:       dto.ToWalletResponse(wallet),
		Transactions: dto.ToListTransactionResponse(txns),
		Summary:      dto.ToWalletSummaryResponse(summary),
	}
	// The guide is a bonus; its absence doesn't fail the detail view.
	if guide, err := h.travelService.GetGuide(wallet.CountryCode); err == nil {
		guideDTO := dto.ToTravelGuideResponse(guide)
		detail.Guide = &guideDTO
	}

	c.JSON(http.StatusOK, detail)
}

// recordSpend godoc
// @Summary Record a spend against a wallet
// @Description Debits the local-currency account in full, or the home account at the converted amount when the local pocket cannot cover it
// @Tags travel-wallets
// @Accept  json
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Param   spend body dto.RecordSpendRequest true "Spend details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Security BearerAuth
// @Router /travel/wallets/{walletID}/transactions [post]
func (h *travelHandler) recordSpend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RecordSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSpend", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req.CurrencyLocal = strings.ToUpper(req.CurrencyLocal)

	txn, err := h.ledgerService.RecordSpend(c.Request.Context(), userID, c.Param("walletID"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		} else if errors.Is(err, apperrors.ErrInsufficientBalance) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record spend", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record spend"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List a wallet's transactions
// @Tags travel-wallets
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /travel/wallets/{walletID}/transactions [get]
func (h *travelHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txns, err := h.travelService.ListTransactions(c.Request.Context(), userID, c.Param("walletID"))
	if err != nil {
		h.respondWalletError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// getSummary godoc
// @Summary Get a wallet's spending summary in home-currency terms
// @Tags travel-wallets
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Success 200 {object} dto.WalletSummaryResponse
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /travel/wallets/{walletID}/summary [get]
func (h *travelHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.ledgerService.SummarizeWallet(c.Request.Context(), userID, c.Param("walletID"))
	if err != nil {
		h.respondWalletError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletSummaryResponse(summary))
}

// respondWalletError maps wallet lookup failures to HTTP responses.
func (h *travelHandler) respondWalletError(c *gin.Context, logger *slog.Logger, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		return
	}
	logger.Error("Wallet operation failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Wallet operation failed"})
}
