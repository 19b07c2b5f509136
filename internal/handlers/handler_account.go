package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/voyaplan/travel_wallet_app/internal/core/ports/services"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
	"github.com/voyaplan/travel_wallet_app/internal/middleware"
)

// accountHandler handles HTTP requests for the user's currency accounts.
type accountHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newAccountHandler(ls portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{ledgerService: ls}
}

// registerAccountRoutes registers routes related to currency accounts.
func registerAccountRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newAccountHandler(ledgerService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:currency", h.getAccount)
	}
}

// listAccounts godoc
// @Summary List the user's currency accounts
// @Description Accounts are created lazily; a currency never touched has no account yet
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accounts, err := h.ledgerService.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// getAccount godoc
// @Summary Get the account for a single currency
// @Description Creates the account at a zero balance when it does not exist yet
// @Tags accounts
// @Produce  json
// @Param currency path string true "ISO 4217 currency code"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /accounts/{currency} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	currency := strings.ToUpper(c.Param("currency"))

	account, err := h.ledgerService.GetOrCreateAccount(c.Request.Context(), userID, currency)
	if err != nil {
		logger.Error("Failed to get account", slog.String("currency", currency), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
