package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
)

// ActivateTravelModeRequest defines the data needed to activate travel mode.
type ActivateTravelModeRequest struct {
	CountryCode string `json:"countryCode" binding:"required,len=2,alpha"`
}

// TravelStateResponse defines the data returned for the active travel state.
type TravelStateResponse struct {
	CurrentCountry string    `json:"currentCountry"`
	LocalCurrency  string    `json:"localCurrency"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// ToTravelStateResponse converts a domain.TravelState to its DTO.
func ToTravelStateResponse(s *domain.TravelState) TravelStateResponse {
	return TravelStateResponse{
		CurrentCountry: s.CurrentCountry,
		LocalCurrency:  s.LocalCurrency,
		LastUpdatedAt:  s.LastUpdatedAt,
	}
}

// CreateWalletRequest defines the data needed to create a travel wallet.
// Dates use YYYY-MM-DD; budgets are optional decimals.
type CreateWalletRequest struct {
	Name        string           `json:"name" binding:"required"`
	CountryCode string           `json:"countryCode" binding:"required,len=2,alpha"`
	Currency    string           `json:"currency" binding:"omitempty,currencycode"` // Defaults to the country's currency
	StartDate   string           `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string           `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	SoftBudget  *decimal.Decimal `json:"softBudget"`
	HardBudget  *decimal.Decimal `json:"hardBudget"`
}

// WalletResponse defines the data returned for a travel wallet.
type WalletResponse struct {
	WalletID    string           `json:"walletID"`
	Name        string           `json:"name"`
	CountryCode string           `json:"countryCode"`
	Currency    string           `json:"currency"`
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	SoftBudget  *decimal.Decimal `json:"softBudget,omitempty"`
	HardBudget  *decimal.Decimal `json:"hardBudget,omitempty"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ToWalletResponse converts a domain.TravelWallet to its DTO.
func ToWalletResponse(w *domain.TravelWallet) WalletResponse {
	return WalletResponse{
		WalletID:    w.WalletID,
		Name:        w.Name,
		CountryCode: w.CountryCode,
		Currency:    w.Currency,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		SoftBudget:  w.SoftBudget,
		HardBudget:  w.HardBudget,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
	}
}

// ToListWalletResponse converts a slice of domain.TravelWallet to DTOs.
func ToListWalletResponse(wallets []domain.TravelWallet) []WalletResponse {
	res := make([]WalletResponse, len(wallets))
	for i, w := range wallets {
		res[i] = ToWalletResponse(&w)
	}
	return res
}

// RecordSpendRequest defines the data needed to record a spend against a
// wallet. CurrencyLocal defaults to the wallet's currency when omitted.
type RecordSpendRequest struct {
	Description   string          `json:"description" binding:"required"`
	Category      string          `json:"category"`
	AmountLocal   decimal.Decimal `json:"amountLocal" binding:"required"`
	CurrencyLocal string          `json:"currencyLocal" binding:"omitempty,currencycode"`
	IsPreTrip     bool            `json:"isPreTrip"`
}

// TransactionResponse defines the data returned for a wallet transaction.
type TransactionResponse struct {
	TransactionID string           `json:"transactionID"`
	WalletID      string           `json:"walletID"`
	Description   string           `json:"description"`
	Category      string           `json:"category,omitempty"`
	AmountLocal   decimal.Decimal  `json:"amountLocal"`
	CurrencyLocal string           `json:"currencyLocal"`
	AmountHome    *decimal.Decimal `json:"amountHome,omitempty"`
	CurrencyHome  string           `json:"currencyHome,omitempty"`
	IsPreTrip     bool             `json:"isPreTrip"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ToTransactionResponse converts a domain.WalletTransaction to its DTO.
func ToTransactionResponse(t *domain.WalletTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		WalletID:      t.WalletID,
		Description:   t.Description,
		Category:      t.Category,
		AmountLocal:   t.AmountLocal,
		CurrencyLocal: t.CurrencyLocal,
		AmountHome:    t.AmountHome,
		CurrencyHome:  t.CurrencyHome,
		IsPreTrip:     t.IsPreTrip,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.WalletTransaction to DTOs.
func ToListTransactionResponse(txns []domain.WalletTransaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}

// WalletSummaryResponse defines the aggregated spending for a wallet.
type WalletSummaryResponse struct {
	WalletID        string                     `json:"walletID"`
	HomeCurrency    string                     `json:"homeCurrency"`
	TotalPreTrip    decimal.Decimal            `json:"totalPreTrip"`
	TotalDuringTrip decimal.Decimal            `json:"totalDuringTrip"`
	TotalSpent      decimal.Decimal            `json:"totalSpent"`
	CategoryTotals  map[string]decimal.Decimal `json:"categoryTotals"`
}

// ToWalletSummaryResponse converts a domain.WalletSummary to its DTO.
func ToWalletSummaryResponse(s *domain.WalletSummary) WalletSummaryResponse {
	return WalletSummaryResponse{
		WalletID:        s.WalletID,
		HomeCurrency:    s.HomeCurrency,
		TotalPreTrip:    s.TotalPreTrip,
		TotalDuringTrip: s.TotalDuringTrip,
		TotalSpent:      s.TotalSpent,
		CategoryTotals:  s.CategoryTotals,
	}
}

// TravelGuideResponse defines the static spending guide for a country.
type TravelGuideResponse struct {
	CountryCode string   `json:"countryCode"`
	Title       string   `json:"title"`
	Tips        []string `json:"tips"`
}

// ToTravelGuideResponse converts a domain.TravelGuide to its DTO.
func ToTravelGuideResponse(g *domain.TravelGuide) TravelGuideResponse {
	return TravelGuideResponse{
		CountryCode: g.CountryCode,
		Title:       g.Title,
		Tips:        g.Tips,
	}
}

// WalletDetailResponse bundles a wallet with its transactions, summary and
// the destination's guide (if one exists).
type WalletDetailResponse struct {
	Wallet       WalletResponse        `json:"wallet"`
	Transactions []TransactionResponse `json:"transactions"`
	Summary      WalletSummaryResponse `json:"summary"`
	Guide        *TravelGuideResponse  `json:"guide,omitempty"`
}
