package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelState records the currently active destination for a user. There is
// at most one per user; each activation overwrites the previous one.
type TravelState struct {
	UserID         string    `json:"userID"` // Primary Key, FK -> users.user_id
	CurrentCountry string    `json:"currentCountry"`
	LocalCurrency  string    `json:"localCurrency"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// TravelWallet is a named container for one trip's transactions and budget.
// Wallets are created explicitly and never auto-deleted.
type TravelWallet struct {
	WalletID    string           `json:"walletID"` // Primary Key (UUID)
	UserID      string           `json:"userID"`   // FK -> users.user_id
	Name        string           `json:"name"`
	CountryCode string           `json:"countryCode"`
	Currency    string           `json:"currency"`
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	SoftBudget  *decimal.Decimal `json:"softBudget,omitempty"` // Warning threshold
	HardBudget  *decimal.Decimal `json:"hardBudget,omitempty"` // Reporting-only, never enforced
	IsActive    bool             `json:"isActive"`
	AuditFields
}

// WalletTransaction is a single spend recorded against a travel wallet.
// Transactions are immutable once created. AmountHome is the home-currency
// equivalent computed with the rate in effect at creation time and is never
// recomputed if rates change later.
//
// Note: the transaction does not reference the account that actually funded
// it. When the local-currency pocket is empty the home account pays, but the
// transaction still records the local amount and currency only.
type WalletTransaction struct {
	TransactionID string           `json:"transactionID"` // Primary Key (UUID)
	WalletID      string           `json:"walletID"`      // FK -> travel_wallets.wallet_id
	UserID        string           `json:"userID"`        // FK -> users.user_id
	Description   string           `json:"description"`
	Category      string           `json:"category,omitempty"` // Optional, e.g. "Food"
	AmountLocal   decimal.Decimal  `json:"amountLocal"`
	CurrencyLocal string           `json:"currencyLocal"`
	AmountHome    *decimal.Decimal `json:"amountHome,omitempty"`
	CurrencyHome  string           `json:"currencyHome,omitempty"`
	IsPreTrip     bool             `json:"isPreTrip"`
	CreatedAt     time.Time        `json:"createdAt"`
}
