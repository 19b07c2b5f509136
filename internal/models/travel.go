package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelState is the database representation of a user's active destination.
type TravelState struct {
	UserID         string    `db:"user_id"`
	CurrentCountry string    `db:"current_country"`
	LocalCurrency  string    `db:"local_currency"`
	LastUpdatedAt  time.Time `db:"last_updated_at"`
}

// TravelWallet is the database representation of a trip wallet.
type TravelWallet struct {
	WalletID    string           `db:"wallet_id"`
	UserID      string           `db:"user_id"`
	Name        string           `db:"name"`
	CountryCode string           `db:"country_code"`
	Currency    string           `db:"currency"`
	StartDate   *time.Time       `db:"start_date"`
	EndDate     *time.Time       `db:"end_date"`
	SoftBudget  *decimal.Decimal `db:"soft_budget"`
	HardBudget  *decimal.Decimal `db:"hard_budget"`
	IsActive    bool             `db:"is_active"`
	AuditFields
}

// WalletTransaction is the database representation of a recorded spend.
type WalletTransaction struct {
	TransactionID string           `db:"transaction_id"`
	WalletID      string           `db:"wallet_id"`
	UserID        string           `db:"user_id"`
	Description   string           `db:"description"`
	Category      string           `db:"category"`
	AmountLocal   decimal.Decimal  `db:"amount_local"`
	CurrencyLocal string           `db:"currency_local"`
	AmountHome    *decimal.Decimal `db:"amount_home"`
	CurrencyHome  string           `db:"currency_home"`
	IsPreTrip     bool             `db:"is_pre_trip"`
	CreatedAt     time.Time        `db:"created_at"`
}
