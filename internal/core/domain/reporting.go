package domain

import (
	"github.com/shopspring/decimal"
)

// WalletSummary aggregates a wallet's transactions in home-currency terms.
// TotalSpent is always TotalPreTrip + TotalDuringTrip. Transactions without
// a category contribute to the totals but not to CategoryTotals.
type WalletSummary struct {
	WalletID        string                     `json:"walletID"`
	HomeCurrency    string                     `json:"homeCurrency"`
	TotalPreTrip    decimal.Decimal            `json:"totalPreTrip"`
	TotalDuringTrip decimal.Decimal            `json:"totalDuringTrip"`
	TotalSpent      decimal.Decimal            `json:"totalSpent"`
	CategoryTotals  map[string]decimal.Decimal `json:"categoryTotals"`
}
