package models

import (
	"github.com/shopspring/decimal"
)

// FxRate is the database representation of a stored exchange rate.
type FxRate struct {
	RateID        string          `db:"rate_id"`
	BaseCurrency  string          `db:"base_currency"`
	QuoteCurrency string          `db:"quote_currency"`
	Rate          decimal.Decimal `db:"rate"`
	AuditFields
}
