package models

import (
	"github.com/shopspring/decimal"
)

// Account is the database representation of a per-currency balance.
type Account struct {
	AccountID string          `db:"account_id"`
	UserID    string          `db:"user_id"`
	Currency  string          `db:"currency"`
	Balance   decimal.Decimal `db:"balance"`
	AuditFields
}
