package domain

import (
	"github.com/shopspring/decimal"
)

// Account holds one user's balance in a single currency. At most one account
// exists per (user, currency) pair; accounts are created lazily with a zero
// balance on first reference.
type Account struct {
	AccountID string          `json:"accountID"` // Primary Key (UUID)
	UserID    string          `json:"userID"`    // FK -> users.user_id
	Currency  string          `json:"currency"`  // Opaque 3-letter code
	Balance   decimal.Decimal `json:"balance"`
	AuditFields
}
