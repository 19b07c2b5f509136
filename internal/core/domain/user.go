package domain

// User represents an application user. The user is the aggregate root for
// accounts, the travel state, and travel wallets; deleting a user removes
// all of them.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	HomeCurrency string `json:"homeCurrency"` // Reporting currency, e.g. "EUR"
	AuditFields
}
