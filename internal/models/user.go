package models

// User is the database representation of an application user.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	HomeCurrency string `db:"home_currency"`
	AuditFields
}
