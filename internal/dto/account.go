package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
)

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string          `json:"accountID"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: acc.AccountID,
		Currency:  acc.Currency,
		Balance:   acc.Balance,
		CreatedAt: acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
