package dto

import (
	"github.com/shopspring/decimal"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
)

// ExchangeRequest defines the data needed to exchange between two of the
// user's currency accounts.
type ExchangeRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,currencycode"`
	ToCurrency   string          `json:"toCurrency" binding:"required,currencycode"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

// ExchangeResponse defines the data returned for a completed exchange.
type ExchangeResponse struct {
	FromAccount    AccountResponse   `json:"fromAccount"`
	ToAccount      AccountResponse   `json:"toAccount"`
	AmountDebited  decimal.Decimal   `json:"amountDebited"`
	AmountCredited decimal.Decimal   `json:"amountCredited"`
	Rate           RateQuoteResponse `json:"rate"`
}

// ToExchangeResponse converts a domain.ExchangeResult to its DTO.
func ToExchangeResponse(res *domain.ExchangeResult) ExchangeResponse {
	return ExchangeResponse{
		FromAccount:    ToAccountResponse(&res.FromAccount),
		ToAccount:      ToAccountResponse(&res.ToAccount),
		AmountDebited:  res.AmountDebited,
		AmountCredited: res.AmountCredited,
		Rate:           ToRateQuoteResponse(res.Quote),
	}
}
