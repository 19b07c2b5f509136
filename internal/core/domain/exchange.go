package domain

import (
	"github.com/shopspring/decimal"
)

// ExchangeResult describes a completed currency exchange: the debit and the
// credit are applied atomically, so the two accounts here always reflect a
// consistent post-exchange state.
type ExchangeResult struct {
	FromAccount    Account         `json:"fromAccount"`
	ToAccount      Account         `json:"toAccount"`
	AmountDebited  decimal.Decimal `json:"amountDebited"`
	AmountCredited decimal.Decimal `json:"amountCredited"`
	Quote          RateQuote       `json:"quote"`
}
