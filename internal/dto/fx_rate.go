package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
)

// CreateFxRateRequest defines the data needed to store a new exchange rate.
type CreateFxRateRequest struct {
	BaseCurrency  string          `json:"baseCurrency" binding:"required,currencycode"`
	QuoteCurrency string          `json:"quoteCurrency" binding:"required,currencycode"`
	Rate          decimal.Decimal `json:"rate" binding:"required"`
}

// FxRateResponse defines the data returned for a stored exchange rate.
type FxRateResponse struct {
	RateID        string          `json:"rateID"`
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	Rate          decimal.Decimal `json:"rate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToFxRateResponse converts a domain.FxRate to an FxRateResponse DTO.
func ToFxRateResponse(r *domain.FxRate) FxRateResponse {
	return FxRateResponse{
		RateID:        r.RateID,
		BaseCurrency:  r.BaseCurrency,
		QuoteCurrency: r.QuoteCurrency,
		Rate:          r.Rate,
		CreatedAt:     r.CreatedAt,
	}
}

// ToListFxRateResponse converts a slice of domain.FxRate to DTOs.
func ToListFxRateResponse(rates []domain.FxRate) []FxRateResponse {
	res := make([]FxRateResponse, len(rates))
	for i, r := range rates {
		res[i] = ToFxRateResponse(&r)
	}
	return res
}

// RateQuoteResponse defines the data returned for a resolved currency pair.
// Source tells callers whether the rate is real data or the 1:1 fallback.
type RateQuoteResponse struct {
	Base   string          `json:"base"`
	Quote  string          `json:"quote"`
	Rate   decimal.Decimal `json:"rate"`
	Source string          `json:"source"`
}

// ToRateQuoteResponse converts a domain.RateQuote to its DTO.
func ToRateQuoteResponse(q domain.RateQuote) RateQuoteResponse {
	return RateQuoteResponse{
		Base:   q.Base,
		Quote:  q.Quote,
		Rate:   q.Rate,
		Source: string(q.Source),
	}
}
