package services

import (
	"context"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
)

// RateResolver resolves a currency pair to the rate the ledger should use.
// Resolution is total: it never fails, but callers must inspect the quote's
// Source before presenting a fallback rate as real data.
type RateResolver interface {
	// ResolveRate applies the fixed precedence: identity, direct entry,
	// reciprocal of the reverse entry, then a 1:1 fallback.
	ResolveRate(ctx context.Context, base, quote string) domain.RateQuote

	// ResolveLocalCurrency returns the currency spent in a country, or the
	// fallback currency if the country is unmapped.
	ResolveLocalCurrency(countryCode, fallbackCurrency string) string
}

// RateSvcFacade combines rate resolution with operator maintenance of the
// static rate table.
type RateSvcFacade interface {
	RateResolver

	// CreateFxRate stores a new operator-supplied rate. The rate must be
	// positive and the pair's currencies must differ.
	CreateFxRate(ctx context.Context, req dto.CreateFxRateRequest) (*domain.FxRate, error)

	// GetFxRate retrieves the stored entry for the exact direction.
	GetFxRate(ctx context.Context, base, quote string) (*domain.FxRate, error)

	// ListFxRates retrieves all stored rates.
	ListFxRates(ctx context.Context) ([]domain.FxRate, error)
}
