package repositories

import (
	"context"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
)

// FxRateReader defines read operations for stored exchange rates.
type FxRateReader interface {
	// FindFxRate retrieves the stored rate for the exact (base, quote)
	// direction, or apperrors.ErrNotFound. No derivation happens here; the
	// rate resolver owns reciprocal and fallback logic.
	FindFxRate(ctx context.Context, baseCurrency, quoteCurrency string) (*domain.FxRate, error)

	// ListFxRates retrieves all stored rates.
	ListFxRates(ctx context.Context) ([]domain.FxRate, error)
}

// FxRateWriter defines write operations for stored exchange rates.
type FxRateWriter interface {
	// SaveFxRate persists a new rate entry. A duplicate (base, quote) pair is
	// reported as apperrors.ErrDuplicate.
	SaveFxRate(ctx context.Context, rate domain.FxRate) error
}

// FxRateRepositoryFacade combines all fx-rate repository interfaces.
type FxRateRepositoryFacade interface {
	FxRateReader
	FxRateWriter
}
