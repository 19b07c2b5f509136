package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voyaplan/travel_wallet_app/internal/apperrors"
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	portsrepo "github.com/voyaplan/travel_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/voyaplan/travel_wallet_app/internal/core/ports/services"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
)

var one = decimal.NewFromInt(1)

// rateService resolves currency pairs against the static rate table and
// maintains the table's entries. It knows nothing about accounts.
type rateService struct {
	BaseService
	rateRepo  portsrepo.FxRateRepositoryFacade
	countries domain.CountryCurrencyTable
}

// NewRateService creates a new rate service.
func NewRateService(rateRepo portsrepo.FxRateRepositoryFacade, countries domain.CountryCurrencyTable) portssvc.RateSvcFacade {
	return &rateService{
		rateRepo:  rateRepo,
		countries: countries,
	}
}

// Ensure rateService implements the RateSvcFacade interface
var _ portssvc.RateSvcFacade = (*rateService)(nil)

// ResolveRate returns the rate to use for converting base into quote. It is
// total: every lookup failure degrades to the next strategy and ultimately
// to a 1:1 fallback, with the quote's Source recording which strategy won.
//
// Precedence: identity, direct entry, reciprocal of the reverse entry,
// fallback.
func (s *rateService) ResolveRate(ctx context.Context, base, quote string) domain.RateQuote {
	if base == quote {
		return domain.RateQuote{Base: base, Quote: quote, Rate: one, Source: domain.RateSourceIdentity}
	}

	direct, err := s.rateRepo.FindFxRate(ctx, base, quote)
	if err == nil {
		return domain.RateQuote{Base: base, Quote: quote, Rate: direct.Rate, Source: domain.RateSourceDirect}
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Rate lookup failed, continuing to reciprocal",
			slog.String("base", base), slog.String("quote", quote))
	}

	reverse, err := s.rateRepo.FindFxRate(ctx, quote, base)
	if err == nil && !reverse.Rate.IsZero() {
		return domain.RateQuote{Base: base, Quote: quote, Rate: one.Div(reverse.Rate), Source: domain.RateSourceReciprocal}
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Reverse rate lookup failed, falling back to identity",
			slog.String("base", base), slog.String("quote", quote))
	}

	return domain.RateQuote{Base: base, Quote: quote, Rate: one, Source: domain.RateSourceFallback}
}

// ResolveLocalCurrency returns the currency spent in a country, or the
// fallback currency if the country is unmapped.
func (s *rateService) ResolveLocalCurrency(countryCode, fallbackCurrency string) string {
	return s.countries.Resolve(strings.ToUpper(countryCode), fallbackCurrency)
}

// CreateFxRate stores a new operator-supplied rate entry.
func (s *rateService) CreateFxRate(ctx context.Context, req dto.CreateFxRateRequest) (*domain.FxRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.BaseCurrency == req.QuoteCurrency {
		return nil, fmt.Errorf("%w: base and quote currency cannot be the same", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rate := domain.FxRate{
		RateID:        uuid.NewString(),
		BaseCurrency:  req.BaseCurrency,
		QuoteCurrency: req.QuoteCurrency,
		Rate:          req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.rateRepo.SaveFxRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save fx rate",
			slog.String("base", rate.BaseCurrency), slog.String("quote", rate.QuoteCurrency))
		return nil, err
	}

	s.LogInfo(ctx, "Fx rate created",
		slog.String("base", rate.BaseCurrency),
		slog.String("quote", rate.QuoteCurrency),
		slog.String("rate", rate.Rate.String()))
	return &rate, nil
}

// GetFxRate retrieves the stored entry for the exact direction.
func (s *rateService) GetFxRate(ctx context.Context, base, quote string) (*domain.FxRate, error) {
	return s.rateRepo.FindFxRate(ctx, base, quote)
}

// ListFxRates retrieves all stored rates.
func (s *rateService) ListFxRates(ctx context.Context) ([]domain.FxRate, error) {
	return s.rateRepo.ListFxRates(ctx)
}
