package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyaplan/travel_wallet_app/internal/apperrors"
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	portsrepo "github.com/voyaplan/travel_wallet_app/internal/core/ports/repositories"
	"github.com/voyaplan/travel_wallet_app/internal/models"
	"github.com/voyaplan/travel_wallet_app/internal/utils/mapping"
)

type PgxFxRateRepository struct {
	BaseRepository
}

// newPgxFxRateRepository creates a new repository for stored exchange rates.
func newPgxFxRateRepository(pool *pgxpool.Pool) portsrepo.FxRateRepositoryFacade {
	return &PgxFxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxFxRateRepository implements portsrepo.FxRateRepositoryFacade
var _ portsrepo.FxRateRepositoryFacade = (*PgxFxRateRepository)(nil)

// SaveFxRate inserts a new rate entry. A duplicate (base, quote) pair is
// reported as ErrDuplicate.
func (r *PgxFxRateRepository) SaveFxRate(ctx context.Context, rate domain.FxRate) error {
	m := mapping.ToModelFxRate(rate)

	query := `
		INSERT INTO fx_rates (rate_id, base_currency, quote_currency, rate, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RateID,
		m.BaseCurrency,
		m.QuoteCurrency,
		m.Rate,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: rate %s/%s already exists", apperrors.ErrDuplicate, m.BaseCurrency, m.QuoteCurrency)
		}
		return fmt.Errorf("failed to save fx rate %s/%s: %w", m.BaseCurrency, m.QuoteCurrency, err)
	}
	return nil
}

// FindFxRate retrieves the stored rate for the exact (base, quote) direction.
func (r *PgxFxRateRepository) FindFxRate(ctx context.Context, baseCurrency, quoteCurrency string) (*domain.FxRate, error) {
	query := `
		SELECT rate_id, base_currency, quote_currency, rate, created_at, last_updated_at
		FROM fx_rates
		WHERE base_currency = $1 AND quote_currency = $2;
	`
	var m models.FxRate
	err := r.Pool.QueryRow(ctx, query, baseCurrency, quoteCurrency).
		Scan(&m.RateID, &m.BaseCurrency, &m.QuoteCurrency, &m.Rate, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: rate %s/%s", apperrors.ErrNotFound, baseCurrency, quoteCurrency)
		}
		return nil, fmt.Errorf("failed to find fx rate %s/%s: %w", baseCurrency, quoteCurrency, err)
	}
	rate := mapping.ToDomainFxRate(m)
	return &rate, nil
}

// ListFxRates retrieves all stored rates ordered by pair.
func (r *PgxFxRateRepository) ListFxRates(ctx context.Context) ([]domain.FxRate, error) {
	query := `
		SELECT rate_id, base_currency, quote_currency, rate, created_at, last_updated_at
		FROM fx_rates
		ORDER BY base_currency, quote_currency;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fx rates: %w", err)
	}
	defer rows.Close()

	rates := make([]domain.FxRate, 0)
	for rows.Next() {
		var m models.FxRate
		if err := rows.Scan(&m.RateID, &m.BaseCurrency, &m.QuoteCurrency, &m.Rate, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fx rate row: %w", err)
		}
		rates = append(rates, mapping.ToDomainFxRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fx rate rows: %w", err)
	}
	return rates, nil
}
