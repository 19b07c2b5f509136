package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyaplan/travel_wallet_app/internal/apperrors"
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	portsrepo "github.com/voyaplan/travel_wallet_app/internal/core/ports/repositories"
	"github.com/voyaplan/travel_wallet_app/internal/models"
	"github.com/voyaplan/travel_wallet_app/internal/utils/mapping"
)

type PgxTravelStateRepository struct {
	BaseRepository
}

// newPgxTravelStateRepository creates a new repository for travel state data.
func newPgxTravelStateRepository(pool *pgxpool.Pool) portsrepo.TravelStateRepositoryFacade {
	return &PgxTravelStateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTravelStateRepository implements the facade
var _ portsrepo.TravelStateRepositoryFacade = (*PgxTravelStateRepository)(nil)

// UpsertTravelState creates or overwrites the user's single travel state row.
// Activation always wins; there is no history.
func (r *PgxTravelStateRepository) UpsertTravelState(ctx context.Context, state domain.TravelState) error {
	m := mapping.ToModelTravelState(state)

	query := `
		INSERT INTO travel_states (user_id, current_country, local_currency, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET current_country = EXCLUDED.current_country,
		    local_currency = EXCLUDED.local_currency,
		    last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.CurrentCountry, m.LocalCurrency, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert travel state for user %s: %w", m.UserID, err)
	}
	return nil
}

// FindTravelStateByUser retrieves the user's travel state.
func (r *PgxTravelStateRepository) FindTravelStateByUser(ctx context.Context, userID string) (*domain.TravelState, error) {
	query := `
		SELECT user_id, current_country, local_currency, last_updated_at
		FROM travel_states
		WHERE user_id = $1;
	`
	var m models.TravelState
	err := r.Pool.QueryRow(ctx, query, userID).
		Scan(&m.UserID, &m.CurrentCountry, &m.LocalCurrency, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: travel state for user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find travel state for user %s: %w", userID, err)
	}
	state := mapping.ToDomainTravelState(m)
	return &state, nil
}
