package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines database transaction control operations shared
// by repositories that need multi-statement atomicity.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	FxRateRepo      FxRateRepositoryFacade
	TravelStateRepo TravelStateRepositoryFacade
	WalletRepo      WalletRepositoryFacade
}
