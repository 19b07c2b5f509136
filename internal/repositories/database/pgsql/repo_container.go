package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/voyaplan/travel_wallet_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires up all pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	fxRateRepo := newPgxFxRateRepository(dbPool)
	travelStateRepo := newPgxTravelStateRepository(dbPool)
	walletRepo := newPgxWalletRepository(dbPool, accountRepo)

	return portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		AccountRepo:     accountRepo,
		FxRateRepo:      fxRateRepo,
		TravelStateRepo: travelStateRepo,
		WalletRepo:      walletRepo,
	}
}
