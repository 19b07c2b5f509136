package services

import (
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	portsrepo "github.com/voyaplan/travel_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/voyaplan/travel_wallet_app/internal/core/ports/services"
	"github.com/voyaplan/travel_wallet_app/internal/platform/config"
)

// NewServiceContainer wires all services against the repository provider.
func NewServiceContainer(
	cfg *config.Config,
	repos *portsrepo.RepositoryProvider,
	countries domain.CountryCurrencyTable,
	guides map[string]domain.TravelGuide,
) *portssvc.ServiceContainer {
	rateService := NewRateService(repos.FxRateRepo, countries)
	ledgerService := NewLedgerService(repos.AccountRepo, repos.UserRepo, repos.WalletRepo, rateService)
	travelService := NewTravelService(repos.TravelStateRepo, repos.WalletRepo, repos.UserRepo, rateService, ledgerService, guides)

	return &portssvc.ServiceContainer{
		User:   NewUserService(repos.UserRepo),
		Token:  NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		Rate:   rateService,
		Ledger: ledgerService,
		Travel: travelService,
	}
}
