package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voyaplan/travel_wallet_app/internal/apperrors"
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	portsrepo "github.com/voyaplan/travel_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/voyaplan/travel_wallet_app/internal/core/ports/services"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
)

const walletDateLayout = "2006-01-02"

type travelService struct {
	BaseService
	travelStateRepo portsrepo.TravelStateRepositoryFacade
	walletRepo      portsrepo.WalletRepositoryFacade
	userRepo        portsrepo.UserReader
	rateResolver    portssvc.RateResolver
	ledgerService   portssvc.LedgerSvcFacade
	guides          map[string]domain.TravelGuide
}

// NewTravelService creates a new travel service.
func NewTravelService(
	travelStateRepo portsrepo.TravelStateRepositoryFacade,
	walletRepo portsrepo.WalletRepositoryFacade,
	userRepo portsrepo.UserReader,
	rateResolver portssvc.RateResolver,
	ledgerService portssvc.LedgerSvcFacade,
	guides map[string]domain.TravelGuide,
) portssvc.TravelSvcFacade {
	return &travelService{
		travelStateRepo: travelStateRepo,
		walletRepo:      walletRepo,
		userRepo:        userRepo,
		rateResolver:    rateResolver,
		ledgerService:   ledgerService,
		guides:          guides,
	}
}

// Ensure travelService implements the TravelSvcFacade interface
var _ portssvc.TravelSvcFacade = (*travelService)(nil)

// ActivateTravelMode switches the user's travel state to a country. The
// country's currency is resolved from the reference table, falling back to
// the user's home currency for countries the table doesn't know, and the
// matching local account is created up front so arrival spends don't race
// on first use.
func (s *travelService) ActivateTravelMode(ctx context.Context, userID, countryCode string) (*domain.TravelState, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	countryCode = strings.ToUpper(countryCode)
	localCurrency := s.rateResolver.ResolveLocalCurrency(countryCode, user.HomeCurrency)

	state := domain.TravelState{
		UserID:         userID,
		CurrentCountry: countryCode,
		LocalCurrency:  localCurrency,
		LastUpdatedAt:  time.Now().UTC(),
	}
	if err := s.travelStateRepo.UpsertTravelState(ctx, state); err != nil {
		s.LogError(ctx, err, "Failed to upsert travel state", slog.String("country", countryCode))
		return nil, err
	}

	if _, err := s.ledgerService.GetOrCreateAccount(ctx, userID, localCurrency); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Travel mode activated",
		slog.String("country", countryCode),
		slog.String("local_currency", localCurrency))
	return &state, nil
}

// GetTravelState retrieves the user's current travel state.
func (s *travelService) GetTravelState(ctx context.Context, userID string) (*domain.TravelState, error) {
	return s.travelStateRepo.FindTravelStateByUser(ctx, userID)
}

// CreateWallet creates a trip wallet. The wallet currency defaults to the
// destination country's currency when the request leaves it empty.
func (s *travelService) CreateWallet(ctx context.Context, userID string, req dto.CreateWalletRequest) (*domain.TravelWallet, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	countryCode := strings.ToUpper(req.CountryCode)
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = s.rateResolver.ResolveLocalCurrency(countryCode, user.HomeCurrency)
	}

	var startDate, endDate *time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse(walletDateLayout, req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		startDate = &parsed
	}
	if req.EndDate != "" {
		parsed, err := time.Parse(walletDateLayout, req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		endDate = &parsed
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("%w: endDate precedes startDate", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	wallet := domain.TravelWallet{
		WalletID:    uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		CountryCode: countryCode,
		Currency:    currency,
		StartDate:   startDate,
		EndDate:     endDate,
		SoftBudget:  req.SoftBudget,
		HardBudget:  req.HardBudget,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		s.LogError(ctx, err, "Failed to save wallet", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Wallet created",
		slog.String("wallet_id", wallet.WalletID),
		slog.String("country", countryCode),
		slog.String("currency", currency))
	return &wallet, nil
}

// ListWallets retrieves all of the user's trip wallets.
func (s *travelService) ListWallets(ctx context.Context, userID string) ([]domain.TravelWallet, error) {
	return s.walletRepo.ListWalletsByUser(ctx, userID)
}

// GetWallet retrieves a wallet owned by the user. Another user's wallet is
// reported as not found rather than forbidden.
func (s *travelService) GetWallet(ctx context.Context, userID, walletID string) (*domain.TravelWallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet.UserID != userID {
		return nil, fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, walletID)
	}
	return wallet, nil
}

// ListTransactions retrieves a wallet's transactions, oldest first.
func (s *travelService) ListTransactions(ctx context.Context, userID, walletID string) ([]domain.WalletTransaction, error) {
	if _, err := s.GetWallet(ctx, userID, walletID); err != nil {
		return nil, err
	}
	return s.walletRepo.ListTransactionsByWallet(ctx, walletID)
}

// GetGuide retrieves the curated travel guide for a country, if one exists.
func (s *travelService) GetGuide(countryCode string) (*domain.TravelGuide, error) {
	guide, ok := s.guides[strings.ToUpper(countryCode)]
	if !ok {
		return nil, fmt.Errorf("%w: no guide for country %s", apperrors.ErrNotFound, countryCode)
	}
	return &guide, nil
}
