package services

import (
	"context"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
)

// TravelSvcFacade defines travel-mode and travel-wallet operations.
type TravelSvcFacade interface {
	// ActivateTravelMode resolves the destination's currency, overwrites the
	// user's travel state and lazily creates the local-currency account.
	ActivateTravelMode(ctx context.Context, userID, countryCode string) (*domain.TravelState, error)

	// GetTravelState retrieves the user's active travel state.
	GetTravelState(ctx context.Context, userID string) (*domain.TravelState, error)

	// CreateWallet creates a travel wallet for one trip. The wallet currency
	// defaults to the destination country's currency when omitted.
	CreateWallet(ctx context.Context, userID string, req dto.CreateWalletRequest) (*domain.TravelWallet, error)

	// ListWallets retrieves the user's wallets, newest first.
	ListWallets(ctx context.Context, userID string) ([]domain.TravelWallet, error)

	// GetWallet retrieves one of the user's wallets. A wallet owned by
	// another user is reported as apperrors.ErrNotFound.
	GetWallet(ctx context.Context, userID, walletID string) (*domain.TravelWallet, error)

	// ListTransactions retrieves a wallet's transactions, oldest first.
	ListTransactions(ctx context.Context, userID, walletID string) ([]domain.WalletTransaction, error)

	// GetGuide returns the static spending guide for a country, or
	// apperrors.ErrNotFound when none exists.
	GetGuide(countryCode string) (*domain.TravelGuide, error)
}
