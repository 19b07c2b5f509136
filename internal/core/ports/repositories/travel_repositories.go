package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
)

// TravelStateRepositoryFacade persists the single per-user travel state.
type TravelStateRepositoryFacade interface {
	// UpsertTravelState creates or overwrites the user's travel state.
	UpsertTravelState(ctx context.Context, state domain.TravelState) error

	// FindTravelStateByUser retrieves the user's travel state, or
	// apperrors.ErrNotFound if travel mode was never activated.
	FindTravelStateByUser(ctx context.Context, userID string) (*domain.TravelState, error)
}

// WalletReader defines read operations for travel wallets and their transactions.
type WalletReader interface {
	// FindWalletByID retrieves a wallet by its unique identifier.
	FindWalletByID(ctx context.Context, walletID string) (*domain.TravelWallet, error)

	// ListWalletsByUser retrieves a user's wallets, newest first.
	ListWalletsByUser(ctx context.Context, userID string) ([]domain.TravelWallet, error)

	// ListTransactionsByWallet retrieves a wallet's transactions, oldest first.
	ListTransactionsByWallet(ctx context.Context, walletID string) ([]domain.WalletTransaction, error)
}

// WalletWriter defines write operations for travel wallets and their transactions.
type WalletWriter interface {
	// SaveWallet persists a new travel wallet.
	SaveWallet(ctx context.Context, wallet domain.TravelWallet) error

	// SaveTransaction persists a wallet transaction and applies the funding
	// account's balance change in one database transaction, so that a crash
	// can never leave a debited account without its matching record. A delta
	// that would drive a balance negative aborts with
	// apperrors.ErrInsufficientBalance and nothing is persisted.
	SaveTransaction(ctx context.Context, txn domain.WalletTransaction, balanceChanges map[string]decimal.Decimal) error
}

// WalletRepositoryFacade combines all wallet repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
