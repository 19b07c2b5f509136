package services

import (
	"context"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
)

// LedgerSvcFacade defines the balance-mutating core: exchanging between a
// user's currency accounts and recording wallet spends against them.
type LedgerSvcFacade interface {
	// GetOrCreateAccount lazily creates the (user, currency) account at a
	// zero balance on first reference. Idempotent.
	GetOrCreateAccount(ctx context.Context, userID, currency string) (*domain.Account, error)

	// ListAccounts retrieves all of a user's currency accounts.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)

	// Exchange debits amount from the from-currency account and credits
	// amount * rate to the to-currency account, atomically. Fails with
	// apperrors.ErrValidation on a non-positive amount and
	// apperrors.ErrInsufficientBalance when the source cannot cover it; no
	// partial state change occurs on failure.
	Exchange(ctx context.Context, userID string, req dto.ExchangeRequest) (*domain.ExchangeResult, error)

	// RecordSpend records a transaction against a wallet and debits the
	// paying account per the fallback policy: the local-currency account in
	// full if it covers the spend, otherwise the home-currency account for
	// the converted amount. The debit and the record are one atomic unit.
	RecordSpend(ctx context.Context, userID, walletID string, req dto.RecordSpendRequest) (*domain.WalletTransaction, error)

	// SummarizeWallet aggregates a wallet's transactions in home-currency
	// terms, split by the pre-trip flag and by category.
	SummarizeWallet(ctx context.Context, userID, walletID string) (*domain.WalletSummary, error)
}
