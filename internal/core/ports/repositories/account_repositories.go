package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByUserAndCurrency retrieves the single account a user holds
	// in the given currency, or apperrors.ErrNotFound if none exists yet.
	FindAccountByUserAndCurrency(ctx context.Context, userID, currency string) (*domain.Account, error)

	// ListAccountsByUser retrieves all accounts belonging to a user.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account. A unique-violation on
	// (user_id, currency) is reported as apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// ApplyBalanceChanges atomically applies a set of balance deltas keyed by
	// account ID. All affected rows are locked for the duration of the
	// update; any delta that would drive a balance negative aborts the whole
	// set with apperrors.ErrInsufficientBalance.
	ApplyBalanceChanges(ctx context.Context, changes map[string]decimal.Decimal, now time.Time) error
}

// AccountTransactionSupport defines balance-mutation operations usable inside
// an externally managed database transaction.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks them for update
	// within the given transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx applies balance deltas within the given
	// transaction. Deltas that would drive a balance negative return
	// apperrors.ErrInsufficientBalance.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, changes map[string]decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
