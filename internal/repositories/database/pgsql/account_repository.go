package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/voyaplan/travel_wallet_app/internal/apperrors"
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	portsrepo "github.com/voyaplan/travel_wallet_app/internal/core/ports/repositories"
	"github.com/voyaplan/travel_wallet_app/internal/models"
	"github.com/voyaplan/travel_wallet_app/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account. The (user_id, currency) pair is unique;
// a violation is reported as ErrDuplicate so callers can fall back to the
// existing row.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, user_id, currency, balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Currency,
		m.Balance,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account for user %s in %s already exists", apperrors.ErrDuplicate, m.UserID, m.Currency)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its primary key.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, user_id, currency, balance, created_at, last_updated_at
		FROM accounts
		WHERE account_id = $1;
	`
	return r.scanAccountRow(r.Pool.QueryRow(ctx, query, accountID), accountID)
}

// FindAccountByUserAndCurrency retrieves the single account a user holds in
// the given currency.
func (r *PgxAccountRepository) FindAccountByUserAndCurrency(ctx context.Context, userID, currency string) (*domain.Account, error) {
	query := `
		SELECT account_id, user_id, currency, balance, created_at, last_updated_at
		FROM accounts
		WHERE user_id = $1 AND currency = $2;
	`
	return r.scanAccountRow(r.Pool.QueryRow(ctx, query, userID, currency), userID+"/"+currency)
}

// ListAccountsByUser retrieves all accounts belonging to a user, ordered by
// currency for stable output.
func (r *PgxAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, user_id, currency, balance, created_at, last_updated_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY currency;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.UserID, &m.Currency, &m.Balance, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// FindAccountsByIDsForUpdate selects accounts and locks them for update
// within the given transaction. Missing IDs are reported as ErrNotFound.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	query := `
		SELECT account_id, user_id, currency, balance, created_at, last_updated_at
		FROM accounts
		WHERE account_id = ANY($1)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.UserID, &m.Currency, &m.Balance, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", err)
	}

	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}
	return accounts, nil
}

// UpdateAccountBalancesInTx applies balance deltas within the given
// transaction. The debit/credit step is the critical section of the ledger:
// rows must already be locked (FindAccountsByIDsForUpdate), and any delta
// that would drive a balance negative aborts with ErrInsufficientBalance.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, changes map[string]decimal.Decimal, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = balance + $1, last_updated_at = $2
		WHERE account_id = $3
		RETURNING balance;
	`
	for accountID, delta := range changes {
		var newBalance decimal.Decimal
		if err := tx.QueryRow(ctx, query, delta, now, accountID).Scan(&newBalance); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
			}
			return fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
		}
		if newBalance.IsNegative() {
			return fmt.Errorf("%w: account %s cannot cover debit of %s", apperrors.ErrInsufficientBalance, accountID, delta.Neg().String())
		}
	}
	return nil
}

// ApplyBalanceChanges atomically applies a set of balance deltas. The whole
// set commits or none of it does.
func (r *PgxAccountRepository) ApplyBalanceChanges(ctx context.Context, changes map[string]decimal.Decimal, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accountIDs := make([]string, 0, len(changes))
	for id := range changes {
		accountIDs = append(accountIDs, id)
	}

	if _, err := r.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}
	if err := r.UpdateAccountBalancesInTx(ctx, tx, changes, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxAccountRepository) scanAccountRow(row pgx.Row, ref string) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(&m.AccountID, &m.UserID, &m.Currency, &m.Balance, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, ref)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", ref, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}
