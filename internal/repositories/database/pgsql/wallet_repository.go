package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/voyaplan/travel_wallet_app/internal/apperrors"
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	portsrepo "github.com/voyaplan/travel_wallet_app/internal/core/ports/repositories"
	"github.com/voyaplan/travel_wallet_app/internal/models"
	"github.com/voyaplan/travel_wallet_app/internal/utils/mapping"
)

type PgxWalletRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// newPgxWalletRepository creates a new repository for travel wallets and
// their transactions. It needs account transaction support because recording
// a spend mutates an account balance in the same database transaction.
func newPgxWalletRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxWalletRepository implements portsrepo.WalletRepositoryFacade
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

// SaveWallet inserts a new travel wallet.
func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.TravelWallet) error {
	m := mapping.ToModelTravelWallet(wallet)

	query := `
		INSERT INTO travel_wallets (wallet_id, user_id, name, country_code, currency, start_date, end_date, soft_budget, hard_budget, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WalletID,
		m.UserID,
		m.Name,
		m.CountryCode,
		m.Currency,
		nullTime(m.StartDate),
		nullTime(m.EndDate),
		nullDecimal(m.SoftBudget),
		nullDecimal(m.HardBudget),
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save wallet %s: %w", m.WalletID, err)
	}
	return nil
}

// FindWalletByID retrieves a wallet by its primary key.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.TravelWallet, error) {
	query := `
		SELECT wallet_id, user_id, name, country_code, currency, start_date, end_date, soft_budget, hard_budget, is_active, created_at, last_updated_at
		FROM travel_wallets
		WHERE wallet_id = $1;
	`
	m, err := scanWallet(r.Pool.QueryRow(ctx, query, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, walletID)
		}
		return nil, fmt.Errorf("failed to find wallet %s: %w", walletID, err)
	}
	wallet := mapping.ToDomainTravelWallet(*m)
	return &wallet, nil
}

// ListWalletsByUser retrieves a user's wallets, newest first.
func (r *PgxWalletRepository) ListWalletsByUser(ctx context.Context, userID string) ([]domain.TravelWallet, error) {
	query := `
		SELECT wallet_id, user_id, name, country_code, currency, start_date, end_date, soft_budget, hard_budget, is_active, created_at, last_updated_at
		FROM travel_wallets
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets for user %s: %w", userID, err)
	}
	defer rows.Close()

	wallets := make([]domain.TravelWallet, 0)
	for rows.Next() {
		m, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet row: %w", err)
		}
		wallets = append(wallets, mapping.ToDomainTravelWallet(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallet rows: %w", err)
	}
	return wallets, nil
}

// ListTransactionsByWallet retrieves a wallet's transactions, oldest first.
func (r *PgxWalletRepository) ListTransactionsByWallet(ctx context.Context, walletID string) ([]domain.WalletTransaction, error) {
	query := `
		SELECT transaction_id, wallet_id, user_id, description, category, amount_local, currency_local, amount_home, currency_home, is_pre_trip, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for wallet %s: %w", walletID, err)
	}
	defer rows.Close()

	txns := make([]domain.WalletTransaction, 0)
	for rows.Next() {
		m, err := scanWalletTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainWalletTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// SaveTransaction persists a wallet transaction and applies the funding
// account's balance change inside a single database transaction. The
// affected account rows are locked first, so concurrent spends against the
// same balances serialize here instead of racing, and a crash can never
// leave a debited account without its matching record.
func (r *PgxWalletRepository) SaveTransaction(ctx context.Context, txn domain.WalletTransaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if len(balanceChanges) > 0 {
		accountIDs := make([]string, 0, len(balanceChanges))
		for id := range balanceChanges {
			accountIDs = append(accountIDs, id)
		}
		if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
			return err
		}
		if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, txn.CreatedAt); err != nil {
			return err
		}
	}

	m := mapping.ToModelWalletTransaction(txn)
	query := `
		INSERT INTO wallet_transactions (transaction_id, wallet_id, user_id, description, category, amount_local, currency_local, amount_home, currency_home, is_pre_trip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.WalletID,
		m.UserID,
		m.Description,
		nullString(m.Category),
		m.AmountLocal,
		m.CurrencyLocal,
		nullDecimal(m.AmountHome),
		nullString(m.CurrencyHome),
		m.IsPreTrip,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wallet transaction %s: %w", m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

func scanWallet(row pgx.Row) (*models.TravelWallet, error) {
	var (
		m          models.TravelWallet
		startDate  sql.NullTime
		endDate    sql.NullTime
		softBudget decimal.NullDecimal
		hardBudget decimal.NullDecimal
	)
	err := row.Scan(&m.WalletID, &m.UserID, &m.Name, &m.CountryCode, &m.Currency,
		&startDate, &endDate, &softBudget, &hardBudget, &m.IsActive, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return nil, err
	}
	if startDate.Valid {
		m.StartDate = &startDate.Time
	}
	if endDate.Valid {
		m.EndDate = &endDate.Time
	}
	if softBudget.Valid {
		m.SoftBudget = &softBudget.Decimal
	}
	if hardBudget.Valid {
		m.HardBudget = &hardBudget.Decimal
	}
	return &m, nil
}

func scanWalletTransaction(row pgx.Row) (*models.WalletTransaction, error) {
	var (
		m            models.WalletTransaction
		category     sql.NullString
		amountHome   decimal.NullDecimal
		currencyHome sql.NullString
	)
	err := row.Scan(&m.TransactionID, &m.WalletID, &m.UserID, &m.Description, &category,
		&m.AmountLocal, &m.CurrencyLocal, &amountHome, &currencyHome, &m.IsPreTrip, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Category = category.String
	m.CurrencyHome = currencyHome.String
	if amountHome.Valid {
		m.AmountHome = &amountHome.Decimal
	}
	return &m, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
