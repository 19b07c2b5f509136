package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voyaplan/travel_wallet_app/internal/apperrors"
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	portsrepo "github.com/voyaplan/travel_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/voyaplan/travel_wallet_app/internal/core/ports/services"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
)

// ledgerService is the balance-mutating core. It never computes rates
// itself; conversions always go through the injected rate resolver.
type ledgerService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	userRepo     portsrepo.UserReader
	walletRepo   portsrepo.WalletRepositoryFacade
	rateResolver portssvc.RateResolver
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	accountRepo portsrepo.AccountRepositoryFacade,
	userRepo portsrepo.UserReader,
	walletRepo portsrepo.WalletRepositoryFacade,
	rateResolver portssvc.RateResolver,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo:  accountRepo,
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		rateResolver: rateResolver,
	}
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetOrCreateAccount lazily creates a (user, currency) account with a zero
// balance on first reference. A concurrent creator losing the insert race
// falls back to the row that won, so the operation is idempotent.
func (s *ledgerService) GetOrCreateAccount(ctx context.Context, userID, currency string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByUserAndCurrency(ctx, userID, currency)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	newAccount := domain.Account{
		AccountID: uuid.NewString(),
		UserID:    userID,
		Currency:  currency,
		Balance:   decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, newAccount); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.accountRepo.FindAccountByUserAndCurrency(ctx, userID, currency)
		}
		s.LogError(ctx, err, "Failed to create account lazily",
			slog.String("user_id", userID), slog.String("currency", currency))
		return nil, err
	}

	s.LogInfo(ctx, "Account created lazily",
		slog.String("account_id", newAccount.AccountID),
		slog.String("currency", currency))
	return &newAccount, nil
}

// ListAccounts retrieves all of a user's currency accounts.
func (s *ledgerService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccountsByUser(ctx, userID)
}

// Exchange converts between two of the user's currency accounts. The debit
// and the credit commit in one database transaction; on any failure both
// balances are left untouched.
func (s *ledgerService) Exchange(ctx context.Context, userID string, req dto.ExchangeRequest) (*domain.ExchangeResult, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	fromAccount, err := s.GetOrCreateAccount(ctx, userID, req.FromCurrency)
	if err != nil {
		return nil, err
	}
	toAccount, err := s.GetOrCreateAccount(ctx, userID, req.ToCurrency)
	if err != nil {
		return nil, err
	}

	if fromAccount.Balance.LessThan(req.Amount) {
		return nil, fmt.Errorf("%w: %s account holds %s, need %s",
			apperrors.ErrInsufficientBalance, req.FromCurrency, fromAccount.Balance.String(), req.Amount.String())
	}

	quote := s.rateResolver.ResolveRate(ctx, req.FromCurrency, req.ToCurrency)
	converted := req.Amount.Mul(quote.Rate)

	// Deltas are accumulated per account so an identity exchange (from ==
	// to) nets out instead of double-applying.
	changes := map[string]decimal.Decimal{}
	changes[fromAccount.AccountID] = changes[fromAccount.AccountID].Sub(req.Amount)
	changes[toAccount.AccountID] = changes[toAccount.AccountID].Add(converted)

	now := time.Now().UTC()
	if err := s.accountRepo.ApplyBalanceChanges(ctx, changes, now); err != nil {
		s.LogError(ctx, err, "Exchange failed",
			slog.String("from", req.FromCurrency), slog.String("to", req.ToCurrency))
		return nil, err
	}

	result := &domain.ExchangeResult{
		FromAccount:    *fromAccount,
		ToAccount:      *toAccount,
		AmountDebited:  req.Amount,
		AmountCredited: converted,
		Quote:          quote,
	}
	result.FromAccount.Balance = fromAccount.Balance.Add(changes[fromAccount.AccountID])
	if toAccount.AccountID == fromAccount.AccountID {
		result.ToAccount = result.FromAccount
	} else {
		result.ToAccount.Balance = toAccount.Balance.Add(changes[toAccount.AccountID])
	}

	s.LogInfo(ctx, "Exchange completed",
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency),
		slog.String("amount", req.Amount.String()),
		slog.String("credited", converted.String()),
		slog.String("rate_source", string(quote.Source)))
	return result, nil
}

// RecordSpend records a wallet transaction and debits the paying account.
//
// Debit policy: a spend in the home currency debits the home account. A
// spend in another currency debits that currency's account in full when it
// covers the amount; otherwise the home account pays the converted amount
// instead. If neither can cover it, the spend fails and nothing is written.
//
// The transaction always records the local amount and currency regardless
// of which account funded it; the two are linked only through the rate
// snapshot taken here, not through a funding-account reference.
func (s *ledgerService) RecordSpend(ctx context.Context, userID, walletID string, req dto.RecordSpendRequest) (*domain.WalletTransaction, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet.UserID != userID {
		return nil, fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, walletID)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	currencyLocal := req.CurrencyLocal
	if currencyLocal == "" {
		currencyLocal = wallet.Currency
	}

	quote := s.rateResolver.ResolveRate(ctx, currencyLocal, user.HomeCurrency)
	amountHome := req.AmountLocal.Mul(quote.Rate)

	changes := map[string]decimal.Decimal{}
	if currencyLocal == user.HomeCurrency {
		homeAccount, err := s.GetOrCreateAccount(ctx, userID, user.HomeCurrency)
		if err != nil {
			return nil, err
		}
		if homeAccount.Balance.LessThan(req.AmountLocal) {
			return nil, fmt.Errorf("%w: %s account holds %s, need %s",
				apperrors.ErrInsufficientBalance, user.HomeCurrency, homeAccount.Balance.String(), req.AmountLocal.String())
		}
		changes[homeAccount.AccountID] = req.AmountLocal.Neg()
	} else {
		localAccount, err := s.GetOrCreateAccount(ctx, userID, currencyLocal)
		if err != nil {
			return nil, err
		}
		if localAccount.Balance.GreaterThanOrEqual(req.AmountLocal) {
			changes[localAccount.AccountID] = req.AmountLocal.Neg()
		} else {
			// Local pocket cannot cover the spend: the home-currency
			// reserve pays the converted amount instead.
			homeAccount, err := s.GetOrCreateAccount(ctx, userID, user.HomeCurrency)
			if err != nil {
				return nil, err
			}
			if homeAccount.Balance.LessThan(amountHome) {
				return nil, fmt.Errorf("%w: neither %s nor %s account can cover the spend",
					apperrors.ErrInsufficientBalance, currencyLocal, user.HomeCurrency)
			}
			changes[homeAccount.AccountID] = amountHome.Neg()
		}
	}

	txn := domain.WalletTransaction{
		TransactionID: uuid.NewString(),
		WalletID:      wallet.WalletID,
		UserID:        userID,
		Description:   req.Description,
		Category:      req.Category,
		AmountLocal:   req.AmountLocal,
		CurrencyLocal: currencyLocal,
		AmountHome:    &amountHome,
		CurrencyHome:  user.HomeCurrency,
		IsPreTrip:     req.IsPreTrip,
		CreatedAt:     time.Now().UTC(),
	}

	// Balance mutation and transaction record commit together; the
	// repository locks the account row first, so a concurrent spend that
	// drained the balance in the meantime fails here with no state change.
	if err := s.walletRepo.SaveTransaction(ctx, txn, changes); err != nil {
		s.LogError(ctx, err, "Failed to record spend",
			slog.String("wallet_id", walletID), slog.String("currency_local", currencyLocal))
		return nil, err
	}

	s.LogInfo(ctx, "Spend recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("wallet_id", walletID),
		slog.String("amount_local", req.AmountLocal.String()),
		slog.String("currency_local", currencyLocal),
		slog.String("amount_home", amountHome.String()),
		slog.String("rate_source", string(quote.Source)))
	return &txn, nil
}

// SummarizeWallet aggregates a wallet's transactions in home-currency terms.
// Transactions without a home amount count as zero; transactions without a
// category are excluded from the category breakdown but not from the totals.
func (s *ledgerService) SummarizeWallet(ctx context.Context, userID, walletID string) (*domain.WalletSummary, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet.UserID != userID {
		return nil, fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, walletID)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	txns, err := s.walletRepo.ListTransactionsByWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}

	totalPre := decimal.Zero
	totalDuring := decimal.Zero
	categoryTotals := make(map[string]decimal.Decimal)

	for _, txn := range txns {
		value := decimal.Zero
		if txn.AmountHome != nil {
			value = *txn.AmountHome
		}
		if txn.IsPreTrip {
			totalPre = totalPre.Add(value)
		} else {
			totalDuring = totalDuring.Add(value)
		}
		if txn.Category != "" {
			categoryTotals[txn.Category] = categoryTotals[txn.Category].Add(value)
		}
	}

	return &domain.WalletSummary{
		WalletID:        walletID,
		HomeCurrency:    user.HomeCurrency,
		TotalPreTrip:    totalPre,
		TotalDuringTrip: totalDuring,
		TotalSpent:      totalPre.Add(totalDuring),
		CategoryTotals:  categoryTotals,
	}, nil
}
