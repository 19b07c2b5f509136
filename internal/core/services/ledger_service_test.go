package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyaplan/travel_wallet_app/internal/apperrors"
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	portssvc "github.com/voyaplan/travel_wallet_app/internal/core/ports/services"
	"github.com/voyaplan/travel_wallet_app/internal/core/services"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByUserAndCurrency(ctx context.Context, userID, currency string) (*domain.Account, error) {
	args := m.Called(ctx, userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) ApplyBalanceChanges(ctx context.Context, changes map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, changes, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, changes map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, changes, now)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.TravelWallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelWallet), args.Error(1)
}

func (m *MockWalletRepository) ListWalletsByUser(ctx context.Context, userID string) ([]domain.TravelWallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelWallet), args.Error(1)
}

func (m *MockWalletRepository) ListTransactionsByWallet(ctx context.Context, walletID string) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WalletTransaction), args.Error(1)
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.TravelWallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) SaveTransaction(ctx context.Context, txn domain.WalletTransaction, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceChanges)
	return args.Error(0)
}

// --- Mock RateResolver ---
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) ResolveRate(ctx context.Context, base, quote string) domain.RateQuote {
	args := m.Called(ctx, base, quote)
	return args.Get(0).(domain.RateQuote)
}

func (m *MockRateResolver) ResolveLocalCurrency(countryCode, fallbackCurrency string) string {
	args := m.Called(countryCode, fallbackCurrency)
	return args.String(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockUserRepo     *MockUserRepository
	mockWalletRepo   *MockWalletRepository
	mockRateResolver *MockRateResolver
	service          portssvc.LedgerSvcFacade

	userID string
	user   *domain.User
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.mockRateResolver = new(MockRateResolver)
	suite.service = services.NewLedgerService(
		suite.mockAccountRepo,
		suite.mockUserRepo,
		suite.mockWalletRepo,
		suite.mockRateResolver,
	)

	suite.userID = uuid.NewString()
	suite.user = &domain.User{UserID: suite.userID, Email: "traveler@example.com", HomeCurrency: "EUR"}
}

func (suite *LedgerServiceTestSuite) account(currency string, balance decimal.Decimal) *domain.Account {
	return &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Currency:  currency,
		Balance:   balance,
	}
}

func quoteFor(base, quote string, rate decimal.Decimal, source domain.RateSource) domain.RateQuote {
	return domain.RateQuote{Base: base, Quote: quote, Rate: rate, Source: source}
}

// --- GetOrCreateAccount ---

func (suite *LedgerServiceTestSuite) TestGetOrCreateAccount_Existing() {
	ctx := context.Background()
	existing := suite.account("EUR", decimal.NewFromInt(100))
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "EUR").Return(existing, nil).Once()

	account, err := suite.service.GetOrCreateAccount(ctx, suite.userID, "EUR")

	suite.Require().NoError(err)
	suite.Equal(existing.AccountID, account.AccountID)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *LedgerServiceTestSuite) TestGetOrCreateAccount_CreatesAtZero() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "HUF").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.GetOrCreateAccount(ctx, suite.userID, "HUF")

	suite.Require().NoError(err)
	suite.Equal("HUF", account.Currency)
	suite.True(account.Balance.IsZero())
	suite.NotEmpty(account.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetOrCreateAccount_LostInsertRace() {
	ctx := context.Background()
	winner := suite.account("HUF", decimal.Zero)
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "HUF").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "HUF").Return(winner, nil).Once()

	account, err := suite.service.GetOrCreateAccount(ctx, suite.userID, "HUF")

	suite.Require().NoError(err)
	suite.Equal(winner.AccountID, account.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- Exchange ---

func (suite *LedgerServiceTestSuite) TestExchange_Success() {
	ctx := context.Background()
	fromAccount := suite.account("EUR", decimal.NewFromInt(500))
	toAccount := suite.account("GBP", decimal.Zero)
	rate := decimal.NewFromFloat(0.86)

	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "EUR").Return(fromAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "GBP").Return(toAccount, nil).Once()
	suite.mockRateResolver.On("ResolveRate", ctx, "EUR", "GBP").Return(quoteFor("EUR", "GBP", rate, domain.RateSourceDirect)).Once()
	suite.mockAccountRepo.On("ApplyBalanceChanges", ctx, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[fromAccount.AccountID].Equal(decimal.NewFromInt(-100)) &&
			changes[toAccount.AccountID].Equal(decimal.NewFromInt(100).Mul(rate))
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	req := dto.ExchangeRequest{FromCurrency: "EUR", ToCurrency: "GBP", Amount: decimal.NewFromInt(100)}
	result, err := suite.service.Exchange(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.AmountDebited.Equal(decimal.NewFromInt(100)))
	suite.True(result.AmountCredited.Equal(decimal.NewFromInt(86)))
	suite.True(result.FromAccount.Balance.Equal(decimal.NewFromInt(400)))
	suite.True(result.ToAccount.Balance.Equal(decimal.NewFromInt(86)))
	suite.Equal(domain.RateSourceDirect, result.Quote.Source)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestExchange_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.ExchangeRequest{FromCurrency: "EUR", ToCurrency: "GBP", Amount: decimal.Zero}

	result, err := suite.service.Exchange(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByUserAndCurrency")
}

func (suite *LedgerServiceTestSuite) TestExchange_InsufficientBalanceLeavesAccountsUntouched() {
	ctx := context.Background()
	fromAccount := suite.account("EUR", decimal.NewFromInt(50))
	toAccount := suite.account("GBP", decimal.Zero)

	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "EUR").Return(fromAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "GBP").Return(toAccount, nil).Once()

	req := dto.ExchangeRequest{FromCurrency: "EUR", ToCurrency: "GBP", Amount: decimal.NewFromInt(100)}
	result, err := suite.service.Exchange(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.Nil(result)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ApplyBalanceChanges")
	suite.mockRateResolver.AssertNotCalled(suite.T(), "ResolveRate")
}

func (suite *LedgerServiceTestSuite) TestExchange_FallbackRateStillExchanges() {
	ctx := context.Background()
	fromAccount := suite.account("EUR", decimal.NewFromInt(100))
	toAccount := suite.account("KRW", decimal.Zero)

	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "EUR").Return(fromAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "KRW").Return(toAccount, nil).Once()
	suite.mockRateResolver.On("ResolveRate", ctx, "EUR", "KRW").Return(quoteFor("EUR", "KRW", decimal.NewFromInt(1), domain.RateSourceFallback)).Once()
	suite.mockAccountRepo.On("ApplyBalanceChanges", ctx, mock.Anything, mock.AnythingOfType("time.Time")).Return(nil).Once()

	req := dto.ExchangeRequest{FromCurrency: "EUR", ToCurrency: "KRW", Amount: decimal.NewFromInt(10)}
	result, err := suite.service.Exchange(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(result.AmountCredited.Equal(decimal.NewFromInt(10)))
	suite.True(result.Quote.IsFallback())
}

// --- RecordSpend ---

func (suite *LedgerServiceTestSuite) walletFor(currency string) *domain.TravelWallet {
	return &domain.TravelWallet{
		WalletID: uuid.NewString(),
		UserID:   suite.userID,
		Name:     "Trip",
		Currency: currency,
	}
}

func (suite *LedgerServiceTestSuite) TestRecordSpend_HomeCurrencyDebitsHomeAccount() {
	ctx := context.Background()
	wallet := suite.walletFor("EUR")
	homeAccount := suite.account("EUR", decimal.NewFromInt(500))

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateResolver.On("ResolveRate", ctx, "EUR", "EUR").Return(quoteFor("EUR", "EUR", decimal.NewFromInt(1), domain.RateSourceIdentity)).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "EUR").Return(homeAccount, nil).Once()
	suite.mockWalletRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.WalletTransaction"), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return len(changes) == 1 && changes[homeAccount.AccountID].Equal(decimal.NewFromInt(-120))
	})).Return(nil).Once()

	req := dto.RecordSpendRequest{Description: "Hotel", Category: "Lodging", AmountLocal: decimal.NewFromInt(120)}
	txn, err := suite.service.RecordSpend(ctx, suite.userID, wallet.WalletID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("EUR", txn.CurrencyLocal)
	suite.Equal("EUR", txn.CurrencyHome)
	suite.Require().NotNil(txn.AmountHome)
	suite.True(txn.AmountHome.Equal(decimal.NewFromInt(120)))
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordSpend_LocalAccountCoversInFull() {
	ctx := context.Background()
	wallet := suite.walletFor("HUF")
	localAccount := suite.account("HUF", decimal.NewFromInt(20000))
	rate := decimal.NewFromInt(1).Div(decimal.NewFromInt(390))

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateResolver.On("ResolveRate", ctx, "HUF", "EUR").Return(quoteFor("HUF", "EUR", rate, domain.RateSourceReciprocal)).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "HUF").Return(localAccount, nil).Once()
	suite.mockWalletRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.WalletTransaction"), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return len(changes) == 1 && changes[localAccount.AccountID].Equal(decimal.NewFromInt(-5000))
	})).Return(nil).Once()

	req := dto.RecordSpendRequest{Description: "Dinner", Category: "Food", AmountLocal: decimal.NewFromInt(5000)}
	txn, err := suite.service.RecordSpend(ctx, suite.userID, wallet.WalletID, req)

	suite.Require().NoError(err)
	suite.Equal("HUF", txn.CurrencyLocal)
	suite.Require().NotNil(txn.AmountHome)
	suite.True(txn.AmountHome.Equal(decimal.NewFromInt(5000).Mul(rate)))
}

func (suite *LedgerServiceTestSuite) TestRecordSpend_HomeAccountFallsBackForConvertedAmount() {
	ctx := context.Background()
	wallet := suite.walletFor("HUF")
	localAccount := suite.account("HUF", decimal.NewFromInt(10)) // cannot cover 50
	homeAccount := suite.account("EUR", decimal.NewFromInt(500))
	rate := decimal.NewFromInt(1).Div(decimal.NewFromInt(390))
	expectedHome := decimal.NewFromInt(50).Mul(rate)

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateResolver.On("ResolveRate", ctx, "HUF", "EUR").Return(quoteFor("HUF", "EUR", rate, domain.RateSourceReciprocal)).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "HUF").Return(localAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "EUR").Return(homeAccount, nil).Once()
	suite.mockWalletRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.WalletTransaction"), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return len(changes) == 1 && changes[homeAccount.AccountID].Equal(expectedHome.Neg())
	})).Return(nil).Once()

	req := dto.RecordSpendRequest{Description: "Taxi", Category: "Transport", AmountLocal: decimal.NewFromInt(50)}
	txn, err := suite.service.RecordSpend(ctx, suite.userID, wallet.WalletID, req)

	suite.Require().NoError(err)
	// The record keeps the local amount; only the funding side converted.
	suite.True(txn.AmountLocal.Equal(decimal.NewFromInt(50)))
	suite.Equal("HUF", txn.CurrencyLocal)
	suite.Require().NotNil(txn.AmountHome)
	suite.True(txn.AmountHome.Equal(expectedHome))
}

func (suite *LedgerServiceTestSuite) TestRecordSpend_NeitherAccountCovers() {
	ctx := context.Background()
	wallet := suite.walletFor("HUF")
	localAccount := suite.account("HUF", decimal.NewFromInt(10))
	homeAccount := suite.account("EUR", decimal.Zero)
	rate := decimal.NewFromInt(1).Div(decimal.NewFromInt(390))

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateResolver.On("ResolveRate", ctx, "HUF", "EUR").Return(quoteFor("HUF", "EUR", rate, domain.RateSourceReciprocal)).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "HUF").Return(localAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "EUR").Return(homeAccount, nil).Once()

	req := dto.RecordSpendRequest{Description: "Souvenir", AmountLocal: decimal.NewFromInt(5000)}
	txn, err := suite.service.RecordSpend(ctx, suite.userID, wallet.WalletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.Nil(txn)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *LedgerServiceTestSuite) TestRecordSpend_ForeignWalletReportsNotFound() {
	ctx := context.Background()
	wallet := suite.walletFor("EUR")
	wallet.UserID = uuid.NewString() // someone else's

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()

	req := dto.RecordSpendRequest{Description: "Hotel", AmountLocal: decimal.NewFromInt(10)}
	txn, err := suite.service.RecordSpend(ctx, suite.userID, wallet.WalletID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *LedgerServiceTestSuite) TestRecordSpend_ExplicitCurrencyOverridesWallet() {
	ctx := context.Background()
	wallet := suite.walletFor("HUF")
	homeAccount := suite.account("EUR", decimal.NewFromInt(100))

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateResolver.On("ResolveRate", ctx, "EUR", "EUR").Return(quoteFor("EUR", "EUR", decimal.NewFromInt(1), domain.RateSourceIdentity)).Once()
	suite.mockAccountRepo.On("FindAccountByUserAndCurrency", ctx, suite.userID, "EUR").Return(homeAccount, nil).Once()
	suite.mockWalletRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.WalletTransaction"), mock.Anything).Return(nil).Once()

	req := dto.RecordSpendRequest{Description: "Flight", AmountLocal: decimal.NewFromInt(80), CurrencyLocal: "EUR"}
	txn, err := suite.service.RecordSpend(ctx, suite.userID, wallet.WalletID, req)

	suite.Require().NoError(err)
	suite.Equal("EUR", txn.CurrencyLocal)
}

// --- SummarizeWallet ---

func (suite *LedgerServiceTestSuite) TestSummarizeWallet() {
	ctx := context.Background()
	wallet := suite.walletFor("HUF")
	ten := decimal.NewFromInt(10)
	twenty := decimal.NewFromInt(20)
	five := decimal.NewFromInt(5)
	txns := []domain.WalletTransaction{
		{Description: "Flight", Category: "Transport", AmountHome: &twenty, IsPreTrip: true},
		{Description: "Dinner", Category: "Food", AmountHome: &ten},
		{Description: "Snack", Category: "Food", AmountHome: &five},
		{Description: "Mystery", AmountHome: nil}, // counts as zero, no category
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockWalletRepo.On("ListTransactionsByWallet", ctx, wallet.WalletID).Return(txns, nil).Once()

	summary, err := suite.service.SummarizeWallet(ctx, suite.userID, wallet.WalletID)

	suite.Require().NoError(err)
	suite.Equal("EUR", summary.HomeCurrency)
	suite.True(summary.TotalPreTrip.Equal(twenty))
	suite.True(summary.TotalDuringTrip.Equal(decimal.NewFromInt(15)))
	suite.True(summary.TotalSpent.Equal(decimal.NewFromInt(35)))
	suite.Len(summary.CategoryTotals, 2)
	suite.True(summary.CategoryTotals["Food"].Equal(decimal.NewFromInt(15)))
	suite.True(summary.CategoryTotals["Transport"].Equal(twenty))
}

func (suite *LedgerServiceTestSuite) TestSummarizeWallet_EmptyWallet() {
	ctx := context.Background()
	wallet := suite.walletFor("HUF")

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockWalletRepo.On("ListTransactionsByWallet", ctx, wallet.WalletID).Return([]domain.WalletTransaction{}, nil).Once()

	summary, err := suite.service.SummarizeWallet(ctx, suite.userID, wallet.WalletID)

	suite.Require().NoError(err)
	suite.True(summary.TotalSpent.IsZero())
	suite.Empty(summary.CategoryTotals)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
