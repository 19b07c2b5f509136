package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyaplan/travel_wallet_app/internal/apperrors"
	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	portssvc "github.com/voyaplan/travel_wallet_app/internal/core/ports/services"
	"github.com/voyaplan/travel_wallet_app/internal/core/services"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
)

// --- Mock TravelStateRepository ---
type MockTravelStateRepository struct {
	mock.Mock
}

func (m *MockTravelStateRepository) UpsertTravelState(ctx context.Context, state domain.TravelState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockTravelStateRepository) FindTravelStateByUser(ctx context.Context, userID string) (*domain.TravelState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelState), args.Error(1)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetOrCreateAccount(ctx context.Context, userID, currency string) (*domain.Account, error) {
	args := m.Called(ctx, userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockLedgerService) Exchange(ctx context.Context, userID string, req dto.ExchangeRequest) (*domain.ExchangeResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeResult), args.Error(1)
}

func (m *MockLedgerService) RecordSpend(ctx context.Context, userID, walletID string, req dto.RecordSpendRequest) (*domain.WalletTransaction, error) {
	args := m.Called(ctx, userID, walletID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletTransaction), args.Error(1)
}

func (m *MockLedgerService) SummarizeWallet(ctx context.Context, userID, walletID string) (*domain.WalletSummary, error) {
	args := m.Called(ctx, userID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletSummary), args.Error(1)
}

// --- Test Suite ---
type TravelServiceTestSuite struct {
	suite.Suite
	mockStateRepo    *MockTravelStateRepository
	mockWalletRepo   *MockWalletRepository
	mockUserRepo     *MockUserRepository
	mockRateResolver *MockRateResolver
	mockLedger       *MockLedgerService
	service          portssvc.TravelSvcFacade

	userID string
	user   *domain.User
}

func (suite *TravelServiceTestSuite) SetupTest() {
	suite.mockStateRepo = new(MockTravelStateRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockRateResolver = new(MockRateResolver)
	suite.mockLedger = new(MockLedgerService)
	guides := map[string]domain.TravelGuide{
		"JP": {CountryCode: "JP", Title: "Spending in Japan", Tips: []string{"Cash is still king in many places"}},
	}
	suite.service = services.NewTravelService(
		suite.mockStateRepo,
		suite.mockWalletRepo,
		suite.mockUserRepo,
		suite.mockRateResolver,
		suite.mockLedger,
		guides,
	)

	suite.userID = uuid.NewString()
	suite.user = &domain.User{UserID: suite.userID, Email: "traveler@example.com", HomeCurrency: "EUR"}
}

// --- ActivateTravelMode ---

func (suite *TravelServiceTestSuite) TestActivateTravelMode_Success() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), UserID: suite.userID, Currency: "HUF"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateResolver.On("ResolveLocalCurrency", "HU", "EUR").Return("HUF").Once()
	suite.mockStateRepo.On("UpsertTravelState", ctx, mock.MatchedBy(func(state domain.TravelState) bool {
		return state.UserID == suite.userID && state.CurrentCountry == "HU" && state.LocalCurrency == "HUF"
	})).Return(nil).Once()
	suite.mockLedger.On("GetOrCreateAccount", ctx, suite.userID, "HUF").Return(account, nil).Once()

	state, err := suite.service.ActivateTravelMode(ctx, suite.userID, "hu")

	suite.Require().NoError(err)
	suite.Equal("HU", state.CurrentCountry)
	suite.Equal("HUF", state.LocalCurrency)
	suite.mockStateRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) TestActivateTravelMode_UnknownCountryFallsBackToHome() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), UserID: suite.userID, Currency: "EUR"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateResolver.On("ResolveLocalCurrency", "ZZ", "EUR").Return("EUR").Once()
	suite.mockStateRepo.On("UpsertTravelState", ctx, mock.AnythingOfType("domain.TravelState")).Return(nil).Once()
	suite.mockLedger.On("GetOrCreateAccount", ctx, suite.userID, "EUR").Return(account, nil).Once()

	state, err := suite.service.ActivateTravelMode(ctx, suite.userID, "ZZ")

	suite.Require().NoError(err)
	suite.Equal("EUR", state.LocalCurrency)
}

func (suite *TravelServiceTestSuite) TestActivateTravelMode_ReactivationOverwrites() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), UserID: suite.userID, Currency: "JPY"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Twice()
	suite.mockRateResolver.On("ResolveLocalCurrency", "HU", "EUR").Return("HUF").Once()
	suite.mockRateResolver.On("ResolveLocalCurrency", "JP", "EUR").Return("JPY").Once()
	suite.mockStateRepo.On("UpsertTravelState", ctx, mock.AnythingOfType("domain.TravelState")).Return(nil).Twice()
	suite.mockLedger.On("GetOrCreateAccount", ctx, suite.userID, mock.AnythingOfType("string")).Return(account, nil).Twice()

	_, err := suite.service.ActivateTravelMode(ctx, suite.userID, "HU")
	suite.Require().NoError(err)

	state, err := suite.service.ActivateTravelMode(ctx, suite.userID, "JP")
	suite.Require().NoError(err)
	suite.Equal("JP", state.CurrentCountry)
	suite.Equal("JPY", state.LocalCurrency)
}

// --- GetTravelState ---

func (suite *TravelServiceTestSuite) TestGetTravelState_NeverActivated() {
	ctx := context.Background()
	suite.mockStateRepo.On("FindTravelStateByUser", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	state, err := suite.service.GetTravelState(ctx, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(state)
}

// --- CreateWallet ---

func (suite *TravelServiceTestSuite) TestCreateWallet_CurrencyDefaultsToCountry() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateResolver.On("ResolveLocalCurrency", "JP", "EUR").Return("JPY").Once()
	suite.mockWalletRepo.On("SaveWallet", ctx, mock.MatchedBy(func(w domain.TravelWallet) bool {
		return w.Currency == "JPY" && w.IsActive && w.UserID == suite.userID
	})).Return(nil).Once()

	req := dto.CreateWalletRequest{Name: "Tokyo trip", CountryCode: "JP"}
	wallet, err := suite.service.CreateWallet(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("JPY", wallet.Currency)
	suite.NotEmpty(wallet.WalletID)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) TestCreateWallet_ParsesDatesAndBudgets() {
	ctx := context.Background()
	soft := decimal.NewFromInt(1000)
	hard := decimal.NewFromInt(1500)

	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockWalletRepo.On("SaveWallet", ctx, mock.AnythingOfType("domain.TravelWallet")).Return(nil).Once()

	req := dto.CreateWalletRequest{
		Name:        "Budapest trip",
		CountryCode: "HU",
		Currency:    "HUF",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-10",
		SoftBudget:  &soft,
		HardBudget:  &hard,
	}
	wallet, err := suite.service.CreateWallet(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(wallet.StartDate)
	suite.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *wallet.StartDate)
	suite.Require().NotNil(wallet.EndDate)
	suite.True(wallet.SoftBudget.Equal(soft))
	suite.True(wallet.HardBudget.Equal(hard))
	suite.mockRateResolver.AssertNotCalled(suite.T(), "ResolveLocalCurrency")
}

func (suite *TravelServiceTestSuite) TestCreateWallet_EndBeforeStart() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()

	req := dto.CreateWalletRequest{
		Name:        "Backwards trip",
		CountryCode: "HU",
		Currency:    "HUF",
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-01",
	}
	wallet, err := suite.service.CreateWallet(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(wallet)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "SaveWallet")
}

// --- GetWallet / ListTransactions ---

func (suite *TravelServiceTestSuite) TestGetWallet_ForeignWalletReportsNotFound() {
	ctx := context.Background()
	wallet := &domain.TravelWallet{WalletID: uuid.NewString(), UserID: uuid.NewString()}
	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()

	got, err := suite.service.GetWallet(ctx, suite.userID, wallet.WalletID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
}

func (suite *TravelServiceTestSuite) TestListTransactions_ChecksOwnershipFirst() {
	ctx := context.Background()
	wallet := &domain.TravelWallet{WalletID: uuid.NewString(), UserID: suite.userID}
	txns := []domain.WalletTransaction{{TransactionID: uuid.NewString(), WalletID: wallet.WalletID}}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockWalletRepo.On("ListTransactionsByWallet", ctx, wallet.WalletID).Return(txns, nil).Once()

	got, err := suite.service.ListTransactions(ctx, suite.userID, wallet.WalletID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

// --- GetGuide ---

func (suite *TravelServiceTestSuite) TestGetGuide_Found() {
	guide, err := suite.service.GetGuide("jp")

	suite.Require().NoError(err)
	suite.Equal("JP", guide.CountryCode)
	suite.NotEmpty(guide.Tips)
}

func (suite *TravelServiceTestSuite) TestGetGuide_Missing() {
	guide, err := suite.service.GetGuide("ZZ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(guide)
}

func TestTravelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TravelServiceTestSuite))
}
