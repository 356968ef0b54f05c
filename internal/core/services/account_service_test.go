package services_test

import (
	"context"
	"testing"

	"github.com/fsbooks/bookkeeping_backend/internal/apperrors"
	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/fsbooks/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/fsbooks/bookkeeping_backend/internal/core/ports/services"
	"github.com/fsbooks/bookkeeping_backend/internal/core/services"
	"github.com/fsbooks/bookkeeping_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SearchAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Arun Kumar",
		Contact:     "9876543210",
		Address:     "12 Market Road",
		AccountType: domain.Customers,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == req.Name && a.Contact == req.Contact && a.Address == req.Address &&
			a.AccountType == req.AccountType && a.AccountID != "" && !a.CreatedAt.IsZero()
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(req.Name, account.Name)
	suite.Equal(req.AccountType, account.AccountType)
	suite.NotEmpty(account.AccountID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MissingName() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountType: domain.Regular,
	}

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Acme Traders",
		AccountType: "Suppliers",
	}

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Acme Traders",
		AccountType: domain.FeedstockVendors,
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(expectedErr).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccount_Success() {
	ctx := context.Background()
	expected := &domain.Account{AccountID: "acc-1", Name: "Arun Kumar", AccountType: domain.Customers}

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(expected, nil).Once()

	account, err := suite.service.GetAccount(ctx, "acc-1")

	suite.Require().NoError(err)
	suite.Equal(expected, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccount_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccount(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccountsByType_Success() {
	ctx := context.Background()
	expected := []domain.Account{
		{AccountID: "acc-1", Name: "Arun Kumar", AccountType: domain.Customers},
		{AccountID: "acc-2", Name: "Bina Shah", AccountType: domain.Customers},
	}

	suite.mockRepo.On("ListAccountsByType", ctx, domain.Customers).Return(expected, nil).Once()

	accounts, err := suite.service.ListAccountsByType(ctx, domain.Customers)

	suite.Require().NoError(err)
	suite.Equal(expected, accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccountsByType_InvalidType() {
	ctx := context.Background()

	accounts, err := suite.service.ListAccountsByType(ctx, "Suppliers")

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccountsByType", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccountsByType_Empty() {
	ctx := context.Background()
	var expected []domain.Account

	suite.mockRepo.On("ListAccountsByType", ctx, domain.Employees).Return(expected, nil).Once()

	accounts, err := suite.service.ListAccountsByType(ctx, domain.Employees)

	suite.Require().NoError(err)
	suite.Empty(accounts)
	suite.NotNil(accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
