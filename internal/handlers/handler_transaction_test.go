package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fsbooks/bookkeeping_backend/internal/apperrors"
	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	portssvc "github.com/fsbooks/bookkeeping_backend/internal/core/ports/services"
	"github.com/fsbooks/bookkeeping_backend/internal/dto"
	"github.com/fsbooks/bookkeeping_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactionsByAccountHolder(ctx context.Context, accountHolder string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountHolder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ReportTransactions(ctx context.Context, params dto.ReportParams) (*dto.ReportResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockTxnService *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidations())
	suite.router = gin.New()
	suite.mockTxnService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockTxnService)
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	body := `{"type":"Customers","accountHolder":"Arun Kumar","date":"2024-03-01","amount":1000,"transactionType":"Credit","bankId":"bank-1"}`
	created := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            domain.Customers,
		AccountHolder:   "Arun Kumar",
		Date:            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(1000),
		TransactionType: domain.Credit,
		BankID:          "bank-1",
	}

	suite.mockTxnService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.AccountHolder == "Arun Kumar" && req.BankID == "bank-1" &&
			req.TransactionType == domain.Credit && req.Amount.Equal(decimal.NewFromInt(1000))
	})).Return(created, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.Equal("2024-03-01", resp.Date)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_SpacedAccountType() {
	body := `{"type":"Feedstock Vendors","accountHolder":"Acme Traders","date":"2024-03-02","amount":250,"transactionType":"Debit","bankId":"bank-1"}`
	created := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.FeedstockVendors,
	}

	suite.mockTxnService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Type == domain.FeedstockVendors
	})).Return(created, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidEnum() {
	body := `{"type":"Suppliers","accountHolder":"Arun Kumar","date":"2024-03-01","amount":1000,"transactionType":"Credit","bankId":"bank-1"}`

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_BankNotFound() {
	body := `{"type":"Customers","accountHolder":"Arun Kumar","date":"2024-03-01","amount":1000,"transactionType":"Credit","bankId":"missing"}`

	suite.mockTxnService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.NewNotFoundError("bank missing not found")).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	txns := []domain.Transaction{
		{TransactionID: "txn-1", AccountHolder: "Arun Kumar"},
		{TransactionID: "txn-2", AccountHolder: "Bina Shah"},
	}

	suite.mockTxnService.On("ListTransactions", mock.Anything).Return(txns, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 2)
}

func (suite *TransactionHandlerTestSuite) TestListTransactionsByAccountHolder_Success() {
	txns := []domain.Transaction{{TransactionID: "txn-1", AccountHolder: "Arun Kumar"}}

	suite.mockTxnService.On("ListTransactionsByAccountHolder", mock.Anything, "Arun Kumar").Return(txns, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/account/Arun%20Kumar", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_Success() {
	transactionID := "txn-1"
	updated := &domain.Transaction{TransactionID: transactionID, Amount: decimal.NewFromInt(450)}

	suite.mockTxnService.On("UpdateTransaction", mock.Anything, transactionID, mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
		return req.Amount != nil && req.Amount.Equal(decimal.NewFromInt(450))
	})).Return(updated, nil).Once()

	req, _ := http.NewRequest(http.MethodPut, "/api/v1/transactions/"+transactionID, strings.NewReader(`{"amount":450}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockTxnService.On("UpdateTransaction", mock.Anything, "missing", mock.AnythingOfType("dto.UpdateTransactionRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodPut, "/api/v1/transactions/missing", strings.NewReader(`{"amount":450}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, "txn-1").Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/transactions/txn-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, "missing").Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/transactions/missing", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Success() {
	txn := &domain.Transaction{
		TransactionID:   "txn-1",
		AccountHolder:   "Arun Kumar",
		Date:            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TransactionType: domain.Credit,
		Amount:          decimal.NewFromInt(1000),
		BankID:          "bank-1",
	}

	suite.mockTxnService.On("GetTransaction", mock.Anything, "txn-1").Return(txn, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/txn-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("txn-1", resp.TransactionID)
	suite.Equal("2024-03-01", resp.Date)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockTxnService.On("GetTransaction", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/missing", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestReportTransactions_Success() {
	report := &dto.ReportResponse{
		AccountHolder: "Arun Kumar",
		Transactions: []dto.TransactionResponse{
			{TransactionID: "txn-1", AccountHolder: "Arun Kumar", TransactionType: domain.Credit, Amount: decimal.NewFromInt(700)},
		},
		NetTotal: decimal.NewFromInt(700),
	}

	suite.mockTxnService.On("ReportTransactions", mock.Anything, dto.ReportParams{
		AccountHolder: "Arun Kumar",
		StartDate:     "2024-01-01",
		EndDate:       "2024-03-31",
	}).Return(report, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/report/transactions?accountHolder=Arun%20Kumar&startDate=2024-01-01&endDate=2024-03-31", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Arun Kumar", resp.AccountHolder)
	suite.Len(resp.Transactions, 1)
	suite.True(resp.NetTotal.Equal(decimal.NewFromInt(700)))
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestReportTransactions_MissingHolder() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/report/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "ReportTransactions", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
