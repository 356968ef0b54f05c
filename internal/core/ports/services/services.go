package services

import (
	"context"

	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	"github.com/fsbooks/bookkeeping_backend/internal/dto"
)

// AccountSvcFacade exposes the account operations consumed by handlers.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error)
}

// BankSvcFacade exposes the bank operations consumed by handlers.
type BankSvcFacade interface {
	CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	GetBankStatement(ctx context.Context, bankID string, params dto.StatementParams) (*dto.BankStatementResponse, error)
}

// TransactionSvcFacade exposes the transaction operations consumed by handlers.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListTransactionsByAccountHolder(ctx context.Context, accountHolder string) ([]domain.Transaction, error)
	ReportTransactions(ctx context.Context, params dto.ReportParams) (*dto.ReportResponse, error)
}

// SearchSvcFacade exposes the global search operation.
type SearchSvcFacade interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

// ServiceContainer bundles all service facades for route registration.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Bank        BankSvcFacade
	Transaction TransactionSvcFacade
	Search      SearchSvcFacade
}
