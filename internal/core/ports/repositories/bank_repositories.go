package repositories

import (
	"context"

	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankRepository defines persistence operations for banks.
type BankRepository interface {
	// SaveBank inserts a new bank.
	SaveBank(ctx context.Context, bank domain.Bank) error
	// FindBankByID retrieves a bank by its ID.
	// Returns apperrors.ErrNotFound if no such bank exists.
	FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error)
	// ListBanks retrieves all banks in insertion order.
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	// SearchBanks retrieves banks whose name, account name or account number
	// contains the query case-insensitively; when amount is non-nil, banks
	// whose balance equals it exactly also match.
	SearchBanks(ctx context.Context, query string, amount *decimal.Decimal) ([]domain.Bank, error)
}
