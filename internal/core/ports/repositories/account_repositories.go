package repositories

import (
	"context"

	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
	// FindAccountByID retrieves an account by its ID.
	// Returns apperrors.ErrNotFound if no such account exists.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// FindAccountByName retrieves an account by its (holder) name.
	// Returns apperrors.ErrNotFound if no such account exists.
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)
	// ListAccountsByType retrieves all accounts of the given type in
	// insertion (creation time) order.
	ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error)
	// SearchAccounts retrieves accounts whose name, contact or account type
	// contains the query, case-insensitively.
	SearchAccounts(ctx context.Context, query string) ([]domain.Account, error)
}
