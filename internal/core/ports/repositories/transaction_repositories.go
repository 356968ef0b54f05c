package repositories

import (
	"context"
	"time"

	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionUpdate carries the mutable fields of a transaction. Nil fields
// are left untouched.
type TransactionUpdate struct {
	Amount  *decimal.Decimal
	Product *string
	Volume  *decimal.Decimal
}

// TransactionRepository defines persistence operations for transactions.
//
// SaveTransaction, UpdateTransaction and DeleteTransaction each run in a
// single database transaction that also applies the corresponding bank
// balance adjustment as an atomic increment, so the stored bank balance and
// the balance computed over the bank's transactions never diverge and
// concurrent postings against one bank serialize in the database.
type TransactionRepository interface {
	// SaveTransaction inserts the transaction and adjusts the referenced
	// bank's balance (+amount for Credit, -amount for Debit). Returns
	// apperrors.ErrNotFound when the bank does not exist; in that case
	// nothing is persisted.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// UpdateTransaction applies the given partial update and re-adjusts the
	// bank balance by the amount delta. Returns the updated transaction, or
	// apperrors.ErrNotFound when the ID is unknown.
	UpdateTransaction(ctx context.Context, transactionID string, update TransactionUpdate, updatedAt time.Time) (*domain.Transaction, error)
	// DeleteTransaction removes the transaction and reverses its effect on
	// the bank balance. Returns apperrors.ErrNotFound when the ID is unknown.
	DeleteTransaction(ctx context.Context, transactionID string) error
	// ListTransactions retrieves all transactions ordered by date descending.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	// ListTransactionsByAccountHolder retrieves the holder's transactions
	// ordered by date descending.
	ListTransactionsByAccountHolder(ctx context.Context, accountHolder string) ([]domain.Transaction, error)
	// ListTransactionsByBank retrieves one page of the bank's transactions
	// ordered by date descending.
	ListTransactionsByBank(ctx context.Context, bankID string, limit, offset int) ([]domain.Transaction, error)
	// CountTransactionsByBank returns the total number of transactions for
	// the bank.
	CountTransactionsByBank(ctx context.Context, bankID string) (int64, error)
	// SumTransactionsByBank computes the bank's balance over ALL of its
	// transactions (Credit adds, Debit subtracts), regardless of pagination.
	SumTransactionsByBank(ctx context.Context, bankID string) (decimal.Decimal, error)
	// ReportTransactions retrieves the holder's transactions ordered by date
	// ascending, restricted to [startDate, endDate] inclusive when both
	// bounds are non-nil.
	ReportTransactions(ctx context.Context, accountHolder string, startDate, endDate *time.Time) ([]domain.Transaction, error)
	// SearchTransactions retrieves transactions whose account holder or
	// transaction type (Credit/Debit) contains the query case-insensitively;
	// when amount is non-nil, transactions whose amount equals it exactly
	// also match.
	SearchTransactions(ctx context.Context, query string, amount *decimal.Decimal) ([]domain.Transaction, error)
}
