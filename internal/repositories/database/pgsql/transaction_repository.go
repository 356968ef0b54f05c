package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsbooks/bookkeeping_backend/internal/apperrors"
	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/fsbooks/bookkeeping_backend/internal/core/ports/repositories"
	"github.com/fsbooks/bookkeeping_backend/internal/models"
	"github.com/fsbooks/bookkeeping_backend/internal/utils/accounting"
	"github.com/fsbooks/bookkeeping_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, type, account_id, account_holder, date, amount, transaction_type, product, volume, bank_id, created_at, last_updated_at`

func scanTransactionRow(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.AccountID,
		&m.AccountHolder,
		&m.Date,
		&m.Amount,
		&m.TransactionType,
		&m.Product,
		&m.Volume,
		&m.BankID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransactionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// adjustBankBalance applies delta to the bank's stored balance inside tx.
// Returns apperrors.ErrNotFound when the bank row does not exist.
func adjustBankBalance(ctx context.Context, tx pgx.Tx, bankID string, delta decimal.Decimal, now time.Time) error {
	query := `
		UPDATE banks
		SET balance = balance + $2, last_updated_at = $3
		WHERE bank_id = $1;
	`
	tag, err := tx.Exec(ctx, query, bankID, delta, now)
	if err != nil {
		return fmt.Errorf("failed to adjust balance of bank %s: %w", bankID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveTransaction inserts the transaction and adjusts the bank balance in
// one database transaction. The balance update runs first: its row lock
// serializes concurrent postings against the same bank, and an unknown bank
// aborts the whole posting with ErrNotFound.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	signed, err := accounting.SignedAmount(txn)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := adjustBankBalance(ctx, tx, txn.BankID, signed, txn.LastUpdatedAt); err != nil {
		return err
	}

	m := mapping.ToModelTransaction(txn)
	insertQuery := `
		INSERT INTO transactions (transaction_id, type, account_id, account_holder, date, amount, transaction_type, product, volume, bank_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.Type,
		m.AccountID,
		m.AccountHolder,
		m.Date,
		m.Amount,
		m.TransactionType,
		m.Product,
		m.Volume,
		m.BankID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// findTransactionForUpdate locks and returns the row inside tx.
func findTransactionForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`

	txn, err := scanTransactionRow(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// UpdateTransaction applies a partial update. When the amount changes, the
// bank balance is re-adjusted by the signed delta in the same database
// transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, update portsrepo.TransactionUpdate, updatedAt time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	existing, err := findTransactionForUpdate(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if update.Amount != nil {
		updated.Amount = *update.Amount
	}
	if update.Product != nil {
		updated.Product = update.Product
	}
	if update.Volume != nil {
		updated.Volume = update.Volume
	}
	updated.LastUpdatedAt = updatedAt

	updateQuery := `
		UPDATE transactions
		SET amount = $2, product = $3, volume = $4, last_updated_at = $5
		WHERE transaction_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		transactionID,
		updated.Amount,
		updated.Product,
		updated.Volume,
		updated.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	if update.Amount != nil && !updated.Amount.Equal(existing.Amount) {
		oldSigned, err := accounting.SignedAmount(*existing)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to compute old signed amount for transaction "+transactionID, err)
		}
		newSigned, err := accounting.SignedAmount(updated)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to compute new signed amount for transaction "+transactionID, err)
		}
		if err := adjustBankBalance(ctx, tx, updated.BankID, newSigned.Sub(oldSigned), updatedAt); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransaction removes the transaction and reverses its effect on the
// bank balance in one database transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	existing, err := findTransactionForUpdate(ctx, tx, transactionID)
	if err != nil {
		return err
	}

	signed, err := accounting.SignedAmount(*existing)
	if err != nil {
		return apperrors.NewAppError(500, "failed to compute signed amount for transaction "+transactionID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	if err := adjustBankBalance(ctx, tx, existing.BankID, signed.Neg(), time.Now()); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListTransactions retrieves all transactions, newest date first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return collectTransactions(rows)
}

// ListTransactionsByAccountHolder retrieves one holder's transactions,
// newest date first.
func (r *PgxTransactionRepository) ListTransactionsByAccountHolder(ctx context.Context, accountHolder string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_holder = $1 ORDER BY date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, accountHolder)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account holder %s: %w", accountHolder, err)
	}
	return collectTransactions(rows)
}

// ListTransactionsByBank retrieves one page of a bank's transactions,
// newest date first.
func (r *PgxTransactionRepository) ListTransactionsByBank(ctx context.Context, bankID string, limit, offset int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE bank_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, bankID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for bank %s: %w", bankID, err)
	}
	return collectTransactions(rows)
}

// CountTransactionsByBank returns the total number of a bank's transactions.
func (r *PgxTransactionRepository) CountTransactionsByBank(ctx context.Context, bankID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE bank_id = $1;`, bankID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions for bank %s: %w", bankID, err)
	}
	return count, nil
}

// SumTransactionsByBank computes the bank's balance over all of its
// transactions, credits adding and debits subtracting.
func (r *PgxTransactionRepository) SumTransactionsByBank(ctx context.Context, bankID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN transaction_type = 'Credit' THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE bank_id = $1;
	`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, bankID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions for bank %s: %w", bankID, err)
	}
	return sum, nil
}

// ReportTransactions retrieves one holder's transactions, oldest date first,
// restricted to the inclusive date range when both bounds are given.
func (r *PgxTransactionRepository) ReportTransactions(ctx context.Context, accountHolder string, startDate, endDate *time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_holder = $1
		  AND ($2::timestamptz IS NULL OR date >= $2::timestamptz)
		  AND ($3::timestamptz IS NULL OR date <= $3::timestamptz)
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, accountHolder, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to report transactions for account holder %s: %w", accountHolder, err)
	}
	return collectTransactions(rows)
}

const searchTransactionsQuery = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_holder ILIKE '%' || $1 || '%'
		   OR transaction_type ILIKE '%' || $1 || '%'
		   OR ($2::numeric IS NOT NULL AND amount = $2::numeric)
		ORDER BY date DESC, created_at DESC;
	`

// SearchTransactions retrieves transactions whose account holder or
// transaction type contains the query case-insensitively. A non-nil amount
// additionally matches the amount exactly.
func (r *PgxTransactionRepository) SearchTransactions(ctx context.Context, query string, amount *decimal.Decimal) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, searchTransactionsQuery, query, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	return collectTransactions(rows)
}
