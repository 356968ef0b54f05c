package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsbooks/bookkeeping_backend/internal/apperrors"
	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/fsbooks/bookkeeping_backend/internal/core/ports/repositories"
	"github.com/fsbooks/bookkeeping_backend/internal/models"
	"github.com/fsbooks/bookkeeping_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBankRepository struct {
	pool *pgxpool.Pool
}

// newPgxBankRepository creates a new repository for bank data.
func newPgxBankRepository(pool *pgxpool.Pool) portsrepo.BankRepository {
	return &PgxBankRepository{pool: pool}
}

// Ensure PgxBankRepository implements portsrepo.BankRepository
var _ portsrepo.BankRepository = (*PgxBankRepository)(nil)

const bankColumns = `bank_id, bank_name, bank_logo, account_number, account_name, account_type, balance, created_at, last_updated_at`

func scanBankRow(row pgx.Row) (*domain.Bank, error) {
	var m models.Bank
	err := row.Scan(
		&m.BankID,
		&m.BankName,
		&m.BankLogo,
		&m.AccountNumber,
		&m.AccountName,
		&m.AccountType,
		&m.Balance,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	bank := mapping.ToDomainBank(m)
	return &bank, nil
}

func collectBanks(rows pgx.Rows) ([]domain.Bank, error) {
	defer rows.Close()
	var banks []domain.Bank
	for rows.Next() {
		bank, err := scanBankRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank row: %w", err)
		}
		banks = append(banks, *bank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank rows: %w", err)
	}
	return banks, nil
}

// SaveBank inserts a new bank.
func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)

	query := `
		INSERT INTO banks (bank_id, bank_name, bank_logo, account_number, account_name, account_type, balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BankID,
		m.BankName,
		m.BankLogo,
		m.AccountNumber,
		m.AccountName,
		m.AccountType,
		m.Balance,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: bank account number %s already exists", apperrors.ErrDuplicate, m.AccountNumber)
			}
		}
		return fmt.Errorf("failed to save bank %s: %w", m.BankID, err)
	}
	return nil
}

// FindBankByID retrieves a bank by its ID.
func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE bank_id = $1;`

	bank, err := scanBankRow(r.pool.QueryRow(ctx, query, bankID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank by ID %s: %w", bankID, err)
	}
	return bank, nil
}

// ListBanks retrieves all banks, oldest first.
func (r *PgxBankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks ORDER BY created_at ASC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	return collectBanks(rows)
}

// SearchBanks retrieves banks whose name, account name or account number
// contains the query case-insensitively. A non-nil amount additionally
// matches the balance exactly.
func (r *PgxBankRepository) SearchBanks(ctx context.Context, query string, amount *decimal.Decimal) ([]domain.Bank, error) {
	sqlQuery := `
		SELECT ` + bankColumns + `
		FROM banks
		WHERE bank_name ILIKE '%' || $1 || '%'
		   OR account_name ILIKE '%' || $1 || '%'
		   OR account_number ILIKE '%' || $1 || '%'
		   OR ($2::numeric IS NOT NULL AND balance = $2::numeric)
		ORDER BY created_at ASC;
	`
	rows, err := r.pool.Query(ctx, sqlQuery, query, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to search banks: %w", err)
	}
	return collectBanks(rows)
}
