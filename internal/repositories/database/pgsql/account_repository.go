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
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, name, contact, address, account_type, created_at, last_updated_at`

func scanAccountRow(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Contact,
		&m.Address,
		&m.AccountType,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()
	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccountRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, name, contact, address, account_type, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Contact,
		m.Address,
		m.AccountType,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, m.Name)
			}
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	acc, err := scanAccountRow(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return acc, nil
}

// FindAccountByName retrieves an account by its holder name.
func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE name = $1;`

	acc, err := scanAccountRow(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by name %s: %w", name, err)
	}
	return acc, nil
}

// ListAccountsByType retrieves all accounts of one type, oldest first.
func (r *PgxAccountRepository) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_type = $1 ORDER BY created_at ASC;`

	rows, err := r.pool.Query(ctx, query, string(accountType))
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts of type %s: %w", accountType, err)
	}
	return collectAccounts(rows)
}

// SearchAccounts retrieves accounts whose name, contact or type contains the
// query, case-insensitively.
func (r *PgxAccountRepository) SearchAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	sqlQuery := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE name ILIKE '%' || $1 || '%'
		   OR contact ILIKE '%' || $1 || '%'
		   OR account_type ILIKE '%' || $1 || '%'
		ORDER BY created_at ASC;
	`
	rows, err := r.pool.Query(ctx, sqlQuery, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	return collectAccounts(rows)
}
