package pgsql

import (
	portsrepo "github.com/fsbooks/bookkeeping_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	bankRepo := newPgxBankRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		BankRepo:        bankRepo,
		TransactionRepo: transactionRepo,
	}
}
