package services

import (
	portsrepo "github.com/fsbooks/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/fsbooks/bookkeeping_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) portssvc.ServiceContainer {
	return portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Bank:        NewBankService(repos.BankRepo, repos.TransactionRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.BankRepo),
		Search:      NewSearchService(repos.AccountRepo, repos.BankRepo, repos.TransactionRepo),
	}
}
