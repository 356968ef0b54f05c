package repositories

// RepositoryProvider bundles all repository implementations so they can be
// constructed once and handed to the service layer together.
type RepositoryProvider struct {
	AccountRepo     AccountRepository
	BankRepo        BankRepository
	TransactionRepo TransactionRepository
}
