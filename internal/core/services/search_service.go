package services

import (
	"context"
	"strings"

	portsrepo "github.com/fsbooks/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/fsbooks/bookkeeping_backend/internal/core/ports/services"
	"github.com/fsbooks/bookkeeping_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// searchService implements portssvc.SearchSvcFacade.
type searchService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	bankRepo    portsrepo.BankRepository
	txnRepo     portsrepo.TransactionRepository
}

func NewSearchService(accountRepo portsrepo.AccountRepository, bankRepo portsrepo.BankRepository, txnRepo portsrepo.TransactionRepository) portssvc.SearchSvcFacade {
	return &searchService{
		accountRepo: accountRepo,
		bankRepo:    bankRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.SearchSvcFacade = (*searchService)(nil)

// Search runs a case-insensitive substring search across accounts, banks
// and transactions. When the query parses as a number it additionally
// matches amounts and balances exactly. A blank query returns empty result
// sets without touching the repositories.
func (s *searchService) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return dto.EmptySearchResponse(), nil
	}

	var amount *decimal.Decimal
	if parsed, err := decimal.NewFromString(query); err == nil {
		amount = &parsed
	}

	accounts, err := s.accountRepo.SearchAccounts(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to search accounts")
		return nil, err
	}

	banks, err := s.bankRepo.SearchBanks(ctx, query, amount)
	if err != nil {
		s.LogError(ctx, err, "Failed to search banks")
		return nil, err
	}

	txns, err := s.txnRepo.SearchTransactions(ctx, query, amount)
	if err != nil {
		s.LogError(ctx, err, "Failed to search transactions")
		return nil, err
	}

	return &dto.SearchResponse{
		Accounts:     dto.ToAccountResponseSlice(accounts),
		Banks:        dto.ToBankResponseSlice(banks),
		Transactions: dto.ToTransactionResponseSlice(txns),
	}, nil
}
