package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fsbooks/bookkeeping_backend/internal/apperrors"
	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/fsbooks/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/fsbooks/bookkeeping_backend/internal/core/ports/services"
	"github.com/fsbooks/bookkeeping_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultStatementPageSize is used when the caller does not supply a limit.
const DefaultStatementPageSize = 15

// bankService implements portssvc.BankSvcFacade.
type bankService struct {
	BaseService
	bankRepo portsrepo.BankRepository
	txnRepo  portsrepo.TransactionRepository
}

// NewBankService creates the bank service. The transaction repository is
// needed for statements.
func NewBankService(bankRepo portsrepo.BankRepository, txnRepo portsrepo.TransactionRepository) portssvc.BankSvcFacade {
	return &bankService{bankRepo: bankRepo, txnRepo: txnRepo}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

func (s *bankService) CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error) {
	now := time.Now()
	bank := domain.Bank{
		BankID:        uuid.NewString(),
		BankName:      req.BankName,
		BankLogo:      req.BankLogo,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		AccountType:   req.AccountType,
		Balance:       decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
		s.LogError(ctx, err, "Failed to save bank", slog.String("bank_id", bank.BankID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank created successfully",
		slog.String("bank_id", bank.BankID),
		slog.String("bank_name", bank.BankName))
	return &bank, nil
}

func (s *bankService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	banks, err := s.bankRepo.ListBanks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks")
		return nil, err
	}
	if banks == nil {
		return []domain.Bank{}, nil
	}
	return banks, nil
}

// GetBankStatement returns one page of the bank's transactions together with
// the stored balance, the page count and the balance computed over the full
// transaction set. Count and page are separate queries; a stale totalPages
// under concurrent writes is acceptable.
func (s *bankService) GetBankStatement(ctx context.Context, bankID string, params dto.StatementParams) (*dto.BankStatementResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultStatementPageSize
	}

	bank, err := s.bankRepo.FindBankByID(ctx, bankID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bank for statement", slog.String("bank_id", bankID))
		}
		return nil, err
	}

	count, err := s.txnRepo.CountTransactionsByBank(ctx, bankID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count bank transactions", slog.String("bank_id", bankID))
		return nil, err
	}

	offset := (page - 1) * limit
	txns, err := s.txnRepo.ListTransactionsByBank(ctx, bankID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank transactions", slog.String("bank_id", bankID))
		return nil, err
	}

	computed, err := s.txnRepo.SumTransactionsByBank(ctx, bankID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute bank balance", slog.String("bank_id", bankID))
		return nil, err
	}

	totalPages := int((count + int64(limit) - 1) / int64(limit))

	return &dto.BankStatementResponse{
		BankName:        bank.BankName,
		AccountName:     bank.AccountName,
		Balance:         bank.Balance,
		Transactions:    dto.ToTransactionResponseSlice(txns),
		TotalPages:      totalPages,
		ComputedBalance: computed,
	}, nil
}
