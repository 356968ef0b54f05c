package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsbooks/bookkeeping_backend/internal/apperrors"
	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/fsbooks/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/fsbooks/bookkeeping_backend/internal/core/ports/services"
	"github.com/fsbooks/bookkeeping_backend/internal/dto"
	"github.com/fsbooks/bookkeeping_backend/internal/utils/accounting"
	"github.com/google/uuid"
)

// transactionService implements portssvc.TransactionSvcFacade.
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepository
	accountRepo portsrepo.AccountRepository
	bankRepo    portsrepo.BankRepository
}

// NewTransactionService creates the transaction service. The account and
// bank repositories are needed for the write-time referential checks.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository, bankRepo portsrepo.BankRepository) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		bankRepo:    bankRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the posting, resolves its references and
// persists it. The repository inserts the row and adjusts the bank balance
// in one database transaction: both happen or neither.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            req.Type,
		AccountHolder:   req.AccountHolder,
		Date:            date,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Product:         req.Product,
		Volume:          req.Volume,
		BankID:          req.BankID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	// Resolve the holder name to a real account (referential check).
	account, err := s.accountRepo.FindAccountByName(ctx, req.AccountHolder)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("account holder " + req.AccountHolder + " not found")
		}
		s.LogError(ctx, err, "Failed to resolve account holder", slog.String("account_holder", req.AccountHolder))
		return nil, err
	}
	txn.AccountID = account.AccountID

	// Fail fast with a clear not-found before attempting the posting. The
	// repository re-checks inside its transaction, so a bank deleted between
	// these two calls still cannot leave an orphaned posting.
	if _, err := s.bankRepo.FindBankByID(ctx, req.BankID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("bank " + req.BankID + " not found")
		}
		s.LogError(ctx, err, "Failed to resolve bank", slog.String("bank_id", req.BankID))
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("bank_id", txn.BankID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction posted successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("bank_id", txn.BankID),
		slog.String("transaction_type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// UpdateTransaction applies a partial update to the mutable fields. An
// amount change re-adjusts the bank balance by the delta inside the
// repository's database transaction.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount != nil && req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("amount must not be negative")
	}

	updated, err := s.txnRepo.UpdateTransaction(ctx, transactionID, portsrepo.TransactionUpdate{
		Amount:  req.Amount,
		Product: req.Product,
		Volume:  req.Volume,
	}, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.String("transaction_id", transactionID))
	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}

	s.LogInfo(ctx, "Transaction deleted successfully", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get transaction",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) ListTransactionsByAccountHolder(ctx context.Context, accountHolder string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByAccountHolder(ctx, accountHolder)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by account holder",
			slog.String("account_holder", accountHolder))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// ReportTransactions builds a holder's report: transactions date ascending
// plus the net total (credits minus debits) over the reported set. The date
// range is applied only when both bounds are present, inclusive on both ends.
func (s *transactionService) ReportTransactions(ctx context.Context, params dto.ReportParams) (*dto.ReportResponse, error) {
	if params.AccountHolder == "" {
		return nil, apperrors.NewValidationError("account holder is required")
	}

	var startDate, endDate *time.Time
	if params.StartDate != "" && params.EndDate != "" {
		start, err := time.Parse(dto.DateLayout, params.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", params.StartDate, apperrors.ErrValidation)
		}
		end, err := time.Parse(dto.DateLayout, params.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", params.EndDate, apperrors.ErrValidation)
		}
		if end.Before(start) {
			return nil, apperrors.NewValidationError("end date must not precede start date")
		}
		startDate, endDate = &start, &end
	}

	txns, err := s.txnRepo.ReportTransactions(ctx, params.AccountHolder, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to build transaction report",
			slog.String("account_holder", params.AccountHolder))
		return nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	netTotal, err := accounting.ComputeBalance(txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute report net total",
			slog.String("account_holder", params.AccountHolder))
		return nil, err
	}

	return &dto.ReportResponse{
		AccountHolder: params.AccountHolder,
		Transactions:  dto.ToTransactionResponseSlice(txns),
		NetTotal:      netTotal,
	}, nil
}
