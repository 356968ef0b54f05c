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
	"github.com/google/uuid"
)

// accountService implements portssvc.AccountSvcFacade.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidationError("account name is required")
	}
	if !domain.ValidAccountType(req.AccountType) {
		return nil, fmt.Errorf("invalid account type %q: %w", req.AccountType, apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		Contact:     req.Contact,
		Address:     req.Address,
		AccountType: req.AccountType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get account",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	if !domain.ValidAccountType(accountType) {
		return nil, fmt.Errorf("invalid account type %q: %w", accountType, apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.ListAccountsByType(ctx, accountType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("account_type", string(accountType)))
		return nil, fmt.Errorf("failed to list accounts of type %s: %w", accountType, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
