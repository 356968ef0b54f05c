package dto

import (
	"time"

	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	Contact     string             `json:"contact"` // Optional
	Address     string             `json:"address"` // Optional
	AccountType domain.AccountType `json:"accountType" binding:"required,accounttype"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	Name        string             `json:"name"`
	Contact     string             `json:"contact"`
	Address     string             `json:"address"`
	AccountType domain.AccountType `json:"accountType"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Name:        acc.Name,
		Contact:     acc.Contact,
		Address:     acc.Address,
		AccountType: acc.AccountType,
		CreatedAt:   acc.CreatedAt,
	}
}

// ToAccountResponseSlice converts a slice of domain.Account to AccountResponse DTOs
func ToAccountResponseSlice(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
