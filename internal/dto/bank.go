package dto

import (
	"time"

	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankRequest defines the data needed to create a new bank.
// The balance always starts at zero and cannot be supplied by the caller.
type CreateBankRequest struct {
	BankName      string `json:"bankName" binding:"required"`
	BankLogo      string `json:"bankLogo" binding:"required"` // Display-only URL
	AccountNumber string `json:"accountNumber" binding:"required"`
	AccountName   string `json:"accountName" binding:"required"`
	AccountType   string `json:"accountType" binding:"required"`
}

// BankResponse defines the data returned for a bank.
type BankResponse struct {
	BankID        string          `json:"bankID"`
	BankName      string          `json:"bankName"`
	BankLogo      string          `json:"bankLogo"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToBankResponse converts a domain.Bank to BankResponse DTO
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{
		BankID:        b.BankID,
		BankName:      b.BankName,
		BankLogo:      b.BankLogo,
		AccountNumber: b.AccountNumber,
		AccountName:   b.AccountName,
		AccountType:   b.AccountType,
		Balance:       b.Balance,
		CreatedAt:     b.CreatedAt,
	}
}

// ToBankResponseSlice converts a slice of domain.Bank to BankResponse DTOs
func ToBankResponseSlice(banks []domain.Bank) []BankResponse {
	res := make([]BankResponse, len(banks))
	for i, b := range banks {
		res[i] = ToBankResponse(&b)
	}
	return res
}

// ListBanksResponse wraps the list of banks.
type ListBanksResponse struct {
	Banks []BankResponse `json:"banks"`
}

// StatementParams defines query parameters for a paginated bank statement.
type StatementParams struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=15" binding:"omitempty,min=1"`
}

// BankStatementResponse is one page of a bank's statement. ComputedBalance
// is derived from ALL of the bank's transactions, not just the page returned.
type BankStatementResponse struct {
	BankName        string                `json:"bankName"`
	AccountName     string                `json:"accountName"`
	Balance         decimal.Decimal       `json:"balance"`
	Transactions    []TransactionResponse `json:"transactions"`
	TotalPages      int                   `json:"totalPages"`
	ComputedBalance decimal.Decimal       `json:"computedBalance"`
}
