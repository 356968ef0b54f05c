package dto

import (
	"time"

	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to post a transaction.
// Date uses the ISO-8601 date layout (2006-01-02).
type CreateTransactionRequest struct {
	Type            domain.AccountType     `json:"type" binding:"required,accounttype"`
	AccountHolder   string                 `json:"accountHolder" binding:"required"`
	Date            string                 `json:"date" binding:"required,datetime=2006-01-02"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,transactiontype"`
	Product         *string                `json:"product"` // Optional
	Volume          *decimal.Decimal       `json:"volume"`  // Optional
	BankID          string                 `json:"bankId" binding:"required"`
}

// UpdateTransactionRequest defines the mutable fields of a transaction.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Amount  *decimal.Decimal `json:"amount"`
	Product *string          `json:"product"`
	Volume  *decimal.Decimal `json:"volume"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	Type            domain.AccountType     `json:"type"`
	AccountID       string                 `json:"accountID"`
	AccountHolder   string                 `json:"accountHolder"`
	Date            string                 `json:"date"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Product         *string                `json:"product"`
	Volume          *decimal.Decimal       `json:"volume"`
	BankID          string                 `json:"bankId"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Type:            t.Type,
		AccountID:       t.AccountID,
		AccountHolder:   t.AccountHolder,
		Date:            t.Date.Format(DateLayout),
		Amount:          t.Amount,
		TransactionType: t.TransactionType,
		Product:         t.Product,
		Volume:          t.Volume,
		BankID:          t.BankID,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionResponseSlice converts a slice of domain.Transaction to TransactionResponse DTOs
func ToTransactionResponseSlice(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ReportResponse is the per-holder report: the holder's transactions oldest
// first plus their net total (credits minus debits) over the reported range.
type ReportResponse struct {
	AccountHolder string                `json:"accountHolder"`
	Transactions  []TransactionResponse `json:"transactions"`
	NetTotal      decimal.Decimal       `json:"netTotal"`
}

// ReportParams defines query parameters for the per-holder report.
// StartDate and EndDate are only applied when both are present.
type ReportParams struct {
	AccountHolder string `form:"accountHolder" binding:"required"`
	StartDate     string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}
