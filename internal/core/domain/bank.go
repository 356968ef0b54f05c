package domain

import "github.com/shopspring/decimal"

// Bank represents a bank account the ledger posts transactions against.
// Balance is a stored running total; it is only ever mutated inside the same
// database transaction as the posting that changes it, so it cannot drift
// from the total computed over the bank's transactions.
type Bank struct {
	BankID        string          `json:"bankID"` // Primary Key (UUID)
	BankName      string          `json:"bankName"`
	BankLogo      string          `json:"bankLogo"` // Display-only URL
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"` // Free-form (e.g. "Savings")
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}
