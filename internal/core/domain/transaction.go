package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction credits or debits a bank.
type TransactionType string

const (
	Credit TransactionType = "Credit"
	Debit  TransactionType = "Debit"
)

// ValidTransactionType reports whether t is Credit or Debit.
func ValidTransactionType(t TransactionType) bool {
	return t == Credit || t == Debit
}

// Transaction represents a single Credit/Debit posting against a Bank, filed
// under an account holder.
type Transaction struct {
	TransactionID   string           `json:"transactionID"` // Primary Key (UUID)
	Type            AccountType      `json:"type"`          // Category the posting is filed under
	AccountID       string           `json:"accountID"`     // FK -> Account.accountID (resolved at write time)
	AccountHolder   string           `json:"accountHolder"` // Holder name as presented on the wire
	Date            time.Time        `json:"date"`          // Value date of the posting
	Amount          decimal.Decimal  `json:"amount"`        // Non-negative
	TransactionType TransactionType  `json:"transactionType"`
	Product         *string          `json:"product"` // Only for Customers / Feedstock Vendors flows
	Volume          *decimal.Decimal `json:"volume"`
	BankID          string           `json:"bankID"` // FK -> Bank.bankID (Not Null)
	AuditFields
}

// Validate checks the transaction's own invariants. Referential checks
// (bank and account holder existence) are the store's responsibility.
func (t Transaction) Validate() error {
	if !ValidAccountType(t.Type) {
		return fmt.Errorf("unknown account type %q", t.Type)
	}
	if t.AccountHolder == "" {
		return fmt.Errorf("account holder is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	if !ValidTransactionType(t.TransactionType) {
		return fmt.Errorf("transaction type must be %s or %s", Credit, Debit)
	}
	if t.BankID == "" {
		return fmt.Errorf("bank ID is required")
	}
	return nil
}
