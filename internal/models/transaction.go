package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the Credit/Debit enum at the storage layer.
type TransactionType string

const (
	Credit TransactionType = "Credit"
	Debit  TransactionType = "Debit"
)

// Transaction represents a row of the transactions table.
type Transaction struct {
	TransactionID   string           `db:"transaction_id"`
	Type            AccountType      `db:"type"`
	AccountID       string           `db:"account_id"`
	AccountHolder   string           `db:"account_holder"`
	Date            time.Time        `db:"date"`
	Amount          decimal.Decimal  `db:"amount"`
	TransactionType TransactionType  `db:"transaction_type"`
	Product         *string          `db:"product"` // Nullable
	Volume          *decimal.Decimal `db:"volume"`  // Nullable
	BankID          string           `db:"bank_id"`
	AuditFields
}
