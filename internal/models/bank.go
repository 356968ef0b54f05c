package models

import "github.com/shopspring/decimal"

// Bank represents a row of the banks table.
type Bank struct {
	BankID        string          `db:"bank_id"`
	BankName      string          `db:"bank_name"`
	BankLogo      string          `db:"bank_logo"`
	AccountNumber string          `db:"account_number"`
	AccountName   string          `db:"account_name"`
	AccountType   string          `db:"account_type"`
	Balance       decimal.Decimal `db:"balance"`
	AuditFields
}
