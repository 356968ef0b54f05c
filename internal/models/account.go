package models

// AccountType mirrors the fixed account categories at the storage layer.
type AccountType string

const (
	Customers        AccountType = "Customers"
	FeedstockVendors AccountType = "Feedstock Vendors"
	Regular          AccountType = "Regular"
	Employees        AccountType = "Employees"
)

// Account represents a row of the accounts table.
type Account struct {
	AccountID   string      `db:"account_id"`
	Name        string      `db:"name"`
	Contact     string      `db:"contact"` // Nullable, stored as empty string
	Address     string      `db:"address"` // Nullable, stored as empty string
	AccountType AccountType `db:"account_type"`
	AuditFields             // Embed common audit fields
}
