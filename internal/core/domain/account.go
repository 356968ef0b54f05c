package domain

// AccountType partitions accounts into the four fixed ledger categories.
type AccountType string

const (
	Customers        AccountType = "Customers"
	FeedstockVendors AccountType = "Feedstock Vendors"
	Regular          AccountType = "Regular"
	Employees        AccountType = "Employees"
)

// ValidAccountType reports whether t is one of the known account categories.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Customers, FeedstockVendors, Regular, Employees:
		return true
	}
	return false
}

// Account represents a party (customer, vendor, employee, ...) that
// transactions are filed against. This is the primary representation used by
// services.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary Key (UUID)
	Name        string      `json:"name"`
	Contact     string      `json:"contact"` // Nullable contact detail
	Address     string      `json:"address"` // Nullable postal address
	AccountType AccountType `json:"accountType"`
	AuditFields             // Embed CreatedAt / LastUpdatedAt
}
