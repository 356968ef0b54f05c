package mapping

import (
	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	"github.com/fsbooks/bookkeeping_backend/internal/models"
)

// ToModelBank converts a domain Bank to a model Bank
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		BankID:        d.BankID,
		BankName:      d.BankName,
		BankLogo:      d.BankLogo,
		AccountNumber: d.AccountNumber,
		AccountName:   d.AccountName,
		AccountType:   d.AccountType,
		Balance:       d.Balance,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainBank converts a model Bank to a domain Bank
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		BankID:        m.BankID,
		BankName:      m.BankName,
		BankLogo:      m.BankLogo,
		AccountNumber: m.AccountNumber,
		AccountName:   m.AccountName,
		AccountType:   m.AccountType,
		Balance:       m.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainBankSlice converts a slice of model Banks to domain Banks
func ToDomainBankSlice(ms []models.Bank) []domain.Bank {
	ds := make([]domain.Bank, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBank(m)
	}
	return ds
}
