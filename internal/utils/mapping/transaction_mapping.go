package mapping

import (
	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	"github.com/fsbooks/bookkeeping_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		Type:            models.AccountType(d.Type),
		AccountID:       d.AccountID,
		AccountHolder:   d.AccountHolder,
		Date:            d.Date,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.TransactionType),
		Product:         d.Product,
		Volume:          d.Volume,
		BankID:          d.BankID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		Type:            domain.AccountType(m.Type),
		AccountID:       m.AccountID,
		AccountHolder:   m.AccountHolder,
		Date:            m.Date,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		Product:         m.Product,
		Volume:          m.Volume,
		BankID:          m.BankID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
