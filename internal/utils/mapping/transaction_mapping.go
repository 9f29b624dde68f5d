package mapping

import (
	"github.com/imedlab/inventory-manager/internal/core/domain"
	"github.com/imedlab/inventory-manager/internal/models"
)

// ToModelItemTransaction converts a domain ItemTransaction to a model ItemTransaction
func ToModelItemTransaction(d domain.ItemTransaction) models.ItemTransaction {
	return models.ItemTransaction{
		TransactionID:   d.TransactionID,
		ItemID:          d.ItemID,
		Timestamp:       d.Timestamp,
		Change:          d.Change,
		TransactionType: string(d.TransactionType),
		Reason:          d.Reason,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainItemTransaction converts a model ItemTransaction to a domain ItemTransaction
func ToDomainItemTransaction(m models.ItemTransaction) domain.ItemTransaction {
	return domain.ItemTransaction{
		TransactionID:   m.TransactionID,
		ItemID:          m.ItemID,
		Timestamp:       m.Timestamp,
		Change:          m.Change,
		TransactionType: domain.TransactionType(m.TransactionType),
		Reason:          m.Reason,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainItemTransactionSlice converts model ItemTransactions to domain form
func ToDomainItemTransactionSlice(ms []models.ItemTransaction) []domain.ItemTransaction {
	ds := make([]domain.ItemTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItemTransaction(m)
	}
	return ds
}
