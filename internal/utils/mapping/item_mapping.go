package mapping

import (
	"github.com/imedlab/inventory-manager/internal/core/domain"
	"github.com/imedlab/inventory-manager/internal/models"
)

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:              d.ItemID,
		Name:                d.Name,
		ItemNo:              d.ItemNo,
		Manufacturer:        d.Manufacturer,
		ManufacturerCatalog: d.ManufacturerCatalog,
		Description:         d.Description,
		ParLevel:            d.ParLevel,
		ExternalURL:         d.ExternalURL,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:              m.ItemID,
		Name:                m.Name,
		ItemNo:              m.ItemNo,
		Manufacturer:        m.Manufacturer,
		ManufacturerCatalog: m.ManufacturerCatalog,
		Description:         m.Description,
		ParLevel:            m.ParLevel,
		ExternalURL:         m.ExternalURL,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainItemSlice converts a slice of model Items to a slice of domain Items
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	ds := make([]domain.Item, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}

// ToDomainParLevelTransaction converts a model ParLevelTransaction to its domain form
func ToDomainParLevelTransaction(m models.ParLevelTransaction) domain.ParLevelTransaction {
	return domain.ParLevelTransaction{
		ParLevelTxnID: m.ParLevelTxnID,
		ItemID:        m.ItemID,
		Timestamp:     m.Timestamp,
		PreviousPar:   m.PreviousPar,
		NewPar:        m.NewPar,
		Reason:        m.Reason,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainParLevelTransactionSlice converts model ParLevelTransactions to domain form
func ToDomainParLevelTransactionSlice(ms []models.ParLevelTransaction) []domain.ParLevelTransaction {
	ds := make([]domain.ParLevelTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParLevelTransaction(m)
	}
	return ds
}
