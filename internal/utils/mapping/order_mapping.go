package mapping

import (
	"github.com/imedlab/inventory-manager/internal/core/domain"
	"github.com/imedlab/inventory-manager/internal/models"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:       d.OrderID,
		ItemID:        d.ItemID,
		ItemNo:        d.ItemNo,
		Vendor:        d.Vendor,
		VendorCatalog: d.VendorCatalog,
		ReceivedQty:   d.ReceivedQty,
		UnitOfMeasure: d.UnitOfMeasure,
		Price:         d.Price,
		TotalCost:     d.TotalCost,
		CurrencyCode:  d.CurrencyCode,
		PONumber:      d.PONumber,
		PODate:        d.PODate,
		VendorCode:    d.VendorCode,
		VendorName:    d.VendorName,
		CostCenter:    d.CostCenter,
		AccountNo:     d.AccountNo,
		ReceiptDate:   d.ReceiptDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:       m.OrderID,
		ItemID:        m.ItemID,
		ItemNo:        m.ItemNo,
		Vendor:        m.Vendor,
		VendorCatalog: m.VendorCatalog,
		ReceivedQty:   m.ReceivedQty,
		UnitOfMeasure: m.UnitOfMeasure,
		Price:         m.Price,
		TotalCost:     m.TotalCost,
		CurrencyCode:  m.CurrencyCode,
		PONumber:      m.PONumber,
		PODate:        m.PODate,
		VendorCode:    m.VendorCode,
		VendorName:    m.VendorName,
		CostCenter:    m.CostCenter,
		AccountNo:     m.AccountNo,
		ReceiptDate:   m.ReceiptDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrderSlice converts a slice of model Orders to a slice of domain Orders
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}
