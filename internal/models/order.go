package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents one received purchase-order line.
type Order struct {
	OrderID       string           `json:"orderID"` // Primary Key (UUID)
	ItemID        string           `json:"itemID"`  // FK to items, RESTRICT on delete
	ItemNo        string           `json:"itemNo"`  // Joined from items on reads
	Vendor        string           `json:"vendor"`
	VendorCatalog string           `json:"vendorCatalog"`
	ReceivedQty   int              `json:"receivedQty"`
	UnitOfMeasure string           `json:"unitOfMeasure"`
	Price         *decimal.Decimal `json:"price"` // Nullable unit price
	TotalCost     decimal.Decimal  `json:"totalCost"`
	CurrencyCode  string           `json:"currencyCode"`
	PONumber      string           `json:"poNumber"`
	PODate        time.Time        `json:"poDate"` // Stored UTC
	VendorCode    string           `json:"vendorCode"`
	VendorName    string           `json:"vendorName"`
	CostCenter    string           `json:"costCenter"`
	AccountNo     string           `json:"accountNo"`
	ReceiptDate   *time.Time       `json:"receiptDate"` // Nullable, stored UTC
	AuditFields
}
