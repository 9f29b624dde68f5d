package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable purchase/receipt event tied to exactly one Item.
// Orders are appended by spreadsheet ingestion and never edited afterwards.
// Receiving an order does not touch the quantity ledger; stock enters the
// ledger only through explicit adjustments.
type Order struct {
	OrderID       string           `json:"orderID"` // Primary key (UUID)
	ItemID        string           `json:"itemID"`  // FK -> Item.ItemID (delete-protected)
	ItemNo        string           `json:"itemNo"`  // Denormalized from the owning item on reads
	Vendor        string           `json:"vendor"`
	VendorCatalog string           `json:"vendorCatalog"`
	ReceivedQty   int              `json:"receivedQty"`
	UnitOfMeasure string           `json:"unitOfMeasure"`
	Price         *decimal.Decimal `json:"price"` // Nullable unit price
	TotalCost     decimal.Decimal  `json:"totalCost"`
	CurrencyCode  string           `json:"currencyCode"`
	PONumber      string           `json:"poNumber"`
	PODate        time.Time        `json:"poDate"` // Stored UTC, parsed from business-timezone wall clock
	VendorCode    string           `json:"vendorCode"`
	VendorName    string           `json:"vendorName"`
	CostCenter    string           `json:"costCenter"`
	AccountNo     string           `json:"accountNo"`
	ReceiptDate   *time.Time       `json:"receiptDate"` // Optional, stored UTC
	AuditFields
}
