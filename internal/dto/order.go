package dto

import (
	"time"

	"github.com/imedlab/inventory-manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderResponse defines the data returned for one purchase/receipt record.
type OrderResponse struct {
	OrderID       string           `json:"orderID"`
	ItemID        string           `json:"itemID"`
	ItemNo        string           `json:"itemNo"`
	Vendor        string           `json:"vendor"`
	VendorCatalog string           `json:"vendorCatalog"`
	ReceivedQty   int              `json:"receivedQty"`
	UnitOfMeasure string           `json:"unitOfMeasure"`
	Price         *decimal.Decimal `json:"price"`
	TotalCost     decimal.Decimal  `json:"totalCost"`
	CurrencyCode  string           `json:"currencyCode"`
	PONumber      string           `json:"poNumber"`
	PODate        time.Time        `json:"poDate"`
	VendorCode    string           `json:"vendorCode"`
	VendorName    string           `json:"vendorName"`
	CostCenter    string           `json:"costCenter"`
	AccountNo     string           `json:"accountNo"`
	ReceiptDate   *time.Time       `json:"receiptDate,omitempty"`
}

// ListOrdersResponse wraps a page of orders with the token for the next page.
type ListOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToOrderResponse converts a domain.Order to an OrderResponse DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:       o.OrderID,
		ItemID:        o.ItemID,
		ItemNo:        o.ItemNo,
		Vendor:        o.Vendor,
		VendorCatalog: o.VendorCatalog,
		ReceivedQty:   o.ReceivedQty,
		UnitOfMeasure: o.UnitOfMeasure,
		Price:         o.Price,
		TotalCost:     o.TotalCost,
		CurrencyCode:  o.CurrencyCode,
		PONumber:      o.PONumber,
		PODate:        o.PODate,
		VendorCode:    o.VendorCode,
		VendorName:    o.VendorName,
		CostCenter:    o.CostCenter,
		AccountNo:     o.AccountNo,
		ReceiptDate:   o.ReceiptDate,
	}
}

// ToOrderResponses converts a slice of domain.Order.
func ToOrderResponses(orders []domain.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(&o)
	}
	return responses
}
