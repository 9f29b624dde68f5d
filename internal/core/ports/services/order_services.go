package services

import (
	"context"
	"time"

	"github.com/imedlab/inventory-manager/internal/core/domain"
)

// OrderSvcFacade provides read access to the order ledger.
type OrderSvcFacade interface {
	// ListOrdersByDateRange retrieves a page of orders with a PO date in
	// [from, to], with a token for the next page.
	ListOrdersByDateRange(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.Order, *string, error)

	// OrdersForItem retrieves all orders for one item, most recent first.
	OrdersForItem(ctx context.Context, itemID string) ([]domain.Order, error)

	// ExportOrders renders the orders of a date range as an .xlsx workbook.
	ExportOrders(ctx context.Context, from, to time.Time) ([]byte, error)
}

// ReportingSvcFacade provides aggregate reports over the order ledger.
type ReportingSvcFacade interface {
	// MonthlyOrderStats returns per-month order counts and cost totals.
	MonthlyOrderStats(ctx context.Context, from, to time.Time) ([]domain.MonthlyOrderStat, error)

	// VendorBreakdown returns order counts per vendor, descending.
	VendorBreakdown(ctx context.Context, from, to time.Time) ([]domain.VendorStat, error)

	// EarliestPODate returns the PO date of the oldest order on record.
	EarliestPODate(ctx context.Context) (time.Time, error)
}
