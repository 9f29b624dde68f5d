package repositories

import (
	"context"
	"time"

	"github.com/imedlab/inventory-manager/internal/core/domain"
)

// ReportingRepository defines the aggregate queries backing order reports.
type ReportingRepository interface {
	// MonthlyOrderStats returns per-month order counts and cost totals for
	// orders whose PO date falls within [from, to], in month order.
	MonthlyOrderStats(ctx context.Context, from, to time.Time) ([]domain.MonthlyOrderStat, error)

	// VendorBreakdown returns order counts grouped by vendor for the range,
	// descending by count.
	VendorBreakdown(ctx context.Context, from, to time.Time) ([]domain.VendorStat, error)
}
