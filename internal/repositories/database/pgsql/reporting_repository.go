package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imedlab/inventory-manager/internal/core/domain"
	portsrepo "github.com/imedlab/inventory-manager/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// MonthlyOrderStats aggregates order counts and spend per calendar month of
// the PO date, in month order.
func (r *reportingRepository) MonthlyOrderStats(ctx context.Context, from, to time.Time) ([]domain.MonthlyOrderStat, error) {
	query := `
		SELECT
			date_trunc('month', po_date) AS month,
			COUNT(*) AS order_count,
			COALESCE(SUM(total_cost), 0) AS total_cost
		FROM orders
		WHERE po_date >= $1 AND po_date <= $2
		GROUP BY month
		ORDER BY month;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly order stats: %w", err)
	}
	defer rows.Close()

	var result []domain.MonthlyOrderStat
	for rows.Next() {
		var stat domain.MonthlyOrderStat
		if err := rows.Scan(&stat.Month, &stat.OrderCount, &stat.TotalCost); err != nil {
			return nil, fmt.Errorf("error scanning monthly order stat row: %w", err)
		}
		result = append(result, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly order stat rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.MonthlyOrderStat{}, nil
	}
	return result, nil
}

// VendorBreakdown counts orders per vendor for the range, busiest first.
func (r *reportingRepository) VendorBreakdown(ctx context.Context, from, to time.Time) ([]domain.VendorStat, error) {
	query := `
		SELECT vendor, COUNT(*) AS order_count
		FROM orders
		WHERE po_date >= $1 AND po_date <= $2
		GROUP BY vendor
		ORDER BY order_count DESC, vendor;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying vendor breakdown: %w", err)
	}
	defer rows.Close()

	var result []domain.VendorStat
	for rows.Next() {
		var stat domain.VendorStat
		if err := rows.Scan(&stat.Vendor, &stat.OrderCount); err != nil {
			return nil, fmt.Errorf("error scanning vendor stat row: %w", err)
		}
		result = append(result, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendor stat rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.VendorStat{}, nil
	}
	return result, nil
}
