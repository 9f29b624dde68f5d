package services

import (
	"context"
	"fmt"
	"time"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portsrepo "github.com/imedlab/inventory-manager/internal/core/ports/repositories"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
)

// reportingService aggregates the order ledger for the advanced order views:
// monthly counts and spend, and a per-vendor breakdown.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	orderRepo     portsrepo.OrderReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, orderRepo portsrepo.OrderReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		orderRepo:     orderRepo,
	}
}

// MonthlyOrderStats returns per-month order counts and cost totals for the range.
func (s *reportingService) MonthlyOrderStats(ctx context.Context, from, to time.Time) ([]domain.MonthlyOrderStat, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	stats, err := s.reportingRepo.MonthlyOrderStats(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly order stats: %w", err)
	}
	return stats, nil
}

// VendorBreakdown returns order counts per vendor for the range, descending.
func (s *reportingService) VendorBreakdown(ctx context.Context, from, to time.Time) ([]domain.VendorStat, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	vendors, err := s.reportingRepo.VendorBreakdown(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute vendor breakdown: %w", err)
	}
	return vendors, nil
}

// EarliestPODate returns the PO date of the oldest order on record, used as
// the lower bound of selectable report ranges.
func (s *reportingService) EarliestPODate(ctx context.Context) (time.Time, error) {
	return s.orderRepo.EarliestPODate(ctx)
}
