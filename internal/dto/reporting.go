package dto

import (
	"github.com/imedlab/inventory-manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyOrderStatResponse reports one month's order count and spend.
type MonthlyOrderStatResponse struct {
	Month      string          `json:"month"` // "January 2024"
	OrderCount int64           `json:"orderCount"`
	TotalCost  decimal.Decimal `json:"totalCost"`
}

// OrderReportResponse is the advanced order report over a date range.
type OrderReportResponse struct {
	From        string                     `json:"from"`
	To          string                     `json:"to"`
	TotalOrders int64                      `json:"totalOrders"`
	Monthly     []MonthlyOrderStatResponse `json:"monthly"`
	Vendors     []domain.VendorStat        `json:"vendors"`
}

// ToMonthlyOrderStatResponses converts monthly aggregates to DTOs.
func ToMonthlyOrderStatResponses(stats []domain.MonthlyOrderStat) []MonthlyOrderStatResponse {
	responses := make([]MonthlyOrderStatResponse, len(stats))
	for i, s := range stats {
		responses[i] = MonthlyOrderStatResponse{
			Month:      s.Month.Format("January 2006"),
			OrderCount: s.OrderCount,
			TotalCost:  s.TotalCost,
		}
	}
	return responses
}
