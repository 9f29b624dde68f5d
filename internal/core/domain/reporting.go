package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyOrderStat aggregates the orders of one calendar month.
type MonthlyOrderStat struct {
	Month      time.Time       `json:"month"` // First day of the month, UTC
	OrderCount int64           `json:"orderCount"`
	TotalCost  decimal.Decimal `json:"totalCost"`
}

// VendorStat counts the orders placed with one vendor in a date range.
type VendorStat struct {
	Vendor     string `json:"vendor"`
	OrderCount int64  `json:"orderCount"`
}
