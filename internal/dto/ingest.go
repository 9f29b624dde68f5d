package dto

import "fmt"

// RowError reports why one spreadsheet row failed ingestion. Row numbers are
// 1-based as shown in the workbook (the header is row 1).
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// ImportSummary reports the outcome of one workbook ingestion. A batch can
// partially succeed: failed rows are listed and the rest are committed.
type ImportSummary struct {
	RowsProcessed int        `json:"rowsProcessed"`
	ItemsCreated  int        `json:"itemsCreated"`
	ItemsReused   int        `json:"itemsReused"`
	OrdersCreated int        `json:"ordersCreated"`
	RowErrors     []RowError `json:"rowErrors,omitempty"`
}
