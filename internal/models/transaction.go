package models

import "time"

// ItemTransaction represents one append-only quantity ledger entry.
type ItemTransaction struct {
	TransactionID   string    `json:"transactionID"` // Primary Key (UUID)
	ItemID          string    `json:"itemID"`        // FK to items, RESTRICT on delete
	Timestamp       time.Time `json:"timestamp"`     // When the adjustment happened, UTC
	Change          int64     `json:"change"`        // Signed; positive for IN, negative for OUT
	TransactionType string    `json:"transactionType"`
	Reason          string    `json:"reason"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
}
