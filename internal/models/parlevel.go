package models

import "time"

// ParLevelTransaction represents one entry of an item's par-level audit trail.
type ParLevelTransaction struct {
	ParLevelTxnID string    `json:"parLevelTxnID"` // Primary Key (UUID)
	ItemID        string    `json:"itemID"`        // FK to items, RESTRICT on delete
	Timestamp     time.Time `json:"timestamp"`
	PreviousPar   int       `json:"previousPar"`
	NewPar        int       `json:"newPar"`
	Reason        string    `json:"reason"`
	CreatedBy     string    `json:"createdBy"`
}
