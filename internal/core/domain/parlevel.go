package domain

import (
	"fmt"
	"time"
)

// ParLevelTransaction is the audit record of a par-level change. PreviousPar
// must equal the item's par level immediately before the change was applied,
// which the service guarantees by reading it under a row lock.
type ParLevelTransaction struct {
	ParLevelTxnID string    `json:"parLevelTxnID"` // Primary key (UUID)
	ItemID        string    `json:"itemID"`        // FK -> Item.ItemID
	Timestamp     time.Time `json:"timestamp"`
	PreviousPar   int       `json:"previousPar"`
	NewPar        int       `json:"newPar"`
	Reason        string    `json:"reason"`
	CreatedBy     string    `json:"createdBy"`
}

// Validate checks that both par values are non-negative.
func (p *ParLevelTransaction) Validate() error {
	if p.PreviousPar < 0 {
		return fmt.Errorf("previous par must be non-negative, got %d", p.PreviousPar)
	}
	if p.NewPar < 0 {
		return fmt.Errorf("new par must be non-negative, got %d", p.NewPar)
	}
	return nil
}
