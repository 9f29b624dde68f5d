package domain

import (
	"fmt"
	"time"
)

// TransactionType indicates the direction of a stock adjustment.
type TransactionType string

const (
	StockIn  TransactionType = "IN"
	StockOut TransactionType = "OUT"
)

// ItemTransaction is a signed adjustment to an item's quantity on hand.
// The ledger of these records is the sole source of truth for quantity;
// records are appended, never mutated or deleted.
type ItemTransaction struct {
	TransactionID   string          `json:"transactionID"` // Primary key (UUID)
	ItemID          string          `json:"itemID"`        // FK -> Item.ItemID (delete-protected)
	Timestamp       time.Time       `json:"timestamp"`     // Set at creation, immutable
	Change          int64           `json:"change"`        // Positive = stock in, negative = stock out
	TransactionType TransactionType `json:"transactionType"`
	Reason          string          `json:"reason"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// Validate enforces that the sign of Change agrees with TransactionType.
// The layer constructing a transaction from an unsigned quantity and a
// direction flag assigns the sign; a pre-signed quantity is never trusted.
func (t *ItemTransaction) Validate() error {
	switch t.TransactionType {
	case StockIn:
		if t.Change <= 0 {
			return fmt.Errorf("stock-in transaction must have a positive change, got %d", t.Change)
		}
	case StockOut:
		if t.Change >= 0 {
			return fmt.Errorf("stock-out transaction must have a negative change, got %d", t.Change)
		}
	default:
		return fmt.Errorf("unknown transaction type %q", t.TransactionType)
	}
	return nil
}

// SumChanges returns the exact signed sum of all changes. The sum is
// commutative, so insertion order does not matter; an empty ledger sums to 0.
func SumChanges(txns []ItemTransaction) int64 {
	var total int64
	for _, t := range txns {
		total += t.Change
	}
	return total
}
