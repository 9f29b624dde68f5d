package dto

import (
	"time"

	"github.com/imedlab/inventory-manager/internal/core/domain"
)

// AdjustmentRequest defines the payload of a barcode/manual stock adjustment.
// Quantity is unsigned at the boundary; the service assigns the sign from
// Direction. A pre-signed quantity is never accepted.
type AdjustmentRequest struct {
	ItemNo    string `json:"itemNo" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=in out"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
	Reason    string `json:"reason"`
}

// TransactionResponse defines the data returned for one ledger entry.
type TransactionResponse struct {
	TransactionID   string    `json:"transactionID"`
	ItemID          string    `json:"itemID"`
	Timestamp       time.Time `json:"timestamp"`
	Change          int64     `json:"change"`
	TransactionType string    `json:"transactionType"`
	Reason          string    `json:"reason"`
}

// ListTransactionsResponse wraps a page of ledger entries with the next-page
// token and the item's current derived quantity.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Quantity     int64                 `json:"quantity"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.ItemTransaction to a DTO.
func ToTransactionResponse(txn *domain.ItemTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		ItemID:          txn.ItemID,
		Timestamp:       txn.Timestamp,
		Change:          txn.Change,
		TransactionType: string(txn.TransactionType),
		Reason:          txn.Reason,
	}
}

// ToTransactionResponses converts a slice of ledger entries.
func ToTransactionResponses(txns []domain.ItemTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
