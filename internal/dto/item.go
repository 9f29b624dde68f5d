package dto

import (
	"time"

	"github.com/imedlab/inventory-manager/internal/core/domain"
)

// ItemResponse defines the data returned for an inventory item. Quantity is
// derived from the transaction ledger at read time, never stored.
type ItemResponse struct {
	ItemID              string    `json:"itemID"`
	Name                string    `json:"name"`
	ItemNo              string    `json:"itemNo"`
	Manufacturer        string    `json:"manufacturer"`
	ManufacturerCatalog string    `json:"manufacturerCatalog"`
	Description         string    `json:"description"`
	ParLevel            int       `json:"parLevel"`
	ExternalURL         string    `json:"externalURL"`
	Quantity            int64     `json:"quantity"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ListItemsResponse wraps a page of items with the token for the next page.
type ListItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ChangeParLevelRequest defines the payload for changing an item's par level.
// NewPar is a pointer so that an explicit 0 survives binding.
type ChangeParLevelRequest struct {
	NewPar *int   `json:"newPar" binding:"required,min=0"`
	Reason string `json:"reason"`
}

// ParLevelTxnResponse defines the data returned for one par-level change.
type ParLevelTxnResponse struct {
	ParLevelTxnID string    `json:"parLevelTxnID"`
	ItemID        string    `json:"itemID"`
	Timestamp     time.Time `json:"timestamp"`
	PreviousPar   int       `json:"previousPar"`
	NewPar        int       `json:"newPar"`
	Reason        string    `json:"reason"`
}

// ToItemResponse converts a domain.Item and its derived quantity to a DTO.
func ToItemResponse(item *domain.Item, quantity int64) ItemResponse {
	return ItemResponse{
		ItemID:              item.ItemID,
		Name:                item.Name,
		ItemNo:              item.ItemNo,
		Manufacturer:        item.Manufacturer,
		ManufacturerCatalog: item.ManufacturerCatalog,
		Description:         item.Description,
		ParLevel:            item.ParLevel,
		ExternalURL:         item.ExternalURL,
		Quantity:            quantity,
		CreatedAt:           item.CreatedAt,
	}
}

// ToParLevelTxnResponse converts a domain.ParLevelTransaction to a DTO.
func ToParLevelTxnResponse(txn *domain.ParLevelTransaction) ParLevelTxnResponse {
	return ParLevelTxnResponse{
		ParLevelTxnID: txn.ParLevelTxnID,
		ItemID:        txn.ItemID,
		Timestamp:     txn.Timestamp,
		PreviousPar:   txn.PreviousPar,
		NewPar:        txn.NewPar,
		Reason:        txn.Reason,
	}
}

// ToParLevelTxnResponses converts a slice of par-level transactions.
func ToParLevelTxnResponses(txns []domain.ParLevelTransaction) []ParLevelTxnResponse {
	responses := make([]ParLevelTxnResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToParLevelTxnResponse(&txn)
	}
	return responses
}
