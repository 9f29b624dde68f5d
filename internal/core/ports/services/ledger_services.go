package services

import (
	"context"

	"github.com/imedlab/inventory-manager/internal/core/domain"
)

// LedgerSvcFacade provides the quantity ledger operations.
type LedgerSvcFacade interface {
	// RecordAdjustment appends a signed transaction built from a direction
	// and an unsigned quantity (>= 1). The item is resolved by item number;
	// an unknown number fails with apperrors.ErrUnknownItem, never an
	// implicit create.
	RecordAdjustment(ctx context.Context, itemNo string, direction domain.TransactionType, quantity int64, reason string, userID string) (*domain.ItemTransaction, error)

	// Quantity returns the item's derived quantity on hand.
	Quantity(ctx context.Context, itemID string) (int64, error)

	// ListTransactions retrieves a page of an item's ledger, most recent
	// first, with a token for the next page.
	ListTransactions(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.ItemTransaction, *string, error)
}
