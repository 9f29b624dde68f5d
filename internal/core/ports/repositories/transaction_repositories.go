package repositories

import (
	"context"

	"github.com/imedlab/inventory-manager/internal/core/domain"
)

// TransactionReader defines read operations for the quantity ledger
type TransactionReader interface {
	// ListTransactionsByItemID retrieves a paginated list of an item's
	// transactions, most recent first, using token-based pagination.
	ListTransactionsByItemID(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.ItemTransaction, *string, error)

	// SumChangesByItemID returns the signed sum of all changes for an item,
	// 0 when the item has no transactions. This is the quantity on hand.
	SumChangesByItemID(ctx context.Context, itemID string) (int64, error)
}

// TransactionWriter defines write operations for the quantity ledger
type TransactionWriter interface {
	// SaveTransaction appends a transaction. The ledger is append-only;
	// there is no update or delete.
	SaveTransaction(ctx context.Context, txn domain.ItemTransaction) error
}

// TransactionRepositoryFacade combines the ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
