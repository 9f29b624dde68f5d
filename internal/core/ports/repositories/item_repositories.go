package repositories

import (
	"context"
	"time"

	"github.com/imedlab/inventory-manager/internal/core/domain"
)

// ItemReader defines read operations for item data
type ItemReader interface {
	// FindItemByID retrieves a specific item by its internal identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// FindItemByItemNo retrieves an item by its external item number, the
	// de-duplication key. Returns apperrors.ErrNotFound when absent.
	FindItemByItemNo(ctx context.Context, itemNo string) (*domain.Item, error)

	// ListItems retrieves a paginated list of items using token-based pagination.
	// It returns the items, a token for the next page, and an error.
	ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.Item, *string, error)
}

// ItemWriter defines write operations for item data
type ItemWriter interface {
	// SaveItem inserts a new item. A concurrent insert of the same item
	// number surfaces as apperrors.ErrDuplicate via the unique constraint.
	SaveItem(ctx context.Context, item domain.Item) error

	// ChangeParLevel reads the item's current par level under a row lock,
	// updates it to newPar and appends the audit record, all in one database
	// transaction so PreviousPar cannot be lost to a concurrent change.
	ChangeParLevel(ctx context.Context, itemID string, newPar int, reason string, userID string, now time.Time) (*domain.ParLevelTransaction, error)

	// DeleteItem removes an item with no history. An item referenced by any
	// order or transaction is rejected with apperrors.ErrProtected.
	DeleteItem(ctx context.Context, itemID string) error
}

// ParLevelReader defines read operations for the par-level audit trail
type ParLevelReader interface {
	// ListParLevelTransactionsByItemID retrieves the par-level history of an
	// item, most recent first.
	ListParLevelTransactionsByItemID(ctx context.Context, itemID string) ([]domain.ParLevelTransaction, error)
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
	ParLevelReader
}
