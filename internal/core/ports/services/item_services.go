package services

import (
	"context"

	"github.com/imedlab/inventory-manager/internal/core/domain"
)

// ItemReaderSvc defines read operations on items
type ItemReaderSvc interface {
	// GetItemByID retrieves an item by its internal identifier.
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// GetItemByItemNo retrieves an item by its external item number.
	GetItemByItemNo(ctx context.Context, itemNo string) (*domain.Item, error)

	// ListItems retrieves a page of items with a token for the next page.
	ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.Item, *string, error)

	// ParLevelHistory retrieves an item's par-level audit trail.
	ParLevelHistory(ctx context.Context, itemID string) ([]domain.ParLevelTransaction, error)
}

// ItemResolverSvc defines the identity-resolution operations that are the
// only paths creating items.
type ItemResolverSvc interface {
	// ResolveOrCreate looks up an item by item number and returns it
	// unchanged, or creates it from defaults when unknown. The boolean
	// reports whether a create happened. Idempotent under repeated and
	// concurrent calls with the same identifier.
	ResolveOrCreate(ctx context.Context, identifier string, defaults domain.ItemDefaults, userID string) (*domain.Item, bool, error)

	// CreateFromRegistry resolves a scanned device identifier through the
	// external registry and get-or-creates the matching item.
	CreateFromRegistry(ctx context.Context, udi string, userID string) (*domain.Item, bool, error)
}

// ItemWriterSvc defines the remaining item mutations
type ItemWriterSvc interface {
	// ChangeParLevel updates an item's par level and appends the audit
	// record carrying the value read immediately before the change.
	ChangeParLevel(ctx context.Context, itemID string, newPar int, reason string, userID string) (*domain.ParLevelTransaction, error)

	// DeleteItem removes an item that has no order or transaction history;
	// otherwise it fails with apperrors.ErrProtected.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemSvcFacade combines all item service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemResolverSvc
	ItemWriterSvc
}
