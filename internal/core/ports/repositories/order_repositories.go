package repositories

import (
	"context"
	"time"

	"github.com/imedlab/inventory-manager/internal/core/domain"
)

// OrderReader defines read operations for order history
type OrderReader interface {
	// ListOrdersByDateRange retrieves a paginated list of orders whose
	// PO date falls within [from, to], ordered by PO date then creation time.
	ListOrdersByDateRange(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.Order, *string, error)

	// ListOrdersByItemID retrieves all orders for one item, most recent first.
	ListOrdersByItemID(ctx context.Context, itemID string) ([]domain.Order, error)

	// EarliestPODate returns the PO date of the oldest order, or
	// apperrors.ErrNotFound when no orders exist.
	EarliestPODate(ctx context.Context) (time.Time, error)
}

// OrderWriter defines write operations for order history
type OrderWriter interface {
	// SaveOrder appends an order. Orders are immutable history; there is no
	// update or delete.
	SaveOrder(ctx context.Context, order domain.Order) error
}

// OrderRepositoryFacade combines the order repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
