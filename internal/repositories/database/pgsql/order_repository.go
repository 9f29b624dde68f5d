package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portsrepo "github.com/imedlab/inventory-manager/internal/core/ports/repositories"
	"github.com/imedlab/inventory-manager/internal/models"
	"github.com/imedlab/inventory-manager/internal/utils/mapping"
	"github.com/imedlab/inventory-manager/internal/utils/pagination"
)

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a new repository for order history.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// orderSelectColumns joins items so every read carries the item number.
const orderSelectColumns = `o.order_id, o.item_id, i.item_no, o.vendor, o.vendor_catalog, o.received_qty, o.unit_of_measure, o.price, o.total_cost, o.currency_code, o.po_number, o.po_date, o.vendor_code, o.vendor_name, o.cost_center, o.account_no, o.receipt_date, o.created_at, o.created_by, o.last_updated_at, o.last_updated_by`

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.ItemID,
		&m.ItemNo,
		&m.Vendor,
		&m.VendorCatalog,
		&m.ReceivedQty,
		&m.UnitOfMeasure,
		&m.Price,
		&m.TotalCost,
		&m.CurrencyCode,
		&m.PONumber,
		&m.PODate,
		&m.VendorCode,
		&m.VendorName,
		&m.CostCenter,
		&m.AccountNo,
		&m.ReceiptDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveOrder appends an order. Order history is immutable; there is no
// ON CONFLICT clause because an order is never written twice.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	modelOrder := mapping.ToModelOrder(order)

	query := `
		INSERT INTO orders (order_id, item_id, vendor, vendor_catalog, received_qty, unit_of_measure, price, total_cost, currency_code, po_number, po_date, vendor_code, vendor_name, cost_center, account_no, receipt_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelOrder.OrderID,
		modelOrder.ItemID,
		modelOrder.Vendor,
		modelOrder.VendorCatalog,
		modelOrder.ReceivedQty,
		modelOrder.UnitOfMeasure,
		modelOrder.Price,
		modelOrder.TotalCost,
		modelOrder.CurrencyCode,
		modelOrder.PONumber,
		modelOrder.PODate,
		modelOrder.VendorCode,
		modelOrder.VendorName,
		modelOrder.CostCenter,
		modelOrder.AccountNo,
		modelOrder.ReceiptDate,
		modelOrder.CreatedAt,
		modelOrder.CreatedBy,
		modelOrder.LastUpdatedAt,
		modelOrder.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("order references unknown item %s: %w", modelOrder.ItemID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to save order %s: %w", modelOrder.OrderID, err)
	}
	return nil
}

// ListOrdersByDateRange retrieves a paginated list of orders whose PO date
// falls within [from, to], ordered by PO date then creation time, descending.
func (r *PgxOrderRepository) ListOrdersByDateRange(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.Order, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra row to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + orderSelectColumns + `
		FROM orders o
		JOIN items i ON o.item_id = i.item_id
		WHERE o.po_date >= $1 AND o.po_date <= $2
	`
	orderByClause := `ORDER BY o.po_date DESC, o.created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{from, to}

	if nextToken != nil && *nextToken != "" {
		lastPODate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (o.po_date, o.created_at) < ($3, $4)`
		args = append(args, lastPODate, lastCreatedAt)
		query := baseQuery + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query orders by date range", err)
	}
	defer rows.Close()

	modelOrders := make([]models.Order, 0, fetchLimit)
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		modelOrders = append(modelOrders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	var newToken *string
	if len(modelOrders) > limit {
		modelOrders = modelOrders[:limit]
		last := modelOrders[len(modelOrders)-1]
		token := pagination.EncodeToken(last.PODate, last.CreatedAt)
		newToken = &token
	}

	return mapping.ToDomainOrderSlice(modelOrders), newToken, nil
}

// ListOrdersByItemID retrieves all orders for one item, most recent first.
// Per-item order history is short enough to return unpaginated.
func (r *PgxOrderRepository) ListOrdersByItemID(ctx context.Context, itemID string) ([]domain.Order, error) {
	query := `
		SELECT ` + orderSelectColumns + `
		FROM orders o
		JOIN items i ON o.item_id = i.item_id
		WHERE o.item_id = $1
		ORDER BY o.po_date DESC, o.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders for item %s: %w", itemID, err)
	}
	defer rows.Close()

	modelOrders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders for item %s: %w", itemID, err)
	}

	return mapping.ToDomainOrderSlice(modelOrders), nil
}

// EarliestPODate returns the PO date of the oldest order on record.
func (r *PgxOrderRepository) EarliestPODate(ctx context.Context) (time.Time, error) {
	var earliest *time.Time
	err := r.Pool.QueryRow(ctx, `SELECT MIN(po_date) FROM orders;`).Scan(&earliest)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query earliest PO date: %w", err)
	}
	if earliest == nil {
		return time.Time{}, apperrors.ErrNotFound
	}
	return *earliest, nil
}
