package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
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

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for item data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

const itemColumns = `item_id, name, item_no, manufacturer, manufacturer_catalog, description, par_level, external_url, created_at, created_by, last_updated_at, last_updated_by`

func scanItem(row pgx.Row) (models.Item, error) {
	var m models.Item
	err := row.Scan(
		&m.ItemID,
		&m.Name,
		&m.ItemNo,
		&m.Manufacturer,
		&m.ManufacturerCatalog,
		&m.Description,
		&m.ParLevel,
		&m.ExternalURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveItem inserts a new item. The unique index on item_no turns a concurrent
// insert of the same item number into apperrors.ErrDuplicate.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	modelItem := mapping.ToModelItem(item)

	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelItem.ItemID,
		modelItem.Name,
		modelItem.ItemNo,
		modelItem.Manufacturer,
		modelItem.ManufacturerCatalog,
		modelItem.Description,
		modelItem.ParLevel,
		modelItem.ExternalURL,
		modelItem.CreatedAt,
		modelItem.CreatedBy,
		modelItem.LastUpdatedAt,
		modelItem.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("item number %s already exists: %w", modelItem.ItemNo, apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to save item %s: %w", modelItem.ItemNo, err)
	}
	return nil
}

// FindItemByID retrieves an item by its internal identifier.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE item_id = $1;
	`
	modelItem, err := scanItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID %s: %w", itemID, err)
	}

	domainItem := mapping.ToDomainItem(modelItem)
	return &domainItem, nil
}

// FindItemByItemNo retrieves an item by its external item number.
func (r *PgxItemRepository) FindItemByItemNo(ctx context.Context, itemNo string) (*domain.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE item_no = $1;
	`
	modelItem, err := scanItem(r.Pool.QueryRow(ctx, query, itemNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by number %s: %w", itemNo, err)
	}

	domainItem := mapping.ToDomainItem(modelItem)
	return &domainItem, nil
}

// ListItems retrieves a paginated list of items using token-based pagination,
// newest first. Ordering is stable on (created_at, item_id).
func (r *PgxItemRepository) ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.Item, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra row to determine if there is a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + itemColumns + `
		FROM items
	`
	orderByClause := `ORDER BY created_at DESC, item_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeDateBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `WHERE created_at < $1`
		args = append(args, lastCreatedAt)
		query := baseQuery + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query items", err)
	}
	defer rows.Close()

	modelItems := make([]models.Item, 0, fetchLimit)
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		modelItems = append(modelItems, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	var newToken *string
	if len(modelItems) > limit {
		modelItems = modelItems[:limit]
		last := modelItems[len(modelItems)-1]
		token := pagination.EncodeDateBasedToken(last.CreatedAt)
		newToken = &token
	}

	return mapping.ToDomainItemSlice(modelItems), newToken, nil
}

// ChangeParLevel updates an item's par level and appends the audit record in
// one transaction. The current value is read under FOR UPDATE so the recorded
// PreviousPar is exactly what this change replaced.
func (r *PgxItemRepository) ChangeParLevel(ctx context.Context, itemID string, newPar int, reason string, userID string, now time.Time) (*domain.ParLevelTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	var previousPar int
	err = tx.QueryRow(ctx, `SELECT par_level FROM items WHERE item_id = $1 FOR UPDATE;`, itemID).Scan(&previousPar)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock item %s for par change: %w", itemID, err)
	}

	updateQuery := `
		UPDATE items
		SET par_level = $1, last_updated_at = $2, last_updated_by = $3
		WHERE item_id = $4;
	`
	if _, err := tx.Exec(ctx, updateQuery, newPar, now, userID, itemID); err != nil {
		return nil, fmt.Errorf("failed to update par level for item %s: %w", itemID, err)
	}

	modelTxn := models.ParLevelTransaction{
		ParLevelTxnID: uuid.NewString(),
		ItemID:        itemID,
		Timestamp:     now,
		PreviousPar:   previousPar,
		NewPar:        newPar,
		Reason:        reason,
		CreatedBy:     userID,
	}
	insertQuery := `
		INSERT INTO par_level_transactions (par_level_txn_id, item_id, timestamp, previous_par, new_par, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelTxn.ParLevelTxnID,
		modelTxn.ItemID,
		modelTxn.Timestamp,
		modelTxn.PreviousPar,
		modelTxn.NewPar,
		modelTxn.Reason,
		modelTxn.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record par level change for item %s: %w", itemID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainTxn := mapping.ToDomainParLevelTransaction(modelTxn)
	return &domainTxn, nil
}

// DeleteItem removes an item. The RESTRICT foreign keys on orders and both
// transaction ledgers reject deletion of any item with history.
func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM items WHERE item_id = $1;`, itemID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("item %s has history: %w", itemID, apperrors.ErrProtected)
			}
		}
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListParLevelTransactionsByItemID retrieves an item's par-level history,
// most recent first.
func (r *PgxItemRepository) ListParLevelTransactionsByItemID(ctx context.Context, itemID string) ([]domain.ParLevelTransaction, error) {
	query := `
		SELECT par_level_txn_id, item_id, timestamp, previous_par, new_par, reason, created_by
		FROM par_level_transactions
		WHERE item_id = $1
		ORDER BY timestamp DESC, par_level_txn_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query par level history for item %s: %w", itemID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ParLevelTransaction, error) {
		var m models.ParLevelTransaction
		err := row.Scan(
			&m.ParLevelTxnID,
			&m.ItemID,
			&m.Timestamp,
			&m.PreviousPar,
			&m.NewPar,
			&m.Reason,
			&m.CreatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan par level history: %w", err)
	}

	return mapping.ToDomainParLevelTransactionSlice(modelTxns), nil
}
