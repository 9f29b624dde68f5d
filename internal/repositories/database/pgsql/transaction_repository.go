package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the quantity ledger.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction appends a ledger entry. The ledger is append-only; updates
// and deletes do not exist at any layer.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.ItemTransaction) error {
	modelTxn := mapping.ToModelItemTransaction(txn)

	query := `
		INSERT INTO item_transactions (transaction_id, item_id, timestamp, change, transaction_type, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.ItemID,
		modelTxn.Timestamp,
		modelTxn.Change,
		modelTxn.TransactionType,
		modelTxn.Reason,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("transaction references unknown item %s: %w", modelTxn.ItemID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// ListTransactionsByItemID retrieves a paginated list of an item's ledger
// entries, most recent first.
func (r *PgxTransactionRepository) ListTransactionsByItemID(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.ItemTransaction, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra row to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT transaction_id, item_id, timestamp, change, transaction_type, reason, created_at, created_by
		FROM item_transactions
		WHERE item_id = $1
	`
	orderByClause := `ORDER BY timestamp DESC, transaction_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{itemID}

	if nextToken != nil && *nextToken != "" {
		lastTimestamp, decodeErr := pagination.DecodeDateBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND timestamp < $2`
		args = append(args, lastTimestamp)
		query := baseQuery + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for item "+itemID, err)
	}
	defer rows.Close()

	modelTxns := make([]models.ItemTransaction, 0, fetchLimit)
	for rows.Next() {
		var m models.ItemTransaction
		err := rows.Scan(
			&m.TransactionID,
			&m.ItemID,
			&m.Timestamp,
			&m.Change,
			&m.TransactionType,
			&m.Reason,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newToken *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token := pagination.EncodeDateBasedToken(last.Timestamp)
		newToken = &token
	}

	return mapping.ToDomainItemTransactionSlice(modelTxns), newToken, nil
}

// SumChangesByItemID returns the item's derived quantity on hand. COALESCE
// makes an empty ledger read as zero instead of NULL.
func (r *PgxTransactionRepository) SumChangesByItemID(ctx context.Context, itemID string) (int64, error) {
	var sum int64
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(change), 0) FROM item_transactions WHERE item_id = $1;`, itemID).Scan(&sum)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to sum changes for item %s: %w", itemID, err)
	}
	return sum, nil
}
