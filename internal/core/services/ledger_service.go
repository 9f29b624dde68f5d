package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portsrepo "github.com/imedlab/inventory-manager/internal/core/ports/repositories"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/middleware"
)

// ledgerService records stock adjustments and derives quantity on hand.
// The ledger is the sole source of truth for quantity: appends never mutate
// existing records, and reads always recompute the signed sum.
type ledgerService struct {
	itemRepo portsrepo.ItemReader
	txnRepo  portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(itemRepo portsrepo.ItemReader, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		itemRepo: itemRepo,
		txnRepo:  txnRepo,
	}
}

// RecordAdjustment appends a signed transaction built from a direction flag
// and an unsigned quantity. The sign is assigned here; input is never
// trusted to carry one. Unknown item numbers fail rather than implicitly
// creating an item: only import and registry paths create items.
func (s *ledgerService) RecordAdjustment(ctx context.Context, itemNo string, direction domain.TransactionType, quantity int64, reason string, userID string) (*domain.ItemTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1, got %d", apperrors.ErrValidation, quantity)
	}

	item, err := s.itemRepo.FindItemByItemNo(ctx, strings.TrimSpace(itemNo))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownItem, itemNo)
		}
		return nil, fmt.Errorf("failed to resolve item %s: %w", itemNo, err)
	}

	var change int64
	switch direction {
	case domain.StockIn:
		change = quantity
	case domain.StockOut:
		change = -quantity
	default:
		return nil, fmt.Errorf("%w: unknown direction %q", apperrors.ErrValidation, direction)
	}

	now := time.Now().UTC()
	txn := domain.ItemTransaction{
		TransactionID:   uuid.NewString(),
		ItemID:          item.ItemID,
		Timestamp:       now,
		Change:          change,
		TransactionType: direction,
		Reason:          reason,
		CreatedAt:       now,
		CreatedBy:       userID,
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction for item %s: %w", item.ItemID, err)
	}

	logger.Info("Stock adjustment recorded",
		slog.String("item_no", item.ItemNo),
		slog.String("type", string(direction)),
		slog.Int64("change", change))
	return &txn, nil
}

// Quantity returns the item's derived quantity on hand: the signed sum of
// all its ledger entries, 0 when none exist.
func (s *ledgerService) Quantity(ctx context.Context, itemID string) (int64, error) {
	qty, err := s.txnRepo.SumChangesByItemID(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("failed to derive quantity for item %s: %w", itemID, err)
	}
	return qty, nil
}

// ListTransactions retrieves a page of an item's ledger, most recent first.
func (s *ledgerService) ListTransactions(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.ItemTransaction, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	if _, err := s.itemRepo.FindItemByID(ctx, itemID); err != nil {
		return nil, nil, fmt.Errorf("failed to get item %s: %w", itemID, err)
	}
	return s.txnRepo.ListTransactionsByItemID(ctx, itemID, limit, nextToken)
}
