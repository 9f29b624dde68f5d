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
	portsclients "github.com/imedlab/inventory-manager/internal/core/ports/clients"
	portsrepo "github.com/imedlab/inventory-manager/internal/core/ports/repositories"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/middleware"
)

// itemService implements identity resolution and the remaining item
// operations. Items are created only here: by get-or-create during ingestion
// or by a registry-driven scan. Nothing else in the system creates items.
type itemService struct {
	itemRepo portsrepo.ItemRepositoryFacade
	registry portsclients.RegistryClient
}

// NewItemService creates a new item service.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade, registry portsclients.RegistryClient) portssvc.ItemSvcFacade {
	return &itemService{
		itemRepo: itemRepo,
		registry: registry,
	}
}

// ResolveOrCreate looks up an item by item number, returning it unchanged if
// found; defaults are only consulted on the create path. A concurrent
// creator losing the insert race retries as a lookup, so repeated calls with
// the same identifier never produce duplicates.
func (s *itemService) ResolveOrCreate(ctx context.Context, identifier string, defaults domain.ItemDefaults, userID string) (*domain.Item, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, false, apperrors.ErrMissingIdentifier
	}

	existing, err := s.itemRepo.FindItemByItemNo(ctx, identifier)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up item %s: %w", identifier, err)
	}

	now := time.Now().UTC()
	parLevel := defaults.ParLevel
	if parLevel <= 0 {
		parLevel = domain.DefaultParLevel
	}
	externalURL := defaults.ExternalURL
	if externalURL == "" {
		externalURL = s.registry.RecordURL(identifier)
	}

	item := domain.Item{
		ItemID:              uuid.NewString(),
		Name:                defaults.Name,
		ItemNo:              identifier,
		Manufacturer:        defaults.Manufacturer,
		ManufacturerCatalog: defaults.ManufacturerCatalog,
		Description:         defaults.Description,
		ParLevel:            parLevel,
		ExternalURL:         externalURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := item.Validate(); err != nil {
		return nil, false, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the create race; the winner's record stands.
			logger.Warn("Concurrent item creation detected, retrying as lookup", slog.String("item_no", identifier))
			winner, findErr := s.itemRepo.FindItemByItemNo(ctx, identifier)
			if findErr != nil {
				return nil, false, fmt.Errorf("failed to re-fetch item %s after duplicate insert: %w", identifier, findErr)
			}
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("failed to save item %s: %w", identifier, err)
	}

	logger.Info("Item created", slog.String("item_id", item.ItemID), slog.String("item_no", item.ItemNo))
	return &item, true, nil
}

// CreateFromRegistry resolves a scanned device identifier through the
// external registry and get-or-creates the matching item, seeded with the
// registry's canonical fields.
func (s *itemService) CreateFromRegistry(ctx context.Context, udi string, userID string) (*domain.Item, bool, error) {
	udi = strings.TrimSpace(udi)
	if udi == "" {
		return nil, false, fmt.Errorf("%w: empty device identifier", apperrors.ErrMissingIdentifier)
	}

	record, err := s.registry.LookupDevice(ctx, udi)
	if err != nil {
		return nil, false, err
	}

	identifier := record.DeviceID
	if identifier == "" {
		identifier = udi
	}

	defaults := domain.ItemDefaults{
		Name:                record.DeviceName,
		Manufacturer:        record.CompanyName,
		ManufacturerCatalog: record.ModelNumber,
		Description:         record.Description,
		ParLevel:            domain.DefaultParLevel,
		ExternalURL:         s.registry.RecordURL(udi),
	}
	return s.ResolveOrCreate(ctx, identifier, defaults, userID)
}

// GetItemByID retrieves an item by its internal identifier.
func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// GetItemByItemNo retrieves an item by its external item number.
func (s *itemService) GetItemByItemNo(ctx context.Context, itemNo string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByItemNo(ctx, strings.TrimSpace(itemNo))
	if err != nil {
		return nil, fmt.Errorf("failed to get item by number %s: %w", itemNo, err)
	}
	return item, nil
}

// ListItems retrieves a page of items.
func (s *itemService) ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.Item, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.itemRepo.ListItems(ctx, limit, nextToken)
}

// ParLevelHistory retrieves an item's par-level audit trail.
func (s *itemService) ParLevelHistory(ctx context.Context, itemID string) ([]domain.ParLevelTransaction, error) {
	if _, err := s.itemRepo.FindItemByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("failed to get item %s: %w", itemID, err)
	}
	return s.itemRepo.ListParLevelTransactionsByItemID(ctx, itemID)
}

// ChangeParLevel updates an item's par level and appends the audit record.
// The previous value is read under a row lock inside the repository so a
// concurrent change cannot be lost.
func (s *itemService) ChangeParLevel(ctx context.Context, itemID string, newPar int, reason string, userID string) (*domain.ParLevelTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if newPar < 0 {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidParLevel, newPar)
	}

	txn, err := s.itemRepo.ChangeParLevel(ctx, itemID, newPar, reason, userID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to change par level for item %s: %w", itemID, err)
	}

	logger.Info("Par level changed",
		slog.String("item_id", itemID),
		slog.Int("previous_par", txn.PreviousPar),
		slog.Int("new_par", txn.NewPar))
	return txn, nil
}

// DeleteItem removes an item with no history. History-bearing items are
// rejected by the storage layer so audit records can never be orphaned.
func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	return nil
}
