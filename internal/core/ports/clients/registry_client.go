package clients

import (
	"context"

	"github.com/imedlab/inventory-manager/internal/core/domain"
)

// RegistryClient looks up device metadata in the external public registry.
// Implementations must bound the call with a timeout and report registry
// unavailability as apperrors.ErrLookupFailed rather than panicking or
// hanging; an unusable record is apperrors.ErrIncompleteRecord.
type RegistryClient interface {
	// LookupDevice fetches the record for a device identifier (UDI/DI).
	// An empty identifier short-circuits to ErrLookupFailed without a
	// network call.
	LookupDevice(ctx context.Context, identifier string) (*domain.DeviceRecord, error)

	// RecordURL returns the canonical registry URL for an identifier, used
	// as the item's external reference.
	RecordURL(identifier string) string
}
