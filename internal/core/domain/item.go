package domain

import (
	"fmt"
	"strings"
)

// DefaultParLevel is assigned to items created without an explicit target
// stock level (resolver defaults, registry-driven creation).
const DefaultParLevel = 1

// Item is a distinct inventory product. ItemNo is the stable external
// identifier and the sole de-duplication key: ingestion and registry-driven
// creation both resolve items through it and never create a second record
// for a known number.
//
// An Item carries no stored quantity. Quantity on hand is always derived by
// summing the signed changes of its ItemTransactions.
type Item struct {
	ItemID              string `json:"itemID"`   // Primary key (UUID)
	Name                string `json:"name"`     // Display name
	ItemNo              string `json:"itemNo"`   // Unique external identifier
	Manufacturer        string `json:"manufacturer"`
	ManufacturerCatalog string `json:"manufacturerCatalog"` // Manufacturer catalog / model number
	Description         string `json:"description"`
	ParLevel            int    `json:"parLevel"`    // Target stock level, >= 0
	ExternalURL         string `json:"externalURL"` // Link to the registry record
	AuditFields
}

// Validate checks the invariants an Item must satisfy before persistence.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.ItemNo) == "" {
		return fmt.Errorf("item number is required")
	}
	if i.ParLevel < 0 {
		return fmt.Errorf("par level must be non-negative, got %d", i.ParLevel)
	}
	return nil
}

// ItemDefaults carries the field values used only when resolution has to
// create a new item. Existing items are never overwritten from defaults.
type ItemDefaults struct {
	Name                string
	Manufacturer        string
	ManufacturerCatalog string
	Description         string
	ParLevel            int    // 0 means "use DefaultParLevel"
	ExternalURL         string // "" means "use the standard registry URL"
}
