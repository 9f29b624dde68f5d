package models

// Item represents a catalogued clinical supply item.
type Item struct {
	ItemID              string `json:"itemID"`              // Primary Key (UUID)
	Name                string `json:"name"`                // Product name from the ledger or registry
	ItemNo              string `json:"itemNo"`              // External item number, unique
	Manufacturer        string `json:"manufacturer"`        // Nullable in legacy data, stored as ""
	ManufacturerCatalog string `json:"manufacturerCatalog"` // Manufacturer catalog number
	Description         string `json:"description"`
	ParLevel            int    `json:"parLevel"`    // Minimum desired quantity on hand
	ExternalURL         string `json:"externalURL"` // Device registry record URL
	AuditFields
}
