package dto

import "github.com/imedlab/inventory-manager/internal/core/domain"

// CreateFromScanRequest defines the payload for creating an item from a
// scanned device identifier (UDI barcode).
type CreateFromScanRequest struct {
	UDI string `json:"udi" binding:"required"`
}

// DeviceRecordResponse defines the data returned for a registry lookup.
type DeviceRecordResponse struct {
	DeviceName  string `json:"deviceName"`
	DeviceID    string `json:"deviceID"`
	CompanyName string `json:"companyName"`
	ModelNumber string `json:"modelNumber"`
	Description string `json:"description"`
}

// CreateFromScanResponse returns the resolved item and whether the scan
// created it or found an existing record.
type CreateFromScanResponse struct {
	Item    ItemResponse `json:"item"`
	Created bool         `json:"created"`
}

// ToDeviceRecordResponse converts a domain.DeviceRecord to a DTO.
func ToDeviceRecordResponse(rec *domain.DeviceRecord) DeviceRecordResponse {
	return DeviceRecordResponse{
		DeviceName:  rec.DeviceName,
		DeviceID:    rec.DeviceID,
		CompanyName: rec.CompanyName,
		ModelNumber: rec.ModelNumber,
		Description: rec.Description,
	}
}
