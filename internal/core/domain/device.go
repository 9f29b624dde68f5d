package domain

// DeviceRecord is the canonical subset of a registry device record used to
// seed a new item. Text fields are already normalized: a null in the registry
// response arrives here as "".
type DeviceRecord struct {
	DeviceName  string `json:"deviceName"` // From the primary product-code entry
	DeviceID    string `json:"deviceID"`   // From the first device identifier
	CompanyName string `json:"companyName"`
	ModelNumber string `json:"modelNumber"` // versionModelNumber
	Description string `json:"description"`
}
