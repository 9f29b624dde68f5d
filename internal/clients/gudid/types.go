package gudid

// The registry response is defensively typed: every field is optional.
// Text fields are plain strings because encoding/json leaves the zero value
// in place for JSON null, which collapses null, missing and empty into ""
// exactly as downstream consumers expect. Numeric and boolean fields stay
// pointers; nil means "unknown", not zero or false.

type lookupResponse struct {
	GUDID        *gudidEnvelope     `json:"gudid"`
	ProductCodes []productCodeEntry `json:"productCodes"`
}

type gudidEnvelope struct {
	Device *deviceRecord `json:"device"`
}

type deviceRecord struct {
	PublicDeviceRecordKey string      `json:"publicDeviceRecordKey"`
	PublicVersionNumber   *int        `json:"publicVersionNumber"`
	DeviceRecordStatus    string      `json:"deviceRecordStatus"`
	Identifiers           identifiers `json:"identifiers"`
	BrandName             string      `json:"brandName"`
	VersionModelNumber    string      `json:"versionModelNumber"`
	CatalogNumber         string      `json:"catalogNumber"`
	DunsNumber            string      `json:"dunsNumber"`
	CompanyName           string      `json:"companyName"`
	DeviceCount           *int        `json:"deviceCount"`
	DeviceDescription     string      `json:"deviceDescription"`
	SingleUse             *bool       `json:"singleUse"`
	LotBatch              *bool       `json:"lotBatch"`
	SerialNumber          *bool       `json:"serialNumber"`
	ExpirationDate        *bool       `json:"expirationDate"`
	MRISafetyStatus       string      `json:"MRISafetyStatus"`
	Rx                    *bool       `json:"rx"`
	Otc                   *bool       `json:"otc"`
	Sterilization         *sterilization `json:"sterilization"`
}

type identifiers struct {
	Identifier []identifier `json:"identifier"`
}

type identifier struct {
	DeviceID              string `json:"deviceId"`
	DeviceIDType          string `json:"deviceIdType"`
	DeviceIDIssuingAgency string `json:"deviceIdIssuingAgency"`
	ContainsDINumber      string `json:"containsDINumber"`
	PkgQuantity           *int   `json:"pkgQuantity"`
	PkgStatus             string `json:"pkgStatus"`
	PkgType               string `json:"pkgType"`
}

type sterilization struct {
	DeviceSterile           *bool  `json:"deviceSterile"`
	SterilizationPriorToUse *bool  `json:"sterilizationPriorToUse"`
	MethodTypes             string `json:"methodTypes"`
}

type productCodeEntry struct {
	ProductCode      string `json:"productCode"`
	DeviceName       string `json:"deviceName"`
	DeviceClass      string `json:"deviceClass"`
	Definition       string `json:"definition"`
	RegulationNumber string `json:"regulationNumber"`
	MedicalSpecialty string `json:"medicalSpecialty"`
	ImplantFlag      string `json:"implantFlag"`
	ReviewPanel      string `json:"reviewPanel"`
}
