// Package rowmap resolves spreadsheet column headers to the canonical
// purchase-ledger fields. The upload format has been through two
// column-naming generations; legacy aliases are still accepted, resolved
// first-match-wins against an ordered candidate table.
package rowmap

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Field is a canonical logical column of the purchase-order ledger.
type Field string

const (
	FieldItemName        Field = "item name"
	FieldItemNo          Field = "item number"
	FieldManufacturer    Field = "manufacturer"
	FieldManufacturerCat Field = "manufacturer catalog"
	FieldDescription     Field = "description"
	FieldVendor          Field = "vendor"
	FieldVendorCat       Field = "vendor category"
	FieldRecvQty         Field = "receive quantity"
	FieldUnitOfMeasure   Field = "unit of measure"
	FieldPrice           Field = "price"
	FieldTotalCost       Field = "total cost"
	FieldPONumber        Field = "PO number"
	FieldPODate          Field = "PO date"
	FieldVendorCode      Field = "vendor code"
	FieldVendorName      Field = "vendor name"
	FieldCostCenter      Field = "cost center name"
	FieldAccountNo       Field = "account number"
	FieldReceiptDate     Field = "receipt date"
)

// headerCandidates lists the accepted headers per field in priority order:
// the current name first, then legacy aliases.
var headerCandidates = []struct {
	Field   Field
	Headers []string
}{
	{FieldItemName, []string{"ITEM"}},
	{FieldItemNo, []string{"ITEM_NO"}},
	{FieldManufacturer, []string{"MFR"}},
	{FieldManufacturerCat, []string{"MFR CAT"}},
	{FieldDescription, []string{"DESCR"}},
	{FieldVendor, []string{"VENDOR"}},
	{FieldVendorCat, []string{"VEND CAT"}},
	{FieldRecvQty, []string{"RECV QTY"}},
	{FieldUnitOfMeasure, []string{"UM"}},
	{FieldPrice, []string{"PRICE"}},
	{FieldTotalCost, []string{"TOTAL COST"}},
	{FieldPONumber, []string{"PO_NO"}},
	{FieldPODate, []string{"PO_DATE"}},
	{FieldVendorCode, []string{"VEND_CODE"}},
	{FieldVendorName, []string{"dbo_VEND.NAME"}},
	{FieldCostCenter, []string{"dbo_CC.NAME", "Expr1016"}},
	{FieldAccountNo, []string{"ACCT_NO", "Expr1017"}},
	{FieldReceiptDate, []string{"RCV_DATE"}},
}

// Columns maps each resolved field to its zero-based column index.
// Unresolved fields are simply absent; unknown extra columns are ignored.
type Columns map[Field]int

// ResolveHeaders matches a header row against the candidate table.
func ResolveHeaders(header []string) Columns {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	cols := make(Columns, len(headerCandidates))
	for _, candidate := range headerCandidates {
		for _, name := range candidate.Headers {
			if i, ok := index[name]; ok {
				cols[candidate.Field] = i
				break
			}
		}
	}
	return cols
}

// Value returns the trimmed cell value for a field, or "" when the column is
// missing or the row is short.
func (c Columns) Value(row []string, f Field) string {
	i, ok := c[f]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Require returns the cell value for a mandatory field, failing with
// ErrMissingRequiredField when it is absent under all known headers or the
// cell is empty.
func (c Columns) Require(row []string, f Field) (string, error) {
	v := c.Value(row, f)
	if v == "" {
		return "", fmt.Errorf("%w: %s", apperrors.ErrMissingRequiredField, f)
	}
	return v, nil
}

// ParseDate interprets a cell as a wall-clock value in the business timezone
// and converts it to UTC. Cells arrive either as a formatted date string or
// as a raw Excel serial number, depending on the workbook's cell styles.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("excel serial date %q: %w", value, err)
		}
		return rebaseToUTC(t, loc), nil
	}

	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
		"1/2/2006 15:04:05",
		"1/2/2006 15:04",
		"1/2/2006",
		"01-02-06",
		"1/2/06",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return rebaseToUTC(t, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", value)
}

// rebaseToUTC reinterprets a naively-parsed timestamp as local wall-clock
// time in loc and converts it to UTC for storage.
func rebaseToUTC(t time.Time, loc *time.Location) time.Time {
	local := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	return local.UTC()
}

// ParseDecimal parses a monetary cell. Currency symbols and thousands
// separators are stripped; accounting-style parentheses mean negative.
func ParseDecimal(value string) (decimal.Decimal, error) {
	v := strings.TrimSpace(value)
	negative := false
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		negative = true
		v = v[1 : len(v)-1]
	}
	v = strings.ReplaceAll(v, "$", "")
	v = strings.ReplaceAll(v, ",", "")
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.Zero, fmt.Errorf("empty numeric value")
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("numeric value %q: %w", value, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// ParseInt parses an integer cell, tolerating a trailing decimal point the
// way spreadsheet tools render whole numbers ("4.0").
func ParseInt(value string) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, fmt.Errorf("empty integer value")
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("integer value %q: %w", value, err)
	}
	n := int(f)
	if float64(n) != f {
		return 0, fmt.Errorf("integer value %q has a fractional part", value)
	}
	return n, nil
}
