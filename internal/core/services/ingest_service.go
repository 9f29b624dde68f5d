package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portsrepo "github.com/imedlab/inventory-manager/internal/core/ports/repositories"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/dto"
	"github.com/imedlab/inventory-manager/internal/middleware"
	"github.com/imedlab/inventory-manager/internal/utils/rowmap"
)

// orderCurrency is the currency of every imported ledger. The upstream
// purchasing system exports plain dollar amounts with no currency column.
const orderCurrency = "USD"

// ingestService parses purchase-order ledger workbooks and appends one order
// per valid row. Rows are independent except for the shared item identity
// space; processing stays in source order so that, when several rows carry
// the same new item number, the first row's defaults win.
type ingestService struct {
	itemSvc   portssvc.ItemResolverSvc
	orderRepo portsrepo.OrderWriter
	loc       *time.Location
}

// NewIngestService creates a new ingestion service. loc is the business
// timezone purchase dates are recorded in.
func NewIngestService(itemSvc portssvc.ItemResolverSvc, orderRepo portsrepo.OrderWriter, loc *time.Location) portssvc.IngestSvcFacade {
	return &ingestService{
		itemSvc:   itemSvc,
		orderRepo: orderRepo,
		loc:       loc,
	}
}

// ImportWorkbook ingests an .xlsx upload. A failed row is recorded in the
// summary and ingestion continues; only an unreadable workbook aborts the
// whole batch.
func (s *ingestService) ImportWorkbook(ctx context.Context, r io.Reader, userID string) (*dto.ImportSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open workbook: %v", apperrors.ErrValidation, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read sheet %s: %v", apperrors.ErrValidation, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: workbook has no header row", apperrors.ErrValidation)
	}

	cols := rowmap.ResolveHeaders(rows[0])
	summary := &dto.ImportSummary{}

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header row
		if isEmptyRow(row) {
			continue
		}
		summary.RowsProcessed++

		created, err := s.ingestRow(ctx, cols, row, userID)
		if err != nil {
			logger.Warn("Row failed ingestion", slog.Int("row", rowNum), slog.String("error", err.Error()))
			summary.RowErrors = append(summary.RowErrors, dto.RowError{Row: rowNum, Reason: err.Error()})
			continue
		}
		if created {
			summary.ItemsCreated++
		} else {
			summary.ItemsReused++
		}
		summary.OrdersCreated++
	}

	logger.Info("Workbook import finished",
		slog.Int("rows", summary.RowsProcessed),
		slog.Int("items_created", summary.ItemsCreated),
		slog.Int("items_reused", summary.ItemsReused),
		slog.Int("orders_created", summary.OrdersCreated),
		slog.Int("failed_rows", len(summary.RowErrors)))
	return summary, nil
}

// ingestRow maps one row to an order. Mandatory fields are checked before
// the item is resolved so a rejected row leaves no partial state behind.
func (s *ingestService) ingestRow(ctx context.Context, cols rowmap.Columns, row []string, userID string) (bool, error) {
	costCenter, err := cols.Require(row, rowmap.FieldCostCenter)
	if err != nil {
		return false, err
	}
	accountNo, err := cols.Require(row, rowmap.FieldAccountNo)
	if err != nil {
		return false, err
	}

	// An explicit item number is preferred; a bare item name still
	// identifies the product in older ledgers.
	identifier := cols.Value(row, rowmap.FieldItemNo)
	if identifier == "" {
		identifier = cols.Value(row, rowmap.FieldItemName)
	}
	if identifier == "" {
		return false, apperrors.ErrMissingIdentifier
	}

	poDateRaw, err := cols.Require(row, rowmap.FieldPODate)
	if err != nil {
		return false, err
	}
	poDate, err := rowmap.ParseDate(poDateRaw, s.loc)
	if err != nil {
		return false, fmt.Errorf("invalid PO date: %v", err)
	}

	var receiptDate *time.Time
	if raw := cols.Value(row, rowmap.FieldReceiptDate); raw != "" {
		t, err := rowmap.ParseDate(raw, s.loc)
		if err != nil {
			return false, fmt.Errorf("invalid receipt date: %v", err)
		}
		receiptDate = &t
	}

	recvQty := 0
	if raw := cols.Value(row, rowmap.FieldRecvQty); raw != "" {
		recvQty, err = rowmap.ParseInt(raw)
		if err != nil {
			return false, fmt.Errorf("invalid receive quantity: %v", err)
		}
	}

	var price *decimal.Decimal
	if raw := cols.Value(row, rowmap.FieldPrice); raw != "" {
		p, err := rowmap.ParseDecimal(raw)
		if err != nil {
			return false, fmt.Errorf("invalid price: %v", err)
		}
		price = &p
	}

	totalCost := decimal.Zero
	if raw := cols.Value(row, rowmap.FieldTotalCost); raw != "" {
		totalCost, err = rowmap.ParseDecimal(raw)
		if err != nil {
			return false, fmt.Errorf("invalid total cost: %v", err)
		}
	}

	defaults := domain.ItemDefaults{
		Name:                cols.Value(row, rowmap.FieldItemName),
		Manufacturer:        cols.Value(row, rowmap.FieldManufacturer),
		ManufacturerCatalog: cols.Value(row, rowmap.FieldManufacturerCat),
		Description:         cols.Value(row, rowmap.FieldDescription),
	}
	item, created, err := s.itemSvc.ResolveOrCreate(ctx, identifier, defaults, userID)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	order := domain.Order{
		OrderID:       uuid.NewString(),
		ItemID:        item.ItemID,
		Vendor:        cols.Value(row, rowmap.FieldVendor),
		VendorCatalog: cols.Value(row, rowmap.FieldVendorCat),
		ReceivedQty:   recvQty,
		UnitOfMeasure: cols.Value(row, rowmap.FieldUnitOfMeasure),
		Price:         price,
		TotalCost:     totalCost,
		CurrencyCode:  orderCurrency,
		PONumber:      cols.Value(row, rowmap.FieldPONumber),
		PODate:        poDate,
		VendorCode:    cols.Value(row, rowmap.FieldVendorCode),
		VendorName:    cols.Value(row, rowmap.FieldVendorName),
		CostCenter:    costCenter,
		AccountNo:     accountNo,
		ReceiptDate:   receiptDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return created, fmt.Errorf("failed to save order: %v", err)
	}
	return created, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
