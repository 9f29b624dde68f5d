package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portsrepo "github.com/imedlab/inventory-manager/internal/core/ports/repositories"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
)

// exportPageSize bounds how many orders are pulled per repository call while
// streaming a date range into a workbook.
const exportPageSize = 500

// orderService reads the append-only order ledger. Orders are written only
// by ingestion; this service never mutates them.
type orderService struct {
	orderRepo portsrepo.OrderRepositoryFacade
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo}
}

// ListOrdersByDateRange retrieves a page of orders with a PO date in [from, to].
func (s *orderService) ListOrdersByDateRange(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.Order, *string, error) {
	if to.Before(from) {
		return nil, nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	if limit <= 0 {
		limit = 50
	}
	return s.orderRepo.ListOrdersByDateRange(ctx, from, to, limit, nextToken)
}

// OrdersForItem retrieves all orders for one item, most recent first.
func (s *orderService) OrdersForItem(ctx context.Context, itemID string) ([]domain.Order, error) {
	return s.orderRepo.ListOrdersByItemID(ctx, itemID)
}

// exportHeader mirrors the upload format's current column names so an
// exported range can be re-imported.
var exportHeader = []string{
	"ITEM_NO", "VENDOR", "VEND CAT", "RECV QTY", "UM", "PRICE", "TOTAL COST",
	"PO_NO", "PO_DATE", "VEND_CODE", "dbo_VEND.NAME", "dbo_CC.NAME", "ACCT_NO", "RCV_DATE",
}

// ExportOrders renders the orders of a date range as an .xlsx workbook.
func (s *orderService) ExportOrders(ctx context.Context, from, to time.Time) ([]byte, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, name := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	rowNum := 2
	var nextToken *string
	for {
		orders, token, err := s.orderRepo.ListOrdersByDateRange(ctx, from, to, exportPageSize, nextToken)
		if err != nil {
			return nil, fmt.Errorf("failed to list orders for export: %w", err)
		}
		for i := range orders {
			if err := writeOrderRow(f, sheet, rowNum, &orders[i]); err != nil {
				return nil, err
			}
			rowNum++
		}
		if token == nil {
			break
		}
		nextToken = token
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeOrderRow(f *excelize.File, sheet string, rowNum int, o *domain.Order) error {
	var price interface{}
	if o.Price != nil {
		price, _ = o.Price.Float64()
	}
	totalCost, _ := o.TotalCost.Float64()
	var receiptDate interface{}
	if o.ReceiptDate != nil {
		receiptDate = o.ReceiptDate.Format("01/02/2006 15:04:05")
	}

	values := []interface{}{
		o.ItemNo, o.Vendor, o.VendorCatalog, o.ReceivedQty, o.UnitOfMeasure,
		price, totalCost, o.PONumber, o.PODate.Format("01/02/2006 15:04:05"),
		o.VendorCode, o.VendorName, o.CostCenter, o.AccountNo, receiptDate,
	}
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
	}
	return nil
}
