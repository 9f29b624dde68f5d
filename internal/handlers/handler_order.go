package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/dto"
	"github.com/imedlab/inventory-manager/internal/middleware"
)

// dateParam is the format of from/to query parameters.
const dateParam = "2006-01-02"

// orderHandler handles workbook import and the order history endpoints.
type orderHandler struct {
	ingestService    portssvc.IngestSvcFacade
	orderService     portssvc.OrderSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(ing portssvc.IngestSvcFacade, os portssvc.OrderSvcFacade, rs portssvc.ReportingSvcFacade) *orderHandler {
	return &orderHandler{
		ingestService:    ing,
		orderService:     os,
		reportingService: rs,
	}
}

// registerOrderRoutes registers routes related to order history and import.
func registerOrderRoutes(rg *gin.RouterGroup, ingestService portssvc.IngestSvcFacade, orderService portssvc.OrderSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newOrderHandler(ingestService, orderService, reportingService)

	orders := rg.Group("/orders")
	{
		orders.POST("/import", h.importWorkbook)
		orders.GET("", h.listOrders)
		orders.GET("/report", h.orderReport)
		orders.GET("/export", h.exportOrders)
	}
}

// parseDateRange reads the from/to query parameters shared by the order
// history endpoints. The 'to' bound is pushed to end of day so a date-only
// range is inclusive.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("query parameters 'from' and 'to' are required (YYYY-MM-DD)")
	}

	from, err := time.Parse(dateParam, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'from' date %q", fromStr)
	}
	to, err := time.Parse(dateParam, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'to' date %q", toStr)
	}
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, nil
}

// importWorkbook godoc
// @Summary Import a purchase-order workbook
// @Description Uploads an .xlsx ledger export; each valid row appends one order, creating unknown items on the fly
// @Tags orders
// @Accept mpfd
// @Produce json
// @Param file formData file true "Workbook (.xlsx)"
// @Success 200 {object} dto.ImportSummary
// @Failure 400 {object} map[string]string "Missing or unreadable workbook"
// @Failure 500 {object} map[string]string "Failed to import workbook"
// @Router /orders/import [post]
func (h *orderHandler) importWorkbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Form file 'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read uploaded file"})
		return
	}
	defer file.Close()

	operatorID := middleware.GetOperatorIDFromContext(c)
	logger.Info("Received workbook import", slog.String("filename", fileHeader.Filename), slog.Int64("size", fileHeader.Size))

	summary, err := h.ingestService.ImportWorkbook(c.Request.Context(), file, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import workbook", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import workbook"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// listOrders godoc
// @Summary List orders by date range
// @Description Retrieves a page of orders whose PO date falls within [from, to]
// @Tags orders
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	orders, newToken, err := h.orderService.ListOrdersByDateRange(c.Request.Context(), from, to, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list orders", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListOrdersResponse{Orders: dto.ToOrderResponses(orders), NextToken: newToken})
}

// orderReport godoc
// @Summary Order report for a date range
// @Description Aggregates orders per month and per vendor for the range
// @Tags orders
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD), defaults to the oldest PO date"
// @Param to query string false "End date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.OrderReportResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /orders/report [get]
func (h *orderHandler) orderReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var from, to time.Time
	var err error
	if c.Query("from") == "" && c.Query("to") == "" {
		// No explicit range reports over the whole order history.
		from, err = h.reportingService.EarliestPODate(c.Request.Context())
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusOK, dto.OrderReportResponse{
					Monthly: []dto.MonthlyOrderStatResponse{},
					Vendors: []domain.VendorStat{},
				})
				return
			}
			logger.Error("Failed to resolve report range", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
			return
		}
		to = time.Now()
	} else {
		from, to, err = parseDateRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	monthly, err := h.reportingService.MonthlyOrderStats(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to compute monthly stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	vendors, err := h.reportingService.VendorBreakdown(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to compute vendor breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	var totalOrders int64
	for _, m := range monthly {
		totalOrders += m.OrderCount
	}

	c.JSON(http.StatusOK, dto.OrderReportResponse{
		From:        from.Format(dateParam),
		To:          to.Format(dateParam),
		TotalOrders: totalOrders,
		Monthly:     dto.ToMonthlyOrderStatResponses(monthly),
		Vendors:     vendors,
	})
}

// exportOrders godoc
// @Summary Export orders as a workbook
// @Description Renders the orders of a date range as an .xlsx download
// @Tags orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to export orders"
// @Router /orders/export [get]
func (h *orderHandler) exportOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workbook, err := h.orderService.ExportOrders(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to export orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export orders"})
		return
	}

	filename := fmt.Sprintf("orders_%s_%s.xlsx", from.Format(dateParam), to.Format(dateParam))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.DataFromReader(http.StatusOK,
		int64(len(workbook)),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		bytes.NewReader(workbook),
		nil)
}
