package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/dto"
	"github.com/imedlab/inventory-manager/internal/middleware"
)

// stockHandler handles the barcode/manual stock adjustment endpoint.
type stockHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newStockHandler creates a new stockHandler.
func newStockHandler(ls portssvc.LedgerSvcFacade) *stockHandler {
	return &stockHandler{
		ledgerService: ls,
	}
}

// RegisterStockRoutes registers routes related to stock adjustments.
func RegisterStockRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newStockHandler(ledgerService)

	stock := rg.Group("/stock")
	{
		stock.POST("/adjustments", h.recordAdjustment)
	}
}

// recordAdjustment godoc
// @Summary Record a stock adjustment
// @Description Appends one IN or OUT transaction to an item's quantity ledger
// @Tags stock
// @Accept json
// @Produce json
// @Param adjustment body dto.AdjustmentRequest true "Adjustment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown item number"
// @Failure 500 {object} map[string]string "Failed to record adjustment"
// @Router /stock/adjustments [post]
func (h *stockHandler) recordAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var direction domain.TransactionType
	switch req.Direction {
	case "in":
		direction = domain.StockIn
	case "out":
		direction = domain.StockOut
	}

	operatorID := middleware.GetOperatorIDFromContext(c)
	logger.Info("Received stock adjustment",
		slog.String("item_no", req.ItemNo),
		slog.String("direction", req.Direction),
		slog.Int64("quantity", req.Quantity))

	txn, err := h.ledgerService.RecordAdjustment(c.Request.Context(), req.ItemNo, direction, req.Quantity, req.Reason, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownItem) {
			logger.Warn("Adjustment for unknown item", slog.String("item_no", req.ItemNo))
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown item number: " + req.ItemNo})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record adjustment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record adjustment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
