package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/dto"
	"github.com/imedlab/inventory-manager/internal/middleware"
)

// itemHandler handles HTTP requests related to inventory items. It also
// holds the ledger service because every item read carries the derived
// quantity, and the order service for an item's purchase history.
type itemHandler struct {
	itemService   portssvc.ItemSvcFacade
	ledgerService portssvc.LedgerSvcFacade
	orderService  portssvc.OrderSvcFacade
}

// newItemHandler creates a new itemHandler.
func newItemHandler(is portssvc.ItemSvcFacade, ls portssvc.LedgerSvcFacade, os portssvc.OrderSvcFacade) *itemHandler {
	return &itemHandler{
		itemService:   is,
		ledgerService: ls,
		orderService:  os,
	}
}

// registerItemRoutes registers routes related to items.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade, ledgerService portssvc.LedgerSvcFacade, orderService portssvc.OrderSvcFacade) {
	h := newItemHandler(itemService, ledgerService, orderService)

	items := rg.Group("/items")
	{
		items.GET("", h.listItems)
		items.GET("/:id", h.getItem)
		items.DELETE("/:id", h.deleteItem)
		items.PUT("/:id/par-level", h.changeParLevel)
		items.GET("/:id/par-level/history", h.parLevelHistory)
		items.GET("/:id/transactions", h.listTransactions)
		items.GET("/:id/orders", h.listOrdersForItem)
	}
}

// listItems godoc
// @Summary List inventory items
// @Description Retrieves a paginated list of items with their derived quantities
// @Tags items
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListItemsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list items"
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	items, newToken, err := h.itemService.ListItems(c.Request.Context(), limit, nextToken)
	if err != nil {
		logger.Error("Failed to list items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}

	responses := make([]dto.ItemResponse, len(items))
	for i := range items {
		quantity, err := h.ledgerService.Quantity(c.Request.Context(), items[i].ItemID)
		if err != nil {
			logger.Error("Failed to derive quantity", slog.String("item_id", items[i].ItemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
			return
		}
		responses[i] = dto.ToItemResponse(&items[i], quantity)
	}

	c.JSON(http.StatusOK, dto.ListItemsResponse{Items: responses, NextToken: newToken})
}

// getItem godoc
// @Summary Get an item
// @Description Retrieves one item with its derived quantity on hand
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve item"
// @Router /items/{id} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	item, err := h.itemService.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to get item", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}

	quantity, err := h.ledgerService.Quantity(c.Request.Context(), itemID)
	if err != nil {
		logger.Error("Failed to derive quantity", slog.String("item_id", itemID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item, quantity))
}

// deleteItem godoc
// @Summary Delete an item
// @Description Removes an item that has no order or transaction history
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 409 {object} map[string]string "Item has history"
// @Failure 500 {object} map[string]string "Failed to delete item"
// @Router /items/{id} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	if err := h.itemService.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else if errors.Is(err, apperrors.ErrProtected) {
			logger.Warn("Refused to delete item with history", slog.String("item_id", itemID))
			c.JSON(http.StatusConflict, gin.H{"error": "Item has order or transaction history and cannot be deleted"})
		} else {
			logger.Error("Failed to delete item", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// changeParLevel godoc
// @Summary Change an item's par level
// @Description Sets a new par level and appends a par-level audit record
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param parLevel body dto.ChangeParLevelRequest true "New par level"
// @Success 200 {object} dto.ParLevelTxnResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to change par level"
// @Router /items/{id}/par-level [put]
func (h *itemHandler) changeParLevel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.ChangeParLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ChangeParLevel", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID := middleware.GetOperatorIDFromContext(c)

	txn, err := h.itemService.ChangeParLevel(c.Request.Context(), itemID, *req.NewPar, req.Reason, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else if errors.Is(err, apperrors.ErrInvalidParLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to change par level", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change par level"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToParLevelTxnResponse(txn))
}

// parLevelHistory godoc
// @Summary Get an item's par-level history
// @Description Retrieves the par-level audit trail, most recent first
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {array} dto.ParLevelTxnResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve history"
// @Router /items/{id}/par-level/history [get]
func (h *itemHandler) parLevelHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	history, err := h.itemService.ParLevelHistory(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to get par level history", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToParLevelTxnResponses(history))
}

// listTransactions godoc
// @Summary List an item's ledger entries
// @Description Retrieves a page of the item's quantity ledger and its current derived quantity
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /items/{id}/transactions [get]
func (h *itemHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	txns, newToken, err := h.ledgerService.ListTransactions(c.Request.Context(), itemID, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to list transactions", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	quantity, err := h.ledgerService.Quantity(c.Request.Context(), itemID)
	if err != nil {
		logger.Error("Failed to derive quantity", slog.String("item_id", itemID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		Quantity:     quantity,
		NextToken:    newToken,
	})
}

// listOrdersForItem godoc
// @Summary List an item's orders
// @Description Retrieves all purchase records for one item, most recent first
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {array} dto.OrderResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Router /items/{id}/orders [get]
func (h *itemHandler) listOrdersForItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	// Confirm the item exists so an unknown ID is a 404, not an empty list.
	if _, err := h.itemService.GetItemByID(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to get item", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		}
		return
	}

	orders, err := h.orderService.OrdersForItem(c.Request.Context(), itemID)
	if err != nil {
		logger.Error("Failed to list orders for item", slog.String("item_id", itemID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponses(orders))
}
