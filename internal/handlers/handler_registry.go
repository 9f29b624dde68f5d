package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	portsclients "github.com/imedlab/inventory-manager/internal/core/ports/clients"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/dto"
	"github.com/imedlab/inventory-manager/internal/middleware"
)

// registryHandler handles device-registry lookups and item creation from a
// scanned device identifier.
type registryHandler struct {
	itemService   portssvc.ItemSvcFacade
	ledgerService portssvc.LedgerSvcFacade
	registry      portsclients.RegistryClient
}

// newRegistryHandler creates a new registryHandler.
func newRegistryHandler(is portssvc.ItemSvcFacade, ls portssvc.LedgerSvcFacade, rc portsclients.RegistryClient) *registryHandler {
	return &registryHandler{
		itemService:   is,
		ledgerService: ls,
		registry:      rc,
	}
}

// registerRegistryRoutes registers routes related to the device registry.
func registerRegistryRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade, ledgerService portssvc.LedgerSvcFacade, registry portsclients.RegistryClient) {
	h := newRegistryHandler(itemService, ledgerService, registry)

	devices := rg.Group("/registry")
	{
		devices.GET("/devices", h.lookupDevice)
	}
	rg.POST("/items/from-scan", h.createFromScan)
}

// lookupDevice godoc
// @Summary Look up a device in the external registry
// @Description Resolves a scanned device identifier to its registry record without creating anything
// @Tags registry
// @Produce json
// @Param udi query string true "Device identifier (UDI)"
// @Success 200 {object} dto.DeviceRecordResponse
// @Failure 400 {object} map[string]string "Missing identifier"
// @Failure 404 {object} map[string]string "Device not found or record incomplete"
// @Failure 502 {object} map[string]string "Registry unavailable"
// @Router /registry/devices [get]
func (h *registryHandler) lookupDevice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	udi := c.Query("udi")
	if udi == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'udi' is required"})
		return
	}

	record, err := h.registry.LookupDevice(c.Request.Context(), udi)
	if err != nil {
		if errors.Is(err, apperrors.ErrIncompleteRecord) {
			logger.Warn("Registry record incomplete", slog.String("udi", udi))
			c.JSON(http.StatusNotFound, gin.H{"error": "Registry record is missing required device data"})
		} else {
			logger.Warn("Registry lookup failed", slog.String("udi", udi), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Device registry lookup failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDeviceRecordResponse(record))
}

// createFromScan godoc
// @Summary Create an item from a scanned device
// @Description Resolves the identifier through the device registry and get-or-creates the matching item
// @Tags registry
// @Accept json
// @Produce json
// @Param scan body dto.CreateFromScanRequest true "Scanned identifier"
// @Success 200 {object} dto.CreateFromScanResponse "Existing item returned"
// @Success 201 {object} dto.CreateFromScanResponse "Item created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Device not found in registry"
// @Failure 502 {object} map[string]string "Registry unavailable"
// @Router /items/from-scan [post]
func (h *registryHandler) createFromScan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFromScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFromScan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID := middleware.GetOperatorIDFromContext(c)
	logger.Info("Received create-from-scan request", slog.String("udi", req.UDI))

	item, created, err := h.itemService.CreateFromRegistry(c.Request.Context(), req.UDI, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingIdentifier) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Device identifier is required"})
		} else if errors.Is(err, apperrors.ErrIncompleteRecord) {
			logger.Warn("Registry record incomplete", slog.String("udi", req.UDI))
			c.JSON(http.StatusNotFound, gin.H{"error": "Registry record is missing required device data"})
		} else if errors.Is(err, apperrors.ErrLookupFailed) {
			logger.Warn("Registry lookup failed", slog.String("udi", req.UDI), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Device registry lookup failed"})
		} else {
			logger.Error("Failed to create item from scan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item from scan"})
		}
		return
	}

	status := http.StatusOK
	quantity := int64(0) // A just-created item has an empty ledger
	if created {
		status = http.StatusCreated
	} else {
		quantity, err = h.ledgerService.Quantity(c.Request.Context(), item.ItemID)
		if err != nil {
			logger.Error("Failed to derive quantity", slog.String("item_id", item.ItemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item from scan"})
			return
		}
	}

	c.JSON(status, dto.CreateFromScanResponse{
		Item:    dto.ToItemResponse(item, quantity),
		Created: created,
	})
}
