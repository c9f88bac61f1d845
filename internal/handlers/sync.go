package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/repository"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/shiprocket"
	ordersync "github.com/tgh-ops/warehouse-fulfillment-service/internal/sync"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/validation"
	"go.uber.org/zap"
)

// noAwbChanges is the literal the dashboard shows when a sync produced no
// waybill transitions.
const noAwbChanges = "No AWB changes detected"

// OrderSyncer reconciles a batch of raw orders into local storage.
type OrderSyncer interface {
	SyncOrders(ctx context.Context, orders []models.SyncOrder) (*ordersync.Result, error)
}

// PlatformClient fetches orders from the external shipping platform.
type PlatformClient interface {
	Login(ctx context.Context) (string, error)
	FetchAllOrders(ctx context.Context, token, from, to string) ([]json.RawMessage, error)
}

// SyncHandler serves the sync engine and product mapping routes.
type SyncHandler struct {
	reconciler OrderSyncer
	mappings   *repository.ProductMappingRepository
	platform   PlatformClient
	validator  *validator.Validate
}

func NewSyncHandler(reconciler OrderSyncer, mappings *repository.ProductMappingRepository, platform PlatformClient, v *validator.Validate) *SyncHandler {
	return &SyncHandler{reconciler: reconciler, mappings: mappings, platform: platform, validator: v}
}

// SyncOrders reconciles the posted batch. The response carries how many
// orders were newly inserted plus every AWB transition the change detector
// observed, so the dashboard can flag courier reassignments.
func (h *SyncHandler) SyncOrders(c *gin.Context) {
	var req validation.SyncOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	if len(req.Orders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No orders to sync"})
		return
	}

	result, err := h.reconciler.SyncOrders(c.Request.Context(), req.Orders)
	if err != nil {
		zap.L().Error("syncing orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sync orders", "error": err.Error()})
		return
	}

	resp := gin.H{
		"message":       "Orders synced successfully!",
		"insertedCount": result.InsertedCount,
	}
	if len(result.AwbTransitions) > 0 {
		resp["updatedAwbOrders"] = result.AwbTransitions
	} else {
		resp["updatedAwbOrders"] = noAwbChanges
	}
	c.JSON(http.StatusOK, resp)
}

// FetchPlatformOrders proxies the paginated Shiprocket listing for the
// frontend's sync screen.
func (h *SyncHandler) FetchPlatformOrders(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "From and To dates are required"})
		return
	}
	if !validation.IsValidDate(from) || !validation.IsValidDate(to) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dates must be in format YYYY-MM-DD"})
		return
	}

	token, err := h.platform.Login(c.Request.Context())
	if err != nil {
		if errors.Is(err, shiprocket.ErrAuthFailed) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Shiprocket Authentication Failed"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Shiprocket Authentication Failed", "error": err.Error()})
		return
	}

	orders, err := h.platform.FetchAllOrders(c.Request.Context(), token, from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to fetch orders", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total_count": len(orders)})
}

// UpdateProductIDs upserts mapping rows keyed by productID.
func (h *SyncHandler) UpdateProductIDs(c *gin.Context) {
	var req validation.ProductUpdatesRequest
	if err := validation.BindAndValidate(c, &req, h.validator); err != nil {
		return
	}

	for _, update := range req.ProductUpdates {
		mapping := &models.ProductMapping{
			ProductID:       update.ProductID,
			UpdatedID:       update.UpdatedID,
			ProductName:     update.ProductName,
			SKU:             update.SKU,
			ProductLocation: update.ProductLocation,
			ProductCategory: update.ProductCategory,
			ImageURL:        update.ImageURL,
		}
		if err := h.mappings.Upsert(c.Request.Context(), mapping); err != nil {
			zap.L().Error("upserting product mapping", zap.String("product_id", update.ProductID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product IDs", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product IDs updated successfully!"})
}

// GetPreviousProducts returns the full mapping snapshot.
func (h *SyncHandler) GetPreviousProducts(c *gin.Context) {
	mappings, err := h.mappings.All(c.Request.Context())
	if err != nil {
		zap.L().Error("fetching product mappings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch previous products", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mappings)
}
