package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/repository"
	ordersync "github.com/tgh-ops/warehouse-fulfillment-service/internal/sync"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/validation"
	"go.uber.org/zap"
)

// OrdersHandler serves the order browsing and workflow routes used by the
// packing, picking and delivery screens.
type OrdersHandler struct {
	orders    *repository.OrderRepository
	audits    *repository.AuditRepository
	validator *validator.Validate
}

func NewOrdersHandler(orders *repository.OrderRepository, audits *repository.AuditRepository, v *validator.Validate) *OrdersHandler {
	return &OrdersHandler{orders: orders, audits: audits, validator: v}
}

// List returns every persisted order.
func (h *OrdersHandler) List(c *gin.Context) {
	orders, err := h.orders.All(c.Request.Context())
	if err != nil {
		zap.L().Error("fetching orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// Get returns one order by its business id.
func (h *OrdersHandler) Get(c *gin.Context) {
	order, err := h.orders.FindByOrderID(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		zap.L().Error("fetching order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order details", "error": err.Error()})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CompletePacking marks the order packed and upserts the packer's
// performance record.
func (h *OrdersHandler) CompletePacking(c *gin.Context) {
	var req validation.CompletePackingRequest
	if err := validation.BindAndValidate(c, &req, h.validator); err != nil {
		return
	}

	orderID := c.Param("orderID")
	order, err := h.orders.CompletePacking(c.Request.Context(), orderID,
		req.PackedStatus, ordersync.ParseSyncDate(req.PackedDate), req.PackedTime, req.PackedPersonName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		zap.L().Error("completing packing", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to complete packing"})
		return
	}

	perf := &models.UserPerformance{
		User:             req.PackedPersonName,
		OrderID:          orderID,
		StartTime:        ordersync.ParseSyncDate(req.StartTime),
		EndTime:          ordersync.ParseSyncDate(req.EndTime),
		PackedDate:       ordersync.ParseSyncDate(req.PackedDate),
		Products:         req.Products,
		PackedPersonName: req.PackedPersonName,
	}
	if err := h.audits.RecordUserPerformance(c.Request.Context(), perf); err != nil {
		// Audit trail failure must not fail the packing action itself.
		zap.L().Warn("recording user performance", zap.String("order_id", orderID), zap.Error(err))
	}

	c.JSON(http.StatusOK, order)
}

// HoldPacking puts packing on hold with a reason.
func (h *OrdersHandler) HoldPacking(c *gin.Context) {
	var req validation.HoldPackingRequest
	if err := validation.BindAndValidate(c, &req, h.validator); err != nil {
		return
	}

	orderID := c.Param("orderID")
	_, err := h.orders.HoldPacking(c.Request.Context(), orderID, req.HoldReason, req.ReasonText, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		zap.L().Error("holding packing", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update packing status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Packing status updated to hold"})
}

// CompletePicking marks the order picked and appends a picking activity
// record.
func (h *OrdersHandler) CompletePicking(c *gin.Context) {
	var req validation.CompletePickingRequest
	if err := validation.BindAndValidate(c, &req, h.validator); err != nil {
		return
	}

	orderID := c.Param("orderID")
	order, err := h.orders.CompletePicking(c.Request.Context(), orderID,
		req.PickedStatus, ordersync.ParseSyncDate(req.PickedDate), req.PickedTime, req.PickedPersonName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		zap.L().Error("completing picking", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to complete picking"})
		return
	}

	username := req.Username
	if username == "" {
		username = req.PickedPersonName
	}
	activity := &models.PickingActivity{
		Username: username,
		OrderID:  orderID,
		Products: req.Products,
	}
	if start := ordersync.ParseSyncDate(req.StartTime); start != nil {
		activity.StartTime = *start
	}
	if end := ordersync.ParseSyncDate(req.EndTime); end != nil {
		activity.EndTime = *end
	}
	if err := h.audits.RecordPickingActivity(c.Request.Context(), activity); err != nil {
		zap.L().Warn("recording picking activity", zap.String("order_id", orderID), zap.Error(err))
	}

	c.JSON(http.StatusOK, order)
}

// Override records a manual override against the order.
func (h *OrdersHandler) Override(c *gin.Context) {
	var req validation.OverrideRequest
	if err := validation.BindAndValidate(c, &req, h.validator); err != nil {
		return
	}

	orderID := c.Param("orderID")
	order, err := h.orders.FindByOrderID(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record override", "error": err.Error()})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	override := &models.OverrideOrder{
		OrderID:  orderID,
		Username: req.Username,
		Products: req.Products,
		Reason:   req.Reason,
	}
	if err := h.audits.RecordOverride(c.Request.Context(), override); err != nil {
		zap.L().Error("recording override", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record override", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Override recorded"})
}

// GetByAwb looks up an order by the tail of a shipment AWB code.
func (h *OrdersHandler) GetByAwb(c *gin.Context) {
	order, err := h.orders.FindByAwbSuffix(c.Request.Context(), c.Param("awbCode"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		zap.L().Error("fetching order by awb", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateDelivery records warehouse-out state for the order matching the AWB.
func (h *OrdersHandler) UpdateDelivery(c *gin.Context) {
	var req validation.DeliveryRequest
	if err := validation.BindAndValidate(c, &req, h.validator); err != nil {
		return
	}

	order, err := h.orders.UpdateDelivery(c.Request.Context(), c.Param("awbCode"),
		req.WarehouseOut, ordersync.ParseSyncDate(req.WarehouseOutDate), req.WarehouseOutTime)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		zap.L().Error("updating delivery status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
