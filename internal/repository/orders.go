package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
	"gorm.io/gorm"
)

// OrderRepository persists orders. The business OrderID is the lookup key
// everywhere; the numeric primary key never leaves this package.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByOrderID returns (nil, nil) when the order does not exist.
func (r *OrderRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Insert creates a first-sync order row. The unique index on order_id keeps
// concurrent first syncs from creating duplicates; the loser surfaces a
// storage error.
func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// UpdateSyncedFields rewrites only the columns a sync owns. Workflow state
// (packing, picking, hold, warehouse-out) and created_at are left alone.
func (r *OrderRepository) UpdateSyncedFields(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", order.OrderID).
		Select("order_date", "customer", "shipments", "products", "shiprocket_date").
		Updates(order).Error
}

// All returns every persisted order.
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CompletePacking marks an order packed and returns the updated record.
func (r *OrderRepository) CompletePacking(ctx context.Context, orderID, status string, date *time.Time, timeOfDay, person string) (*models.Order, error) {
	return r.updateWorkflow(ctx, orderID, map[string]interface{}{
		"packed_status":      status,
		"packed_date":        date,
		"packed_time":        timeOfDay,
		"packed_person_name": person,
	})
}

// HoldPacking puts an order's packing on hold. Packed and warehouse-out dates
// are stamped with now when still unset so held orders sort sensibly.
func (r *OrderRepository) HoldPacking(ctx context.Context, orderID, holdReason, reasonText string, now time.Time) (*models.Order, error) {
	order, err := r.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	order.HoldReason = holdReason
	order.ReasonText = reasonText
	order.PackedStatus = models.StatusHold
	if order.PackedDate == nil {
		order.PackedDate = &now
	}
	if order.WarehouseOutDate == nil {
		order.WarehouseOutDate = &now
	}

	err = r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Select("hold_reason", "reason_text", "packed_status", "packed_date", "warehouse_out_date").
		Updates(order).Error
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CompletePicking marks an order picked and returns the updated record.
func (r *OrderRepository) CompletePicking(ctx context.Context, orderID, status string, date *time.Time, timeOfDay, person string) (*models.Order, error) {
	return r.updateWorkflow(ctx, orderID, map[string]interface{}{
		"picked_status":      status,
		"picked_date":        date,
		"picked_time":        timeOfDay,
		"picked_person_name": person,
	})
}

// FindByAwbSuffix locates the order whose shipment AWB code ends with the
// given digits. Scanners often capture only the tail of the barcode, so a
// suffix match is the contract here. The LIKE prefilter narrows candidates;
// the authoritative check runs on the decoded shipment list.
func (r *OrderRepository) FindByAwbSuffix(ctx context.Context, awbSuffix string) (*models.Order, error) {
	var candidates []models.Order
	err := r.db.WithContext(ctx).
		Where("shipments LIKE ?", "%"+awbSuffix+"%").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		for _, s := range candidates[i].Shipments {
			if s.AwbCode != models.SentinelNA && strings.HasSuffix(s.AwbCode, awbSuffix) {
				return &candidates[i], nil
			}
		}
	}
	return nil, ErrNotFound
}

// UpdateDelivery records warehouse-out state on the order matching the AWB
// suffix and returns the updated record.
func (r *OrderRepository) UpdateDelivery(ctx context.Context, awbSuffix, warehouseOut string, date *time.Time, timeOfDay string) (*models.Order, error) {
	order, err := r.FindByAwbSuffix(ctx, awbSuffix)
	if err != nil {
		return nil, err
	}
	return r.updateWorkflow(ctx, order.OrderID, map[string]interface{}{
		"warehouse_out":      warehouseOut,
		"warehouse_out_date": date,
		"warehouse_out_time": timeOfDay,
	})
}

func (r *OrderRepository) updateWorkflow(ctx context.Context, orderID string, fields map[string]interface{}) (*models.Order, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByOrderID(ctx, orderID)
}
