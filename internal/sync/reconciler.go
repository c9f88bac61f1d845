package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
	"go.uber.org/zap"
)

// OrderStore is the slice of order persistence the reconciler needs.
// FindByOrderID returns (nil, nil) when no order exists yet.
type OrderStore interface {
	FindByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	Insert(ctx context.Context, order *models.Order) error
	UpdateSyncedFields(ctx context.Context, order *models.Order) error
}

// MappingStore provides the product mapping snapshot.
type MappingStore interface {
	All(ctx context.Context) ([]models.ProductMapping, error)
}

// Reconciler merges externally fetched orders into local storage. External
// data is treated as partial and untrusted: line items are enriched through
// the mapping table, shipments are normalized, and a write only happens when
// the change detector confirms a difference. Workflow state owned by the
// packing/picking endpoints is never touched by a re-sync.
type Reconciler struct {
	orders   OrderStore
	mappings MappingStore
	nowFunc  func() time.Time
}

// NewReconciler wires a reconciler over the given stores.
func NewReconciler(orders OrderStore, mappings MappingStore) *Reconciler {
	return &Reconciler{
		orders:   orders,
		mappings: mappings,
		nowFunc:  time.Now,
	}
}

// Result summarizes one sync batch.
type Result struct {
	InsertedCount  int
	UpdatedCount   int
	UnchangedCount int
	AwbTransitions []AwbTransition
}

// SyncOrders processes the batch sequentially, in order of appearance. The
// mapping snapshot is loaded once up front; if that fails nothing is
// processed. A storage failure aborts the remaining batch — orders already
// committed stay committed, there is no batch-level rollback.
func (r *Reconciler) SyncOrders(ctx context.Context, orders []models.SyncOrder) (*Result, error) {
	mappings, err := r.mappings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading product mappings: %w", err)
	}
	snapshot := BuildSnapshot(mappings)

	result := &Result{}
	for i := range orders {
		if err := r.syncOne(ctx, &orders[i], snapshot, result); err != nil {
			return result, fmt.Errorf("order %s: %w", orders[i].OrderID, err)
		}
	}

	zap.L().Info("sync batch reconciled",
		zap.Int("total_orders", len(orders)),
		zap.Int("inserted", result.InsertedCount),
		zap.Int("updated", result.UpdatedCount),
		zap.Int("unchanged", result.UnchangedCount),
		zap.Int("awb_transitions", len(result.AwbTransitions)),
	)
	return result, nil
}

func (r *Reconciler) syncOne(ctx context.Context, raw *models.SyncOrder, snapshot MappingSnapshot, result *Result) error {
	products := EnrichProducts(raw.Products, snapshot)
	shipments := NormalizeShipments(raw.Shipments)

	existing, err := r.orders.FindByOrderID(ctx, raw.OrderID)
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	now := r.nowFunc()
	if existing == nil {
		if err := r.orders.Insert(ctx, r.newOrder(raw, shipments, products, now)); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		result.InsertedCount++
		zap.L().Info("order inserted", zap.String("order_id", raw.OrderID))
		return nil
	}

	diff := DetectChanges(existing, shipments, products)
	result.AwbTransitions = append(result.AwbTransitions, diff.AwbTransitions...)
	if !diff.Changed() {
		result.UnchangedCount++
		return nil
	}

	existing.OrderDate = ParseSyncDate(raw.OrderDate)
	existing.Customer = NormalizeCustomer(raw.Customer)
	existing.Shipments = shipments
	existing.Products = products
	existing.ShiprocketDate = now
	if err := r.orders.UpdateSyncedFields(ctx, existing); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	result.UpdatedCount++
	zap.L().Info("order updated",
		zap.String("order_id", raw.OrderID),
		zap.Bool("shipments_changed", diff.ShipmentsChanged),
		zap.Bool("products_changed", diff.ProductsChanged),
	)
	return nil
}

// newOrder builds a first-sync record: all sync-supplied fields plus defaulted
// workflow state. CreatedAt is set here and never rewritten afterwards.
func (r *Reconciler) newOrder(raw *models.SyncOrder, shipments []models.Shipment, products []models.Product, now time.Time) *models.Order {
	return &models.Order{
		OrderID:   raw.OrderID,
		OrderDate: ParseSyncDate(raw.OrderDate),
		Customer:  NormalizeCustomer(raw.Customer),
		Shipments: shipments,
		Products:  products,

		PackedStatus:     orDefault(raw.PackedStatus, models.StatusNotCompleted),
		PackedDate:       ParseSyncDate(raw.PackedDate),
		PackedTime:       orDefault(raw.PackedTime, models.SentinelUnknownTime),
		PackedPersonName: orDefault(raw.PackedPersonName, models.SentinelUnknown),

		PickedStatus:     models.StatusNotCompleted,
		PickedPersonName: models.SentinelUnknown,
		PickedTime:       models.SentinelUnknownTime,

		WarehouseOut:     orDefault(raw.WarehouseOut, models.SentinelUnknown),
		WarehouseOutDate: ParseSyncDate(raw.WarehouseOutDate),
		WarehouseOutTime: orDefault(raw.WarehouseOutTime, models.SentinelUnknownTime),

		CreatedAt:      now,
		ShiprocketDate: now,
	}
}
