package sync

import "github.com/tgh-ops/warehouse-fulfillment-service/internal/models"

// AwbTransition records a waybill reassignment detected during a sync. It is
// surfaced to the sync caller for operational follow-up, not persisted.
type AwbTransition struct {
	OrderID    string `json:"orderID"`
	OldAwb     string `json:"oldAwb"`
	NewAwb     string `json:"newAwb"`
	OldCourier string `json:"oldCourier"`
	NewCourier string `json:"newCourier"`
	NewStatus  string `json:"newStatus"`
}

// DiffResult reports what the change detector found for one order.
type DiffResult struct {
	ShipmentsChanged bool
	ProductsChanged  bool
	AwbTransitions   []AwbTransition
}

// Changed reports whether a rewrite of the synced fields is warranted.
func (d DiffResult) Changed() bool {
	return d.ShipmentsChanged || d.ProductsChanged
}

// DetectChanges compares the persisted order against freshly normalized
// shipments and enriched products. Lists are aligned by a stable key when one
// exists (AWB code for shipments, line-item id for products) so that a pure
// reorder from the platform is not reported as a change; alignment falls back
// to positions otherwise.
func DetectChanges(existing *models.Order, shipments []models.Shipment, products []models.Product) DiffResult {
	shipmentsChanged, transitions := diffShipments(existing.OrderID, existing.Shipments, shipments)
	return DiffResult{
		ShipmentsChanged: shipmentsChanged,
		ProductsChanged:  diffProducts(existing.Products, products),
		AwbTransitions:   transitions,
	}
}

func diffShipments(orderID string, old, latest []models.Shipment) (bool, []AwbTransition) {
	oldByAwb, oldKeyed := shipmentsByAwb(old)
	newByAwb, newKeyed := shipmentsByAwb(latest)

	// Key-aligned path: identical AWB sets mean no waybill moved, so only
	// courier/status edits count and no transitions are emitted.
	if oldKeyed && newKeyed && sameAwbSet(oldByAwb, newByAwb) {
		for awb, n := range newByAwb {
			o := oldByAwb[awb]
			if o.CourierName != n.CourierName || o.Status != n.Status {
				return true, nil
			}
		}
		return false, nil
	}

	// Positional fallback. Transition records pair old and new waybills by
	// index, which is also the shape the dashboard expects for "courier
	// reassigned" notices.
	changed := len(old) != len(latest)
	var transitions []AwbTransition
	n := len(old)
	if len(latest) < n {
		n = len(latest)
	}
	for i := 0; i < n; i++ {
		if old[i] != latest[i] {
			changed = true
		}
		if old[i].AwbCode != latest[i].AwbCode && latest[i].AwbCode != models.SentinelNA {
			transitions = append(transitions, AwbTransition{
				OrderID:    orderID,
				OldAwb:     old[i].AwbCode,
				NewAwb:     latest[i].AwbCode,
				OldCourier: old[i].CourierName,
				NewCourier: latest[i].CourierName,
				NewStatus:  latest[i].Status,
			})
		}
	}
	return changed, transitions
}

// shipmentsByAwb keys shipments by AWB code. Keying is only usable when every
// shipment carries a real, unique AWB.
func shipmentsByAwb(list []models.Shipment) (map[string]models.Shipment, bool) {
	m := make(map[string]models.Shipment, len(list))
	for _, s := range list {
		if s.AwbCode == "" || s.AwbCode == models.SentinelNA {
			return nil, false
		}
		if _, dup := m[s.AwbCode]; dup {
			return nil, false
		}
		m[s.AwbCode] = s
	}
	return m, len(list) > 0
}

func sameAwbSet(a, b map[string]models.Shipment) bool {
	if len(a) != len(b) {
		return false
	}
	for awb := range a {
		if _, ok := b[awb]; !ok {
			return false
		}
	}
	return true
}

func diffProducts(old, latest []models.Product) bool {
	if len(old) != len(latest) {
		return true
	}
	oldByID, oldKeyed := productsByID(old)
	newByID, newKeyed := productsByID(latest)

	if oldKeyed && newKeyed && sameProductIDSet(oldByID, newByID) {
		for id, n := range newByID {
			if !productEqual(oldByID[id], n) {
				return true
			}
		}
		return false
	}

	for i := range latest {
		if !productEqual(old[i], latest[i]) {
			return true
		}
	}
	return false
}

func productsByID(list []models.Product) (map[string]models.Product, bool) {
	m := make(map[string]models.Product, len(list))
	for _, p := range list {
		if p.ID == "" {
			return nil, false
		}
		if _, dup := m[p.ID]; dup {
			return nil, false
		}
		m[p.ID] = p
	}
	return m, len(list) > 0
}

func sameProductIDSet(a, b map[string]models.Product) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}

// productEqual compares the fields a sync is allowed to rewrite. The line-item
// identifiers are alignment keys, not content.
func productEqual(a, b models.Product) bool {
	return a.UpdatedID == b.UpdatedID &&
		a.ProductLocation == b.ProductLocation &&
		a.ProductCategory == b.ProductCategory &&
		a.ImageURL == b.ImageURL &&
		a.SKU == b.SKU &&
		a.Name == b.Name &&
		a.Quantity == b.Quantity &&
		a.Weight == b.Weight
}
