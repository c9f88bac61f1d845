package sync

import "github.com/tgh-ops/warehouse-fulfillment-service/internal/models"

// MappingSnapshot indexes product mappings by product name, the join key used
// when enriching incoming line items.
type MappingSnapshot map[string]models.ProductMapping

// BuildSnapshot builds a name-keyed snapshot from the mapping table. Later
// rows win when two mappings share a name.
func BuildSnapshot(mappings []models.ProductMapping) MappingSnapshot {
	snap := make(MappingSnapshot, len(mappings))
	for _, m := range mappings {
		snap[m.ProductName] = m
	}
	return snap
}

// EnrichProduct canonicalizes one raw line item. A mapping hit overwrites the
// identity/location/category/image fields (each individually defaulted when
// the mapping record lacks it) and records the incoming identifier as
// OriginalID. A miss is normal: the raw fields pass through untouched. The
// weight is always derived from the SKU text.
func EnrichProduct(raw models.RawProduct, snap MappingSnapshot) models.Product {
	sku := raw.ChannelSKU
	if sku == "" {
		sku = raw.SKU
	}

	p := models.Product{
		ID:              raw.ID,
		UpdatedID:       raw.UpdatedID,
		SKU:             sku,
		Name:            raw.Name,
		Quantity:        raw.Quantity,
		ImageURL:        raw.ImageURL,
		ProductLocation: raw.ProductLocation,
		ProductCategory: raw.ProductCategory,
	}

	if m, ok := snap[raw.Name]; ok {
		p.UpdatedID = orDefault(m.UpdatedID, models.SentinelUnknown)
		p.ProductLocation = orDefault(m.ProductLocation, models.SentinelUnknown)
		p.ProductCategory = orDefault(m.ProductCategory, models.SentinelUnknown)
		p.ImageURL = m.ImageURL
		p.OriginalID = raw.ProductID
		if p.OriginalID == "" {
			p.OriginalID = raw.ID
		}
	}

	p.Weight = ParseWeightKg(sku)
	return p
}

// EnrichProducts applies EnrichProduct across a whole order, in order.
func EnrichProducts(raw []models.RawProduct, snap MappingSnapshot) []models.Product {
	out := make([]models.Product, len(raw))
	for i, rp := range raw {
		out[i] = EnrichProduct(rp, snap)
	}
	return out
}
