package sync

import (
	"time"

	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
)

// NormalizeShipments fills missing shipment fields with the "N/A" sentinel.
// Pure and order-preserving; normalizing an already-normalized list yields the
// same list.
func NormalizeShipments(raw []models.RawShipment) []models.Shipment {
	out := make([]models.Shipment, len(raw))
	for i, s := range raw {
		out[i] = models.Shipment{
			CourierName: orNA(s.CourierName),
			AwbCode:     orNA(s.AwbCode),
			Status:      orNA(s.Status),
		}
	}
	return out
}

// NormalizeCustomer fills missing customer fields with "Unknown".
func NormalizeCustomer(c *models.Customer) models.Customer {
	if c == nil {
		c = &models.Customer{}
	}
	return models.Customer{
		Name:   orDefault(c.Name, models.SentinelUnknown),
		Mobile: orDefault(c.Mobile, models.SentinelUnknown),
		Email:  orDefault(c.Email, models.SentinelUnknown),
	}
}

// syncDateLayouts covers the timestamp shapes the platform and the frontend
// are known to emit.
var syncDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2 Jan 2006",
}

// ParseSyncDate parses a sync-supplied date string. The empty string and the
// "Unknown Date" literal map to nil, as does anything unparseable.
func ParseSyncDate(value string) *time.Time {
	if value == "" || value == models.SentinelUnknownDate {
		return nil
	}
	for _, layout := range syncDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func orNA(v *string) string {
	if v == nil || *v == "" {
		return models.SentinelNA
	}
	return *v
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
