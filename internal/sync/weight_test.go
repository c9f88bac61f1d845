package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWeightKg(t *testing.T) {
	tests := []struct {
		name string
		sku  string
		want float64
	}{
		{"grams", "TGH-WIDGET-50g", 0.05},
		{"kilograms", "RICE-5kg", 5},
		{"uppercase unit", "RICE-5KG", 5},
		{"mixed case", "Combo-250G", 0.25},
		{"first match wins", "2kg-plus-500g", 2},
		{"no weight", "PLAIN-SKU", 0},
		{"empty", "", 0},
		{"unit without digits", "kg-special", 0},
		{"digits without unit", "SKU-123", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseWeightKg(tt.sku), 1e-9)
		})
	}
}
