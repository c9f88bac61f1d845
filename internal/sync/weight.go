package sync

import (
	"regexp"
	"strconv"
	"strings"
)

var weightPattern = regexp.MustCompile(`(?i)(\d+)(kg|g)`)

// ParseWeightKg extracts a weight in kilograms from SKU text such as
// "TGH-WIDGET-500g" or "2kg". Gram values are converted to kilograms. A
// missing or malformed weight is normal and yields 0, never an error.
func ParseWeightKg(sku string) float64 {
	m := weightPattern.FindStringSubmatch(sku)
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	if strings.EqualFold(m[2], "kg") {
		return value
	}
	return value / 1000
}
