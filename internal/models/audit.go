package models

import "time"

// PickedProduct is a line item snapshot inside an audit record.
type PickedProduct struct {
	Name            string `json:"name"`
	SKU             string `json:"sku,omitempty"`
	Quantity        int    `json:"quantity"`
	ScannedQuantity int    `json:"scannedQuantity,omitempty"`
	Override        bool   `json:"override,omitempty"`
}

// PickingActivity is an append-only record of a completed pick.
type PickingActivity struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	Username  string          `gorm:"not null" json:"username"`
	OrderID   string          `gorm:"index;not null" json:"orderID"`
	Products  []PickedProduct `gorm:"serializer:json;type:text" json:"products"`
	Status    string          `json:"status"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	CreatedAt time.Time       `json:"createdAt"`
}

// UserPerformance tracks packing throughput per order and actor. One row per
// order; repeat submissions update the existing row.
type UserPerformance struct {
	ID               string          `gorm:"primaryKey;size:36" json:"id"`
	User             string          `gorm:"not null" json:"user"`
	OrderID          string          `gorm:"uniqueIndex;not null" json:"orderId"`
	StartTime        *time.Time      `json:"startTime"`
	EndTime          *time.Time      `json:"endTime"`
	PackedDate       *time.Time      `json:"packedDate"`
	Products         []PickedProduct `gorm:"serializer:json;type:text" json:"products"`
	HoldReason       string          `json:"holdReason"`
	PackedPersonName string          `json:"packedPersonName"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// OverrideOrder records a manual override applied during picking or packing.
type OverrideOrder struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	OrderID   string          `gorm:"index;not null" json:"orderID"`
	Username  string          `json:"username"`
	Products  []PickedProduct `gorm:"serializer:json;type:text" json:"products"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
