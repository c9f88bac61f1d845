package models

import "time"

// Sentinel defaults shared by the sync insert and update paths. Keeping them
// in one place so the two paths cannot drift apart.
const (
	SentinelNA          = "N/A"
	SentinelUnknown     = "Unknown"
	SentinelUnknownTime = "Unknown Time"
	SentinelUnknownDate = "Unknown Date"
	StatusNotCompleted  = "Not Completed"
	StatusCompleted     = "Completed"
	StatusHold          = "Hold"
)

// Customer is the informational buyer block on an order.
type Customer struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

// Shipment is one courier assignment on an order. All fields are "N/A" when
// the platform did not supply them.
type Shipment struct {
	CourierName string `json:"courier_name"`
	AwbCode     string `json:"awb_code"`
	Status      string `json:"status"`
}

// Product is one enriched line item on an order.
type Product struct {
	ID              string  `json:"id"`
	UpdatedID       string  `json:"updated_id"`
	OriginalID      string  `json:"original_id,omitempty"`
	SKU             string  `json:"sku"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	Weight          float64 `json:"weight"`
	ImageURL        string  `json:"imageUrl"`
	ProductLocation string  `json:"productLocation"`
	ProductCategory string  `json:"productCategory"`
}

// Order is the persisted order record, keyed by the business OrderID rather
// than the storage id. Shipments, products and the customer block are
// document-shaped and stored as JSON text columns.
type Order struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	OrderID   string     `gorm:"uniqueIndex;size:64;not null" json:"orderID"`
	OrderDate *time.Time `json:"order_date"`

	Customer  Customer   `gorm:"serializer:json;type:text" json:"customer"`
	Shipments []Shipment `gorm:"serializer:json;type:text" json:"shipments"`
	Products  []Product  `gorm:"serializer:json;type:text" json:"products"`

	PackedStatus     string     `json:"packed_status"`
	PackedDate       *time.Time `json:"packed_date"`
	PackedTime       string     `json:"packed_time"`
	PackedPersonName string     `json:"packed_person_name"`

	PickedStatus     string     `json:"picked_status"`
	PickedPersonName string     `json:"picked_person_name"`
	PickedDate       *time.Time `json:"picked_date"`
	PickedTime       string     `json:"picked_time"`

	WarehouseOut     string     `json:"warehouse_out"`
	WarehouseOutDate *time.Time `json:"warehouse_out_date"`
	WarehouseOutTime string     `json:"warehouse_out_time"`

	HoldReason string `json:"hold_reason,omitempty"`
	ReasonText string `json:"reason_text,omitempty"`

	// CreatedAt is set once at first insertion and never rewritten.
	// ShiprocketDate is the timestamp of the most recent successful sync.
	CreatedAt      time.Time `json:"createdAt"`
	ShiprocketDate time.Time `json:"shiprocketDate"`
}
