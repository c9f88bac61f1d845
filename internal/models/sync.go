package models

// SyncOrder is one raw order as posted to /sync-orders. The payload originates
// from a read-modify-write round trip through the frontend, so everything is
// optional and untrusted; missing fields fall back to sentinels during
// reconciliation. Dates arrive as strings and may carry the "Unknown Date"
// literal.
type SyncOrder struct {
	OrderID   string        `json:"orderID"`
	OrderDate string        `json:"order_date"`
	Customer  *Customer     `json:"customer"`
	Shipments []RawShipment `json:"shipments"`
	Products  []RawProduct  `json:"products"`

	PackedStatus     string `json:"packed_status"`
	PackedDate       string `json:"packed_date"`
	PackedTime       string `json:"packed_time"`
	PackedPersonName string `json:"packed_person_name"`
	WarehouseOut     string `json:"warehouse_out"`
	WarehouseOutDate string `json:"warehouse_out_date"`
	WarehouseOutTime string `json:"warehouse_out_time"`
}

// RawShipment is a shipment as supplied by the platform, fields nullable.
type RawShipment struct {
	CourierName *string `json:"courier_name"`
	AwbCode     *string `json:"awb_code"`
	Status      *string `json:"status"`
}

// RawProduct is a line item before enrichment. ChannelSKU is the platform's
// SKU text and is what the weight is parsed from; ProductID is the platform's
// own identifier when it differs from ID.
type RawProduct struct {
	ID              string `json:"id"`
	ProductID       string `json:"product_id"`
	UpdatedID       string `json:"updated_id"`
	ChannelSKU      string `json:"channel_sku"`
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	ImageURL        string `json:"imageUrl"`
	ProductLocation string `json:"productLocation"`
	ProductCategory string `json:"productCategory"`
}
