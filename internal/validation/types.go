package validation

import "github.com/tgh-ops/warehouse-fulfillment-service/internal/models"

// RegisterRequest is the body for /register and POST /admin/users.
type RegisterRequest struct {
	Email       string              `json:"email" validate:"required,email"`
	Password    string              `json:"password" validate:"required,min=6"`
	Name        string              `json:"name"`
	Role        string              `json:"role" validate:"omitempty,oneof=user admin"`
	Permissions *models.Permissions `json:"permissions"`
}

// LoginRequest is the body for /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body for PUT /profile.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateUserRequest is the admin body for PUT /admin/users/:userID.
type UpdateUserRequest struct {
	Name        string             `json:"name"`
	Role        string             `json:"role" validate:"omitempty,oneof=user admin"`
	Permissions models.Permissions `json:"permissions"`
}

// SyncOrdersRequest is the body for POST /sync-orders.
type SyncOrdersRequest struct {
	From   string             `json:"from"`
	To     string             `json:"to"`
	Orders []models.SyncOrder `json:"orders"`
}

// ProductUpdatesRequest is the body for POST /update-product-ids.
type ProductUpdatesRequest struct {
	ProductUpdates []ProductMappingUpdate `json:"productUpdates" validate:"required,min=1,dive"`
}

// ProductMappingUpdate upserts one mapping row keyed by ProductID.
type ProductMappingUpdate struct {
	ProductID       string `json:"productID" validate:"required"`
	UpdatedID       string `json:"updatedID"`
	ProductName     string `json:"productName"`
	SKU             string `json:"sku"`
	ProductLocation string `json:"productLocation"`
	ProductCategory string `json:"productCategory"`
	ImageURL        string `json:"imageUrl"`
}

// CompletePackingRequest is the body for POST /order/:orderID/complete-packing.
type CompletePackingRequest struct {
	PackedStatus     string                 `json:"packed_status" validate:"required"`
	PackedDate       string                 `json:"packed_date"`
	PackedTime       string                 `json:"packed_time"`
	PackedPersonName string                 `json:"packed_person_name"`
	StartTime        string                 `json:"startTime"`
	EndTime          string                 `json:"endTime"`
	Products         []models.PickedProduct `json:"products"`
}

// HoldPackingRequest is the body for POST /order/:orderID/hold-packing.
type HoldPackingRequest struct {
	HoldReason string `json:"hold_reason" validate:"required"`
	ReasonText string `json:"reason_text"`
}

// CompletePickingRequest is the body for POST /order/:orderID/complete-picking.
type CompletePickingRequest struct {
	PickedStatus     string                 `json:"picked_status" validate:"required"`
	PickedDate       string                 `json:"picked_date"`
	PickedTime       string                 `json:"picked_time"`
	PickedPersonName string                 `json:"picked_person_name"`
	Username         string                 `json:"username"`
	StartTime        string                 `json:"startTime"`
	EndTime          string                 `json:"endTime"`
	Products         []models.PickedProduct `json:"products"`
}

// OverrideRequest is the body for POST /order/:orderID/override.
type OverrideRequest struct {
	Username string                 `json:"username" validate:"required"`
	Reason   string                 `json:"reason"`
	Products []models.PickedProduct `json:"products"`
}

// DeliveryRequest is the body for POST /order/awb/:awbCode/delivery.
type DeliveryRequest struct {
	WarehouseOut     string `json:"warehouse_out" validate:"required"`
	WarehouseOutDate string `json:"warehouse_out_date"`
	WarehouseOutTime string `json:"warehouse_out_time"`
}
