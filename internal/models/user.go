package models

import "time"

// Roles understood by the auth layer.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Permissions are the per-page access flags the dashboard frontend checks.
type Permissions struct {
	DashboardAccess bool `json:"dashboardAccess"`
	SyncAccess      bool `json:"syncAccess"`
	OrdersAccess    bool `json:"ordersAccess"`
	PackingAccess   bool `json:"packingAccess"`
	DeliveryAccess  bool `json:"deliveryAccess"`
	ProductsAccess  bool `json:"productsAccess"`
	SettingsAccess  bool `json:"settingsAccess"`
}

// AllPermissions returns the flag set granted to admins.
func AllPermissions() Permissions {
	return Permissions{
		DashboardAccess: true,
		SyncAccess:      true,
		OrdersAccess:    true,
		PackingAccess:   true,
		DeliveryAccess:  true,
		ProductsAccess:  true,
		SettingsAccess:  true,
	}
}

// User is a dashboard account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Email       string      `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password    string      `json:"-"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Permissions Permissions `gorm:"serializer:json;type:text" json:"permissions"`
	CreatedAt   time.Time   `json:"createdAt"`
}
