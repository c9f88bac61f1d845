package models

// ProductMapping translates a sales-channel product name into canonical
// identity, location, category and image metadata. Rows are keyed by
// ProductID; ProductName is the join key the reconciler matches incoming line
// items against. Owned by the admin configuration workflow, read-only for the
// reconciler.
type ProductMapping struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	ProductID       string `gorm:"uniqueIndex;size:64;not null" json:"productID"`
	UpdatedID       string `json:"updatedID"`
	ProductName     string `gorm:"index" json:"productName"`
	SKU             string `json:"sku"`
	ProductLocation string `json:"productLocation"`
	ProductCategory string `json:"productCategory"`
	ImageURL        string `json:"imageUrl"`
}
