package repository

import (
	"context"

	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductMappingRepository persists the product mapping table.
type ProductMappingRepository struct {
	db *gorm.DB
}

func NewProductMappingRepository(db *gorm.DB) *ProductMappingRepository {
	return &ProductMappingRepository{db: db}
}

// All returns the full mapping snapshot.
func (r *ProductMappingRepository) All(ctx context.Context) ([]models.ProductMapping, error) {
	var mappings []models.ProductMapping
	if err := r.db.WithContext(ctx).Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

// Upsert inserts or overwrites the mapping keyed by ProductID.
func (r *ProductMappingRepository) Upsert(ctx context.Context, m *models.ProductMapping) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"updated_id", "product_name", "sku",
				"product_location", "product_category", "image_url",
			}),
		}).
		Create(m).Error
}
