package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AuditRepository owns the append-only operational records: picking activity,
// packer performance and manual overrides. Nothing in the sync path reads
// these back; they exist for reporting.
type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// RecordPickingActivity appends one completed-pick record.
func (r *AuditRepository) RecordPickingActivity(ctx context.Context, activity *models.PickingActivity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.Status == "" {
		activity.Status = models.StatusCompleted
	}
	return r.db.WithContext(ctx).Create(activity).Error
}

// RecordUserPerformance upserts the per-order performance row. The order id
// is unique here: a re-packed order updates its existing row instead of
// duplicating it.
func (r *AuditRepository) RecordUserPerformance(ctx context.Context, perf *models.UserPerformance) error {
	if perf.ID == "" {
		perf.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user", "start_time", "end_time", "packed_date",
				"products", "hold_reason", "packed_person_name", "updated_at",
			}),
		}).
		Create(perf).Error
}

// RecordOverride appends one override record.
func (r *AuditRepository) RecordOverride(ctx context.Context, override *models.OverrideOrder) error {
	if override.ID == "" {
		override.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(override).Error
}
