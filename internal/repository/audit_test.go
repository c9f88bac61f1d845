package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
)

func TestRecordPickingActivityDefaultsStatus(t *testing.T) {
	db := testDB(t)
	repo := NewAuditRepository(db)

	activity := &models.PickingActivity{
		Username: "meera",
		OrderID:  "ORD-1",
		Products: []models.PickedProduct{{Name: "Widget", Quantity: 2, ScannedQuantity: 2}},
	}
	require.NoError(t, repo.RecordPickingActivity(context.Background(), activity))
	assert.NotEmpty(t, activity.ID)

	var got models.PickingActivity
	require.NoError(t, db.First(&got, "order_id = ?", "ORD-1").Error)
	assert.Equal(t, models.StatusCompleted, got.Status)
	require.Len(t, got.Products, 1)
	assert.Equal(t, 2, got.Products[0].ScannedQuantity)
}

func TestRecordPickingActivityAppends(t *testing.T) {
	db := testDB(t)
	repo := NewAuditRepository(db)

	require.NoError(t, repo.RecordPickingActivity(context.Background(), &models.PickingActivity{Username: "meera", OrderID: "ORD-1"}))
	require.NoError(t, repo.RecordPickingActivity(context.Background(), &models.PickingActivity{Username: "ravi", OrderID: "ORD-1"}))

	var count int64
	require.NoError(t, db.Model(&models.PickingActivity{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRecordUserPerformanceUpsertsPerOrder(t *testing.T) {
	db := testDB(t)
	repo := NewAuditRepository(db)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.RecordUserPerformance(context.Background(), &models.UserPerformance{
		User:             "ravi",
		OrderID:          "ORD-1",
		StartTime:        &start,
		PackedPersonName: "Ravi",
	}))

	require.NoError(t, repo.RecordUserPerformance(context.Background(), &models.UserPerformance{
		User:             "meera",
		OrderID:          "ORD-1",
		PackedPersonName: "Meera",
	}))

	var count int64
	require.NoError(t, db.Model(&models.UserPerformance{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var got models.UserPerformance
	require.NoError(t, db.First(&got, "order_id = ?", "ORD-1").Error)
	assert.Equal(t, "meera", got.User)
	assert.Equal(t, "Meera", got.PackedPersonName)
}

func TestRecordOverride(t *testing.T) {
	db := testDB(t)
	repo := NewAuditRepository(db)

	override := &models.OverrideOrder{
		OrderID:  "ORD-1",
		Username: "ravi",
		Products: []models.PickedProduct{{Name: "Widget", Quantity: 2, Override: true}},
		Reason:   "Barcode unreadable",
	}
	require.NoError(t, repo.RecordOverride(context.Background(), override))
	assert.NotEmpty(t, override.ID)

	var got models.OverrideOrder
	require.NoError(t, db.First(&got, "order_id = ?", "ORD-1").Error)
	assert.Equal(t, "Barcode unreadable", got.Reason)
	require.Len(t, got.Products, 1)
	assert.True(t, got.Products[0].Override)
}
