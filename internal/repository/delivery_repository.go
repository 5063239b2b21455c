package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medimeal/internal/model"
)

// DeliveryRepository defines meal delivery persistence operations.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *model.MealDelivery) error
	FindByID(ctx context.Context, id uint) (*model.MealDelivery, error)
	List(ctx context.Context) ([]model.MealDelivery, error)
	// MarkInProgress transitions the delivery to IN_PROGRESS only when its
	// current status is PENDING, returning the number of rows updated.
	MarkInProgress(ctx context.Context, id uint, staffID uuid.UUID) (int64, error)
	// MarkDelivered transitions the delivery to DELIVERED only when its
	// current status is IN_PROGRESS, returning the number of rows updated.
	MarkDelivered(ctx context.Context, id uint, deliveredAt time.Time) (int64, error)
}

type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates a new delivery repository.
func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) Create(ctx context.Context, delivery *model.MealDelivery) error {
	return r.db.WithContext(ctx).Create(delivery).Error
}

func (r *deliveryRepository) FindByID(ctx context.Context, id uint) (*model.MealDelivery, error) {
	var delivery model.MealDelivery
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		First(&delivery, id).Error; err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) List(ctx context.Context) ([]model.MealDelivery, error) {
	var deliveries []model.MealDelivery
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// The status predicate in the WHERE clause makes the transition guard
// race-free: of two concurrent transitions exactly one updates a row.
func (r *deliveryRepository) MarkInProgress(ctx context.Context, id uint, staffID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.MealDelivery{}).
		Where("id = ? AND status = ?", id, model.DeliveryStatusPending).
		Updates(map[string]interface{}{
			"status":      model.DeliveryStatusInProgress,
			"assigned_to": staffID,
		})
	return res.RowsAffected, res.Error
}

func (r *deliveryRepository) MarkDelivered(ctx context.Context, id uint, deliveredAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.MealDelivery{}).
		Where("id = ? AND status = ?", id, model.DeliveryStatusInProgress).
		Updates(map[string]interface{}{
			"status":        model.DeliveryStatusDelivered,
			"delivery_time": deliveredAt,
		})
	return res.RowsAffected, res.Error
}
