package repository

import (
	"context"

	"gorm.io/gorm"

	"medimeal/internal/model"
)

// DietChartRepository defines diet chart persistence operations.
type DietChartRepository interface {
	Create(ctx context.Context, chart *model.DietChart) error
	Update(ctx context.Context, chart *model.DietChart) error
	FindByID(ctx context.Context, id uint) (*model.DietChart, error)
	List(ctx context.Context) ([]model.DietChart, error)
}

type dietChartRepository struct {
	db *gorm.DB
}

// NewDietChartRepository creates a new diet chart repository.
func NewDietChartRepository(db *gorm.DB) DietChartRepository {
	return &dietChartRepository{db: db}
}

func (r *dietChartRepository) Create(ctx context.Context, chart *model.DietChart) error {
	return r.db.WithContext(ctx).Create(chart).Error
}

func (r *dietChartRepository) Update(ctx context.Context, chart *model.DietChart) error {
	return r.db.WithContext(ctx).Save(chart).Error
}

func (r *dietChartRepository) FindByID(ctx context.Context, id uint) (*model.DietChart, error) {
	var chart model.DietChart
	if err := r.db.WithContext(ctx).First(&chart, id).Error; err != nil {
		return nil, err
	}
	return &chart, nil
}

// List returns all diet charts with their patient attached.
func (r *dietChartRepository) List(ctx context.Context) ([]model.DietChart, error) {
	var charts []model.DietChart
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Find(&charts).Error; err != nil {
		return nil, err
	}
	return charts, nil
}
