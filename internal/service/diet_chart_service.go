package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"medimeal/internal/errors"
	"medimeal/internal/model"
	"medimeal/internal/repository"
)

// DietChartUpdate carries a partial diet chart update; nil fields are left
// unchanged.
type DietChartUpdate struct {
	PatientID    *uint
	MealType     *model.MealType
	Ingredients  *[]string
	Instructions *[]string
}

// DietChartService handles diet chart operations.
type DietChartService interface {
	CreateDietChart(ctx context.Context, chart *model.DietChart) (*model.DietChart, error)
	UpdateDietChart(ctx context.Context, id uint, upd DietChartUpdate) (*model.DietChart, error)
	ListDietCharts(ctx context.Context) ([]model.DietChart, error)
}

type dietChartService struct {
	repo        repository.DietChartRepository
	patientRepo repository.PatientRepository
}

// NewDietChartService creates a new diet chart service.
func NewDietChartService(repo repository.DietChartRepository, patientRepo repository.PatientRepository) DietChartService {
	return &dietChartService{
		repo:        repo,
		patientRepo: patientRepo,
	}
}

// CreateDietChart creates a chart for an existing patient.
func (s *dietChartService) CreateDietChart(ctx context.Context, chart *model.DietChart) (*model.DietChart, error) {
	if !chart.MealType.Valid() {
		return nil, errors.NewValidationError("invalid meal type")
	}

	if _, err := s.patientRepo.FindByID(ctx, chart.PatientID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}

	if err := s.repo.Create(ctx, chart); err != nil {
		return nil, fmt.Errorf("create diet chart: %w", err)
	}
	return chart, nil
}

func (s *dietChartService) UpdateDietChart(ctx context.Context, id uint, upd DietChartUpdate) (*model.DietChart, error) {
	chart, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDietChartNotFound
		}
		return nil, fmt.Errorf("find diet chart: %w", err)
	}

	if upd.PatientID != nil {
		if _, err := s.patientRepo.FindByID(ctx, *upd.PatientID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrPatientNotFound
			}
			return nil, fmt.Errorf("find patient: %w", err)
		}
		chart.PatientID = *upd.PatientID
	}
	if upd.MealType != nil {
		if !upd.MealType.Valid() {
			return nil, errors.NewValidationError("invalid meal type")
		}
		chart.MealType = *upd.MealType
	}
	if upd.Ingredients != nil {
		chart.Ingredients = model.StringList(*upd.Ingredients)
	}
	if upd.Instructions != nil {
		chart.Instructions = model.StringList(*upd.Instructions)
	}

	if err := s.repo.Update(ctx, chart); err != nil {
		return nil, fmt.Errorf("update diet chart: %w", err)
	}
	return chart, nil
}

func (s *dietChartService) ListDietCharts(ctx context.Context) ([]model.DietChart, error) {
	charts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diet charts: %w", err)
	}
	return charts, nil
}
