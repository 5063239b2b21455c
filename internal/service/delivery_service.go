package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medimeal/internal/errors"
	"medimeal/internal/model"
	"medimeal/internal/repository"
)

// DeliveryService handles the meal delivery lifecycle.
type DeliveryService interface {
	CreateDelivery(ctx context.Context, patientID uint, notes string) (*model.MealDelivery, error)
	GetDelivery(ctx context.Context, id uint) (*model.MealDelivery, error)
	ListDeliveries(ctx context.Context) ([]model.MealDelivery, error)
	// AssignDelivery moves a PENDING delivery to IN_PROGRESS and records
	// the staff member it was handed to.
	AssignDelivery(ctx context.Context, deliveryID uint, staffID uuid.UUID) (*model.MealDelivery, error)
	// CompleteDelivery moves an IN_PROGRESS delivery to DELIVERED and
	// stamps the delivery time.
	CompleteDelivery(ctx context.Context, deliveryID uint) (*model.MealDelivery, error)
}

type deliveryService struct {
	repo        repository.DeliveryRepository
	patientRepo repository.PatientRepository
	now         func() time.Time
}

// NewDeliveryService creates a new delivery service.
func NewDeliveryService(repo repository.DeliveryRepository, patientRepo repository.PatientRepository) DeliveryService {
	return &deliveryService{
		repo:        repo,
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

// CreateDelivery creates a PENDING delivery for an existing patient. No
// delivery time is set until completion.
func (s *deliveryService) CreateDelivery(ctx context.Context, patientID uint, notes string) (*model.MealDelivery, error) {
	if _, err := s.patientRepo.FindByID(ctx, patientID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}

	delivery := &model.MealDelivery{
		PatientID: patientID,
		Status:    model.DeliveryStatusPending,
		Notes:     notes,
	}
	if err := s.repo.Create(ctx, delivery); err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return delivery, nil
}

func (s *deliveryService) GetDelivery(ctx context.Context, id uint) (*model.MealDelivery, error) {
	delivery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("find delivery: %w", err)
	}
	return delivery, nil
}

func (s *deliveryService) ListDeliveries(ctx context.Context) ([]model.MealDelivery, error) {
	deliveries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

func (s *deliveryService) AssignDelivery(ctx context.Context, deliveryID uint, staffID uuid.UUID) (*model.MealDelivery, error) {
	rows, err := s.repo.MarkInProgress(ctx, deliveryID, staffID)
	if err != nil {
		return nil, fmt.Errorf("mark in progress: %w", err)
	}
	if rows == 0 {
		// Either the delivery does not exist or it already left PENDING.
		if _, err := s.repo.FindByID(ctx, deliveryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrDeliveryNotFound
			}
			return nil, fmt.Errorf("find delivery: %w", err)
		}
		return nil, errors.ErrDeliveryNotPending
	}

	return s.repo.FindByID(ctx, deliveryID)
}

func (s *deliveryService) CompleteDelivery(ctx context.Context, deliveryID uint) (*model.MealDelivery, error) {
	rows, err := s.repo.MarkDelivered(ctx, deliveryID, s.now())
	if err != nil {
		return nil, fmt.Errorf("mark delivered: %w", err)
	}
	if rows == 0 {
		if _, err := s.repo.FindByID(ctx, deliveryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrDeliveryNotFound
			}
			return nil, fmt.Errorf("find delivery: %w", err)
		}
		return nil, errors.ErrDeliveryNotInProgress
	}

	return s.repo.FindByID(ctx, deliveryID)
}
