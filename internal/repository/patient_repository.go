package repository

import (
	"context"

	"gorm.io/gorm"

	"medimeal/internal/model"
)

// PatientRepository defines patient persistence operations.
type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Patient, error)
	List(ctx context.Context) ([]model.Patient, error)
	CountDependents(ctx context.Context, id uint) (int64, error)
}

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository.
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Patient{}, id).Error
}

// FindByID loads a patient with its diet charts and meal deliveries in one
// query tree, so callers get the nested data without extra round trips.
func (r *patientRepository) FindByID(ctx context.Context, id uint) (*model.Patient, error) {
	var patient model.Patient
	if err := r.db.WithContext(ctx).
		Preload("DietCharts").
		Preload("MealDeliveries").
		First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]model.Patient, error) {
	var patients []model.Patient
	if err := r.db.WithContext(ctx).
		Preload("DietCharts").
		Preload("MealDeliveries").
		Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// CountDependents counts diet charts and meal deliveries referencing the
// patient. Deletion is restricted while any exist.
func (r *patientRepository) CountDependents(ctx context.Context, id uint) (int64, error) {
	var charts int64
	if err := r.db.WithContext(ctx).Model(&model.DietChart{}).
		Where("patient_id = ?", id).Count(&charts).Error; err != nil {
		return 0, err
	}
	var deliveries int64
	if err := r.db.WithContext(ctx).Model(&model.MealDelivery{}).
		Where("patient_id = ?", id).Count(&deliveries).Error; err != nil {
		return 0, err
	}
	return charts + deliveries, nil
}
