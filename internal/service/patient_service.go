package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"medimeal/internal/errors"
	"medimeal/internal/model"
	"medimeal/internal/repository"
)

// PatientUpdate carries a partial patient update; nil fields are left
// unchanged.
type PatientUpdate struct {
	Name             *string
	RoomNumber       *string
	BedNumber        *string
	FloorNumber      *string
	Age              *int
	Gender           *string
	ContactInfo      *string
	EmergencyContact *string
	Diseases         *[]string
	Allergies        *[]string
}

// PatientService handles patient operations.
type PatientService interface {
	CreatePatient(ctx context.Context, patient *model.Patient) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id uint, upd PatientUpdate) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uint) error
	GetPatient(ctx context.Context, id uint) (*model.Patient, error)
	ListPatients(ctx context.Context) ([]model.Patient, error)
}

type patientService struct {
	repo repository.PatientRepository
}

// NewPatientService creates a new patient service.
func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) CreatePatient(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	if patient.Age <= 0 {
		return nil, errors.NewValidationError("age must be positive")
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return patient, nil
}

func (s *patientService) UpdatePatient(ctx context.Context, id uint, upd PatientUpdate) (*model.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}

	if upd.Name != nil {
		patient.Name = *upd.Name
	}
	if upd.RoomNumber != nil {
		patient.RoomNumber = *upd.RoomNumber
	}
	if upd.BedNumber != nil {
		patient.BedNumber = *upd.BedNumber
	}
	if upd.FloorNumber != nil {
		patient.FloorNumber = *upd.FloorNumber
	}
	if upd.Age != nil {
		if *upd.Age <= 0 {
			return nil, errors.NewValidationError("age must be positive")
		}
		patient.Age = *upd.Age
	}
	if upd.Gender != nil {
		patient.Gender = *upd.Gender
	}
	if upd.ContactInfo != nil {
		patient.ContactInfo = *upd.ContactInfo
	}
	if upd.EmergencyContact != nil {
		patient.EmergencyContact = *upd.EmergencyContact
	}
	if upd.Diseases != nil {
		patient.Diseases = model.StringList(*upd.Diseases)
	}
	if upd.Allergies != nil {
		patient.Allergies = model.StringList(*upd.Allergies)
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return patient, nil
}

// DeletePatient removes a patient. Deletion is restricted while diet
// charts or meal deliveries still reference the patient.
func (s *patientService) DeletePatient(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPatientNotFound
		}
		return fmt.Errorf("find patient: %w", err)
	}

	dependents, err := s.repo.CountDependents(ctx, id)
	if err != nil {
		return fmt.Errorf("count dependents: %w", err)
	}
	if dependents > 0 {
		return errors.ErrPatientHasDependents
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}

func (s *patientService) GetPatient(ctx context.Context, id uint) (*model.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return patient, nil
}

func (s *patientService) ListPatients(ctx context.Context) ([]model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}
