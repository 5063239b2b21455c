package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus represents the lifecycle state of a meal delivery.
// Transitions are monotonic: PENDING -> IN_PROGRESS -> DELIVERED.
type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "PENDING"
	DeliveryStatusInProgress DeliveryStatus = "IN_PROGRESS"
	DeliveryStatusDelivered  DeliveryStatus = "DELIVERED"
)

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle step. No transition skips a state or reverses.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	switch s {
	case DeliveryStatusPending:
		return next == DeliveryStatusInProgress
	case DeliveryStatusInProgress:
		return next == DeliveryStatusDelivered
	}
	return false
}

// MealDelivery tracks getting a prepared meal to a patient.
type MealDelivery struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	PatientID    uint           `json:"patientId" gorm:"not null;index"`
	Status       DeliveryStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	AssignedTo   *uuid.UUID     `json:"assignedTo,omitempty" gorm:"type:char(36)"`
	DeliveryTime *time.Time     `json:"deliveryTime,omitempty"`
	Notes        string         `json:"notes,omitempty" gorm:"size:500"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`

	Patient *Patient `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
}
