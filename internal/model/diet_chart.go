package model

import "time"

// MealType identifies which meal of the day a diet chart prescribes.
type MealType string

const (
	MealTypeMorning MealType = "MORNING"
	MealTypeEvening MealType = "EVENING"
	MealTypeNight   MealType = "NIGHT"
)

// Valid reports whether t is one of the known meal types.
func (t MealType) Valid() bool {
	switch t {
	case MealTypeMorning, MealTypeEvening, MealTypeNight:
		return true
	}
	return false
}

// DietChart is a prescribed meal specification for a patient.
type DietChart struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	PatientID    uint       `json:"patientId" gorm:"not null;index"`
	MealType     MealType   `json:"mealType" gorm:"type:varchar(20);not null"`
	Ingredients  StringList `json:"ingredients" gorm:"type:text"`
	Instructions StringList `json:"instructions" gorm:"type:text"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	Patient *Patient `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
}
