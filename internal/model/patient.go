package model

import "time"

// Patient represents an admitted patient and their ward location.
type Patient struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name" gorm:"size:255;not null;index"`
	RoomNumber       string     `json:"roomNumber" gorm:"size:20;not null"`
	BedNumber        string     `json:"bedNumber" gorm:"size:20;not null"`
	FloorNumber      string     `json:"floorNumber" gorm:"size:20;not null"`
	Age              int        `json:"age" gorm:"not null"`
	Gender           string     `json:"gender" gorm:"size:20;not null"`
	ContactInfo      string     `json:"contactInfo" gorm:"size:50"`
	EmergencyContact string     `json:"emergencyContact" gorm:"size:50"`
	Diseases         StringList `json:"diseases" gorm:"type:text"`
	Allergies        StringList `json:"allergies" gorm:"type:text"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	// Relations. List and get responses carry these eagerly so dashboards
	// render a patient with charts and deliveries in one round trip.
	DietCharts     []DietChart    `json:"dietCharts" gorm:"foreignKey:PatientID"`
	MealDeliveries []MealDelivery `json:"mealDeliveries" gorm:"foreignKey:PatientID"`
}
