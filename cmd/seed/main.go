package main

import (
	"log"
	"time"

	"gorm.io/gorm"

	"medimeal/internal/config"
	"medimeal/internal/db"
	"medimeal/internal/model"
	"medimeal/internal/service"
)

const seedPassword = "Password@2025"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Patient{},
		&model.DietChart{},
		&model.MealDelivery{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if err := seed(gormDB); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	log.Println("Seed data created successfully")
}

func seed(gormDB *gorm.DB) error {
	return gormDB.Transaction(func(tx *gorm.DB) error {
		// Clear existing data, children first.
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []interface{}{
			&model.MealDelivery{},
			&model.DietChart{},
			&model.Patient{},
			&model.User{},
		} {
			if err := session.Delete(m).Error; err != nil {
				return err
			}
		}

		passwordHash, err := service.HashPassword(seedPassword)
		if err != nil {
			return err
		}

		users := []model.User{
			{Name: "John Manager", Email: "hospital_manager@xyz.com", PasswordHash: passwordHash, Role: model.RoleManager},
			{Name: "Sarah Pantry", Email: "hospital_pantry@xyz.com", PasswordHash: passwordHash, Role: model.RolePantry},
			{Name: "Mike Delivery", Email: "hospital_delivery@xyz.com", PasswordHash: passwordHash, Role: model.RoleDelivery},
		}
		for i := range users {
			if err := tx.Create(&users[i]).Error; err != nil {
				return err
			}
		}

		patients := []model.Patient{
			{
				Name:             "Alice Johnson",
				RoomNumber:       "201",
				BedNumber:        "A",
				FloorNumber:      "2",
				Age:              45,
				Gender:           "Female",
				ContactInfo:      "+1234567890",
				EmergencyContact: "+1987654321",
				Diseases:         model.StringList{"Diabetes", "Hypertension"},
				Allergies:        model.StringList{"Peanuts", "Shellfish"},
			},
			{
				Name:             "Bob Smith",
				RoomNumber:       "305",
				BedNumber:        "B",
				FloorNumber:      "3",
				Age:              62,
				Gender:           "Male",
				ContactInfo:      "+1122334455",
				EmergencyContact: "+1555666777",
				Diseases:         model.StringList{"Heart Disease"},
				Allergies:        model.StringList{"Lactose"},
			},
		}
		for i := range patients {
			if err := tx.Create(&patients[i]).Error; err != nil {
				return err
			}
		}

		chart := model.DietChart{
			PatientID:    patients[0].ID,
			MealType:     model.MealTypeMorning,
			Ingredients:  model.StringList{"Oatmeal", "Fresh Fruits", "Sugar-free Yogurt"},
			Instructions: model.StringList{"No added sugar", "Serve warm"},
		}
		if err := tx.Create(&chart).Error; err != nil {
			return err
		}

		now := time.Now()
		delivery := model.MealDelivery{
			PatientID:    patients[0].ID,
			Status:       model.DeliveryStatusInProgress,
			AssignedTo:   &users[2].ID,
			DeliveryTime: &now,
			Notes:        "Handle with care",
		}
		return tx.Create(&delivery).Error
	})
}
