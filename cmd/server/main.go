package main

import (
	"log"
	"net/http"

	_ "medimeal/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"medimeal/internal/auth"
	"medimeal/internal/config"
	"medimeal/internal/db"
	"medimeal/internal/handler"
	"medimeal/internal/model"
	"medimeal/internal/repository"
	"medimeal/internal/router"
	"medimeal/internal/service"
)

// @title Hospital Food Delivery API
// @version 1.0
// @description Role-based hospital food delivery coordination API: patients, diet charts, and meal delivery tracking with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Patient{},
		&model.DietChart{},
		&model.MealDelivery{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	patientRepo := repository.NewPatientRepository(gormDB)
	dietChartRepo := repository.NewDietChartRepository(gormDB)
	deliveryRepo := repository.NewDeliveryRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	patientService := service.NewPatientService(patientRepo)
	dietChartService := service.NewDietChartService(dietChartRepo, patientRepo)
	deliveryService := service.NewDeliveryService(deliveryRepo, patientRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(patientService)
	dietChartHandler := handler.NewDietChartHandler(dietChartService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		patientHandler,
		dietChartHandler,
		deliveryHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
