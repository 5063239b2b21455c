package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"medimeal/internal/errors"
	"medimeal/internal/service"
)

// DeliveryHandler handles meal delivery endpoints.
type DeliveryHandler struct {
	deliveryService service.DeliveryService
}

// NewDeliveryHandler creates a new delivery handler.
func NewDeliveryHandler(deliveryService service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

// CreateDeliveryRequest represents a delivery creation request.
type CreateDeliveryRequest struct {
	PatientID uint   `json:"patientId" validate:"required"`
	Notes     string `json:"notes"`
}

// AssignDeliveryRequest represents a delivery assignment request.
type AssignDeliveryRequest struct {
	DeliveryID uint   `json:"deliveryId" validate:"required"`
	StaffID    string `json:"staffId" validate:"required"`
}

// List godoc
// @Summary List meal deliveries with their patient
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MealDelivery
// @Failure 401 {object} errors.ErrorResponse
// @Router /deliveries [get]
func (h *DeliveryHandler) List(c echo.Context) error {
	deliveries, err := h.deliveryService.ListDeliveries(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, deliveries)
}

// Get godoc
// @Summary Get a meal delivery by id
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Delivery ID"
// @Success 200 {object} model.MealDelivery
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /deliveries/{id} [get]
func (h *DeliveryHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid delivery id")
	}

	delivery, err := h.deliveryService.GetDelivery(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, delivery)
}

// Create godoc
// @Summary Create a pending delivery for a patient
// @Tags deliveries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDeliveryRequest true "Delivery data"
// @Success 201 {object} model.MealDelivery
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /deliveries [post]
func (h *DeliveryHandler) Create(c echo.Context) error {
	var req CreateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	delivery, err := h.deliveryService.CreateDelivery(c.Request().Context(), req.PatientID, req.Notes)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusCreated, delivery)
}

// Assign godoc
// @Summary Assign a pending delivery to a delivery staff member
// @Tags deliveries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AssignDeliveryRequest true "Assignment data"
// @Success 200 {object} model.MealDelivery
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /deliveries/assign [post]
func (h *DeliveryHandler) Assign(c echo.Context) error {
	var req AssignDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid staff id")
	}

	delivery, err := h.deliveryService.AssignDelivery(c.Request().Context(), req.DeliveryID, staffID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, delivery)
}

// Complete godoc
// @Summary Mark an in-progress delivery as delivered
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Delivery ID"
// @Success 200 {object} model.MealDelivery
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /deliveries/{id}/complete [put]
func (h *DeliveryHandler) Complete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid delivery id")
	}

	delivery, err := h.deliveryService.CompleteDelivery(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, delivery)
}
