package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"medimeal/internal/errors"
	"medimeal/internal/model"
	"medimeal/internal/service"
)

// PatientHandler handles patient endpoints.
type PatientHandler struct {
	patientService service.PatientService
}

// NewPatientHandler creates a new patient handler.
func NewPatientHandler(patientService service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// CreatePatientRequest represents a patient creation request.
type CreatePatientRequest struct {
	Name             string   `json:"name" validate:"required"`
	RoomNumber       string   `json:"roomNumber" validate:"required"`
	BedNumber        string   `json:"bedNumber" validate:"required"`
	FloorNumber      string   `json:"floorNumber" validate:"required"`
	Age              int      `json:"age" validate:"required,gt=0"`
	Gender           string   `json:"gender" validate:"required"`
	ContactInfo      string   `json:"contactInfo"`
	EmergencyContact string   `json:"emergencyContact"`
	Diseases         []string `json:"diseases"`
	Allergies        []string `json:"allergies"`
}

// UpdatePatientRequest represents a partial patient update.
type UpdatePatientRequest struct {
	Name             *string   `json:"name"`
	RoomNumber       *string   `json:"roomNumber"`
	BedNumber        *string   `json:"bedNumber"`
	FloorNumber      *string   `json:"floorNumber"`
	Age              *int      `json:"age" validate:"omitempty,gt=0"`
	Gender           *string   `json:"gender"`
	ContactInfo      *string   `json:"contactInfo"`
	EmergencyContact *string   `json:"emergencyContact"`
	Diseases         *[]string `json:"diseases"`
	Allergies        *[]string `json:"allergies"`
}

// List godoc
// @Summary List patients with their diet charts and deliveries
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Patient
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.patientService.ListPatients(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, patients)
}

// Get godoc
// @Summary Get a patient by id
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} model.Patient
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	patient, err := h.patientService.GetPatient(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, patient)
}

// Create godoc
// @Summary Create a patient
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePatientRequest true "Patient data"
// @Success 201 {object} model.Patient
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req CreatePatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient := &model.Patient{
		Name:             req.Name,
		RoomNumber:       req.RoomNumber,
		BedNumber:        req.BedNumber,
		FloorNumber:      req.FloorNumber,
		Age:              req.Age,
		Gender:           req.Gender,
		ContactInfo:      req.ContactInfo,
		EmergencyContact: req.EmergencyContact,
		Diseases:         model.StringList(req.Diseases),
		Allergies:        model.StringList(req.Allergies),
	}

	created, err := h.patientService.CreatePatient(c.Request().Context(), patient)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a patient
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Param request body UpdatePatientRequest true "Fields to update"
// @Success 200 {object} model.Patient
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	var req UpdatePatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := service.PatientUpdate{
		Name:             req.Name,
		RoomNumber:       req.RoomNumber,
		BedNumber:        req.BedNumber,
		FloorNumber:      req.FloorNumber,
		Age:              req.Age,
		Gender:           req.Gender,
		ContactInfo:      req.ContactInfo,
		EmergencyContact: req.EmergencyContact,
		Diseases:         req.Diseases,
		Allergies:        req.Allergies,
	}

	patient, err := h.patientService.UpdatePatient(c.Request().Context(), id, upd)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, patient)
}

// Delete godoc
// @Summary Delete a patient without dependent records
// @Tags patients
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /patients/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	if err := h.patientService.DeletePatient(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
