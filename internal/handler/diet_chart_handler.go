package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medimeal/internal/errors"
	"medimeal/internal/model"
	"medimeal/internal/service"
)

// DietChartHandler handles diet chart endpoints.
type DietChartHandler struct {
	dietChartService service.DietChartService
}

// NewDietChartHandler creates a new diet chart handler.
func NewDietChartHandler(dietChartService service.DietChartService) *DietChartHandler {
	return &DietChartHandler{dietChartService: dietChartService}
}

// CreateDietChartRequest represents a diet chart creation request.
type CreateDietChartRequest struct {
	PatientID    uint     `json:"patientId" validate:"required"`
	MealType     string   `json:"mealType" validate:"required,oneof=MORNING EVENING NIGHT"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// UpdateDietChartRequest represents a partial diet chart update.
type UpdateDietChartRequest struct {
	PatientID    *uint     `json:"patientId"`
	MealType     *string   `json:"mealType" validate:"omitempty,oneof=MORNING EVENING NIGHT"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
}

// List godoc
// @Summary List diet charts with their patient
// @Tags diet-charts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DietChart
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /diet-charts [get]
func (h *DietChartHandler) List(c echo.Context) error {
	charts, err := h.dietChartService.ListDietCharts(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, charts)
}

// Create godoc
// @Summary Create a diet chart for a patient
// @Tags diet-charts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDietChartRequest true "Diet chart data"
// @Success 201 {object} model.DietChart
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /diet-charts [post]
func (h *DietChartHandler) Create(c echo.Context) error {
	var req CreateDietChartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	chart := &model.DietChart{
		PatientID:    req.PatientID,
		MealType:     model.MealType(req.MealType),
		Ingredients:  model.StringList(req.Ingredients),
		Instructions: model.StringList(req.Instructions),
	}

	created, err := h.dietChartService.CreateDietChart(c.Request().Context(), chart)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a diet chart
// @Tags diet-charts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Diet chart ID"
// @Param request body UpdateDietChartRequest true "Fields to update"
// @Success 200 {object} model.DietChart
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /diet-charts/{id} [put]
func (h *DietChartHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid diet chart id")
	}

	var req UpdateDietChartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := service.DietChartUpdate{
		PatientID:    req.PatientID,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	}
	if req.MealType != nil {
		mealType := model.MealType(*req.MealType)
		upd.MealType = &mealType
	}

	chart, err := h.dietChartService.UpdateDietChart(c.Request().Context(), id, upd)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, chart)
}
