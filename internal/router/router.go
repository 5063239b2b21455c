package router

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"medimeal/internal/auth"
	"medimeal/internal/errors"
	"medimeal/internal/handler"
	"medimeal/internal/model"
)

// Register wires routes and middleware. Each protected route carries its
// explicit role allow-list; the JWT group rejects unauthenticated requests
// before any handler runs.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	dietChartHandler *handler.DietChartHandler,
	deliveryHandler *handler.DeliveryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = httpErrorHandler

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/login", authHandler.Login)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}))

	// Patient routes
	secured.GET("/patients", patientHandler.List, auth.RequireRoles(model.RoleManager, model.RolePantry))
	secured.GET("/patients/:id", patientHandler.Get, auth.RequireRoles(model.RoleManager, model.RolePantry))
	secured.POST("/patients", patientHandler.Create, auth.RequireRoles(model.RoleManager))
	secured.PUT("/patients/:id", patientHandler.Update, auth.RequireRoles(model.RoleManager))
	secured.DELETE("/patients/:id", patientHandler.Delete, auth.RequireRoles(model.RoleManager))

	// Diet chart routes
	secured.GET("/diet-charts", dietChartHandler.List, auth.RequireRoles(model.RoleManager, model.RolePantry))
	secured.POST("/diet-charts", dietChartHandler.Create, auth.RequireRoles(model.RoleManager))
	secured.PUT("/diet-charts/:id", dietChartHandler.Update, auth.RequireRoles(model.RoleManager))

	// Delivery routes
	secured.GET("/deliveries", deliveryHandler.List, auth.RequireRoles(model.RoleManager, model.RolePantry, model.RoleDelivery))
	secured.GET("/deliveries/:id", deliveryHandler.Get, auth.RequireRoles(model.RoleManager, model.RolePantry, model.RoleDelivery))
	secured.POST("/deliveries", deliveryHandler.Create, auth.RequireRoles(model.RoleManager, model.RolePantry))
	secured.POST("/deliveries/assign", deliveryHandler.Assign, auth.RequireRoles(model.RoleManager, model.RolePantry))
	secured.PUT("/deliveries/:id/complete", deliveryHandler.Complete, auth.RequireRoles(model.RoleDelivery))
}

// httpErrorHandler renders every failure as a JSON {"message": ...} body.
func httpErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		code = httpErr.Code
		switch m := httpErr.Message.(type) {
		case string:
			message = m
		default:
			message = fmt.Sprint(m)
		}
	}

	// Unmatched routes fall through echo's router as ErrNotFound.
	if stderrors.Is(err, echo.ErrNotFound) {
		message = "Route not found"
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, errors.ErrorResponse{Message: message})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
