package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for unknown email and wrong
	// password alike, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrPatientNotFound is returned when a patient is not found.
	ErrPatientNotFound = errors.New("Patient not found")
	// ErrDietChartNotFound is returned when a diet chart is not found.
	ErrDietChartNotFound = errors.New("Diet chart not found")
	// ErrDeliveryNotFound is returned when a meal delivery is not found.
	ErrDeliveryNotFound = errors.New("Delivery not found")
	// ErrPatientHasDependents is returned when deleting a patient that
	// still has diet charts or meal deliveries referencing it.
	ErrPatientHasDependents = errors.New("Patient has existing diet charts or deliveries")
	// ErrDeliveryNotPending is returned when assigning a delivery that
	// already left the PENDING state.
	ErrDeliveryNotPending = errors.New("Delivery is not pending")
	// ErrDeliveryNotInProgress is returned when completing a delivery that
	// is not IN_PROGRESS.
	ErrDeliveryNotInProgress = errors.New("Delivery is not in progress")
)

// ValidationError reports malformed input. It maps to 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// collapses into a generic 500 with the detail suppressed.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: validationErr.Reason}
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return &HTTPError{StatusCode: http.StatusUnauthorized, Message: err.Error()}
	case errors.Is(err, ErrPatientNotFound),
		errors.Is(err, ErrDietChartNotFound),
		errors.Is(err, ErrDeliveryNotFound):
		return &HTTPError{StatusCode: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, ErrPatientHasDependents),
		errors.Is(err, ErrDeliveryNotPending),
		errors.Is(err, ErrDeliveryNotInProgress):
		return &HTTPError{StatusCode: http.StatusConflict, Message: err.Error()}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "Internal server error"}
	}
}
