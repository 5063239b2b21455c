package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"medimeal/internal/auth"
	"medimeal/internal/errors"
	"medimeal/internal/handler"
	"medimeal/internal/model"
	"medimeal/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

// MockPatientService is a mock implementation of service.PatientService.
type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) CreatePatient(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) UpdatePatient(ctx context.Context, id uint, upd service.PatientUpdate) (*model.Patient, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) DeletePatient(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPatientService) GetPatient(ctx context.Context, id uint) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) ListPatients(ctx context.Context) ([]model.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

// MockDietChartService is a mock implementation of service.DietChartService.
type MockDietChartService struct {
	mock.Mock
}

func (m *MockDietChartService) CreateDietChart(ctx context.Context, chart *model.DietChart) (*model.DietChart, error) {
	args := m.Called(ctx, chart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DietChart), args.Error(1)
}

func (m *MockDietChartService) UpdateDietChart(ctx context.Context, id uint, upd service.DietChartUpdate) (*model.DietChart, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DietChart), args.Error(1)
}

func (m *MockDietChartService) ListDietCharts(ctx context.Context) ([]model.DietChart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DietChart), args.Error(1)
}

// MockDeliveryService is a mock implementation of service.DeliveryService.
type MockDeliveryService struct {
	mock.Mock
}

func (m *MockDeliveryService) CreateDelivery(ctx context.Context, patientID uint, notes string) (*model.MealDelivery, error) {
	args := m.Called(ctx, patientID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealDelivery), args.Error(1)
}

func (m *MockDeliveryService) GetDelivery(ctx context.Context, id uint) (*model.MealDelivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealDelivery), args.Error(1)
}

func (m *MockDeliveryService) ListDeliveries(ctx context.Context) ([]model.MealDelivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MealDelivery), args.Error(1)
}

func (m *MockDeliveryService) AssignDelivery(ctx context.Context, deliveryID uint, staffID uuid.UUID) (*model.MealDelivery, error) {
	args := m.Called(ctx, deliveryID, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealDelivery), args.Error(1)
}

func (m *MockDeliveryService) CompleteDelivery(ctx context.Context, deliveryID uint) (*model.MealDelivery, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealDelivery), args.Error(1)
}

type testServer struct {
	echo       *echo.Echo
	jwtService *auth.JWTService
	authSvc    *MockAuthService
	patients   *MockPatientService
	charts     *MockDietChartService
	deliveries *MockDeliveryService
}

func newTestServer() *testServer {
	ts := &testServer{
		echo:       echo.New(),
		jwtService: auth.NewJWTService("test-secret"),
		authSvc:    new(MockAuthService),
		patients:   new(MockPatientService),
		charts:     new(MockDietChartService),
		deliveries: new(MockDeliveryService),
	}
	Register(
		ts.echo,
		ts.jwtService,
		handler.NewAuthHandler(ts.authSvc),
		handler.NewPatientHandler(ts.patients),
		handler.NewDietChartHandler(ts.charts),
		handler.NewDeliveryHandler(ts.deliveries),
	)
	return ts
}

func (ts *testServer) tokenFor(role model.Role) string {
	token, _ := ts.jwtService.GenerateToken(uuid.NewString(), strings.ToLower(string(role))+"@xyz.com", role)
	return token
}

func (ts *testServer) request(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	ts := newTestServer()
	rec := ts.request(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouteNotFound(t *testing.T) {
	ts := newTestServer()
	rec := ts.request(http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Route not found"}`, rec.Body.String())
}

func TestAuthenticationGate(t *testing.T) {
	ts := newTestServer()

	t.Run("missing token", func(t *testing.T) {
		rec := ts.request(http.MethodGet, "/api/patients", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"No token provided"}`, rec.Body.String())
	})

	t.Run("malformed token", func(t *testing.T) {
		rec := ts.request(http.MethodGet, "/api/patients", "not-a-token", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, _ := auth.NewJWTService("other-secret").
			GenerateToken(uuid.NewString(), "m@xyz.com", model.RoleManager)
		rec := ts.request(http.MethodGet, "/api/patients", other, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
	})

	// No repository or service work may happen on rejected requests.
	ts.patients.AssertNotCalled(t, "ListPatients", mock.Anything)
}

func TestRoleAllowLists(t *testing.T) {
	patient := &model.Patient{ID: 1, Name: "Alice Johnson"}

	tests := []struct {
		name         string
		method       string
		path         string
		role         model.Role
		body         string
		setupMocks   func(*testServer)
		expectedCode int
	}{
		{
			name: "pantry may list patients", method: http.MethodGet, path: "/api/patients",
			role: model.RolePantry,
			setupMocks: func(ts *testServer) {
				ts.patients.On("ListPatients", mock.Anything).Return([]model.Patient{*patient}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "delivery may not list patients", method: http.MethodGet, path: "/api/patients",
			role:         model.RoleDelivery,
			expectedCode: http.StatusForbidden,
		},
		{
			name: "pantry may not create patients", method: http.MethodPost, path: "/api/patients",
			role:         model.RolePantry,
			body:         `{"name":"Bob Smith","roomNumber":"305","bedNumber":"B","floorNumber":"3","age":62,"gender":"Male"}`,
			expectedCode: http.StatusForbidden,
		},
		{
			name: "pantry may not complete deliveries", method: http.MethodPut, path: "/api/deliveries/1/complete",
			role:         model.RolePantry,
			expectedCode: http.StatusForbidden,
		},
		{
			name: "manager may not complete deliveries", method: http.MethodPut, path: "/api/deliveries/1/complete",
			role:         model.RoleManager,
			expectedCode: http.StatusForbidden,
		},
		{
			name: "delivery may not assign deliveries", method: http.MethodPost, path: "/api/deliveries/assign",
			role:         model.RoleDelivery,
			body:         `{"deliveryId":1,"staffId":"` + uuid.NewString() + `"}`,
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			if tt.setupMocks != nil {
				tt.setupMocks(ts)
			}

			rec := ts.request(tt.method, tt.path, ts.tokenFor(tt.role), tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusForbidden {
				assert.JSONEq(t, `{"message":"Forbidden"}`, rec.Body.String())
			}
		})
	}
}

func TestCreatePatient_MissingRequiredField(t *testing.T) {
	ts := newTestServer()

	rec := ts.request(http.MethodPost, "/api/patients", ts.tokenFor(model.RoleManager),
		`{"roomNumber":"305","bedNumber":"B","floorNumber":"3","age":62,"gender":"Male"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// A rejected create never reaches the service, so nothing persists.
	ts.patients.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	t.Run("returns token", func(t *testing.T) {
		ts := newTestServer()
		ts.authSvc.On("Login", mock.Anything, "hospital_manager@xyz.com", "Password@2025").
			Return("signed-token", nil)

		rec := ts.request(http.MethodPost, "/api/login", "",
			`{"email":"hospital_manager@xyz.com","password":"Password@2025"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"signed-token"}`, rec.Body.String())
	})

	t.Run("identical body for unknown email and wrong password", func(t *testing.T) {
		ts := newTestServer()
		ts.authSvc.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.ErrInvalidCredentials)

		unknown := ts.request(http.MethodPost, "/api/login", "",
			`{"email":"ghost@xyz.com","password":"whatever"}`)
		wrongPass := ts.request(http.MethodPost, "/api/login", "",
			`{"email":"hospital_manager@xyz.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, unknown.Code, wrongPass.Code)
		assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
	})
}

// Full role scenario: the manager sets up a patient and chart, the pantry
// assigns the delivery, and only the delivery staff may complete it.
func TestDeliveryScenario(t *testing.T) {
	ts := newTestServer()
	staffID := uuid.New()
	now := time.Now()

	ts.patients.On("CreatePatient", mock.Anything, mock.AnythingOfType("*model.Patient")).
		Return(&model.Patient{ID: 1, Name: "Alice Johnson"}, nil)
	ts.charts.On("CreateDietChart", mock.Anything, mock.AnythingOfType("*model.DietChart")).
		Return(&model.DietChart{ID: 1, PatientID: 1, MealType: model.MealTypeMorning}, nil)
	ts.deliveries.On("CreateDelivery", mock.Anything, uint(1), "").
		Return(&model.MealDelivery{ID: 1, PatientID: 1, Status: model.DeliveryStatusPending}, nil)
	ts.deliveries.On("AssignDelivery", mock.Anything, uint(1), staffID).
		Return(&model.MealDelivery{ID: 1, PatientID: 1, Status: model.DeliveryStatusInProgress, AssignedTo: &staffID}, nil)
	ts.deliveries.On("CompleteDelivery", mock.Anything, uint(1)).
		Return(&model.MealDelivery{ID: 1, PatientID: 1, Status: model.DeliveryStatusDelivered, DeliveryTime: &now}, nil)

	manager := ts.tokenFor(model.RoleManager)
	pantry := ts.tokenFor(model.RolePantry)
	delivery := ts.tokenFor(model.RoleDelivery)

	rec := ts.request(http.MethodPost, "/api/patients", manager,
		`{"name":"Alice Johnson","roomNumber":"201","bedNumber":"A","floorNumber":"2","age":45,"gender":"Female"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.request(http.MethodPost, "/api/diet-charts", manager,
		`{"patientId":1,"mealType":"MORNING","ingredients":["Oatmeal"],"instructions":["Serve warm"]}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.request(http.MethodPost, "/api/deliveries", pantry, `{"patientId":1}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.request(http.MethodPost, "/api/deliveries/assign", pantry,
		`{"deliveryId":1,"staffId":"`+staffID.String()+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(model.DeliveryStatusInProgress))

	rec = ts.request(http.MethodPut, "/api/deliveries/1/complete", pantry, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.request(http.MethodPut, "/api/deliveries/1/complete", delivery, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(model.DeliveryStatusDelivered))
	assert.Contains(t, rec.Body.String(), "deliveryTime")
}

// Lifecycle violations surface as 409 conflicts.
func TestDeliveryTransitionConflicts(t *testing.T) {
	ts := newTestServer()
	staffID := uuid.New()

	ts.deliveries.On("AssignDelivery", mock.Anything, uint(2), staffID).
		Return(nil, errors.ErrDeliveryNotPending)
	ts.deliveries.On("CompleteDelivery", mock.Anything, uint(3)).
		Return(nil, errors.ErrDeliveryNotInProgress)

	rec := ts.request(http.MethodPost, "/api/deliveries/assign", ts.tokenFor(model.RolePantry),
		`{"deliveryId":2,"staffId":"`+staffID.String()+`"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Delivery is not pending"}`, rec.Body.String())

	rec = ts.request(http.MethodPut, "/api/deliveries/3/complete", ts.tokenFor(model.RoleDelivery), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Delivery is not in progress"}`, rec.Body.String())
}
