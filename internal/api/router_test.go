package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cargoconnect/logistics-api/internal/core/domain"
	"github.com/cargoconnect/logistics-api/internal/core/ports"
)

const testJWTSecret = "router-test-secret"

// memoryShipmentService is an in-memory ShipmentService good enough to drive
// the router end to end without Mongo or Redis.
type memoryShipmentService struct {
	mu        sync.Mutex
	shipments map[string]*domain.Shipment
	notified  []string
}

func newMemoryShipmentService() *memoryShipmentService {
	return &memoryShipmentService{shipments: make(map[string]*domain.Shipment)}
}

func (s *memoryShipmentService) Create(_ context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	status := domain.StatusPackagePickup
	if input.InitialStatus != "" {
		status = domain.ShipmentStatus(input.InitialStatus)
	}
	shipment := &domain.Shipment{
		TrackingCode:  "CC-0123456789AB",
		SenderName:    input.SenderName,
		ReceiverName:  input.ReceiverName,
		ReceiverEmail: input.ReceiverEmail,
		Origin:        input.Origin,
		Destination:   input.Destination,
		Weight:        input.Weight,
		Amount:        input.Amount,
		Status:        status,
		CreatedAt:     now,
		LastUpdate:    now,
		Timeline:      []domain.TimelineEntry{{Status: status, Timestamp: now}},
	}
	s.shipments[shipment.TrackingCode] = shipment
	return shipment, nil
}

func (s *memoryShipmentService) Track(_ context.Context, trackingCode string) (*domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shipment, ok := s.shipments[trackingCode]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	return shipment, nil
}

func (s *memoryShipmentService) List(_ context.Context) ([]*domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Shipment, 0, len(s.shipments))
	for _, shipment := range s.shipments {
		out = append(out, shipment)
	}
	return out, nil
}

func (s *memoryShipmentService) UpdateStatus(_ context.Context, trackingCode, status string) (*domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.ShipmentStatus(status).IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	shipment, ok := s.shipments[trackingCode]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	now := time.Now().UTC()
	shipment.Status = domain.ShipmentStatus(status)
	shipment.LastUpdate = now
	shipment.Timeline = append(shipment.Timeline, domain.TimelineEntry{Status: shipment.Status, Timestamp: now})
	return shipment, nil
}

func (s *memoryShipmentService) Notify(_ context.Context, trackingCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shipments[trackingCode]; !ok {
		return domain.ErrShipmentNotFound
	}
	s.notified = append(s.notified, trackingCode)
	return nil
}

// memoryAuthService issues real HS256 tokens so the auth middleware can
// verify them.
type memoryAuthService struct{}

func (memoryAuthService) Login(_ context.Context, username, password string) (string, error) {
	if username != "admin@cargoconnect.com" || password != "Admin@123" {
		return "", domain.ErrInvalidCredentials
	}
	return signTestToken(domain.RoleAdmin)
}

func signTestToken(role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin@cargoconnect.com",
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	return token.SignedString([]byte(testJWTSecret))
}

// The router is built once: the Prometheus middleware registers collectors in
// the default registry and a second NewRouter call would collide.
var (
	routerOnce sync.Once
	testRouter *echo.Echo
	testStore  *memoryShipmentService
)

func router(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		testStore = newMemoryShipmentService()
		testRouter = NewRouter(nil, nil, testStore, memoryAuthService{}, RouterConfig{
			JWTSecret: testJWTSecret,
		}, zerolog.Nop())
		testRouter.Logger.SetOutput(io.Discard)
	})
	return testRouter
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := signTestToken(domain.RoleAdmin)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	e := router(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/shipments"},
		{http.MethodPost, "/shipments"},
		{http.MethodPatch, "/shipments/CC-0123456789AB"},
		{http.MethodPost, "/shipments/CC-0123456789AB/notify"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := do(e, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: got %d, want 401", tc.method, tc.path, rec.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode error envelope: %v", err)
		}
		if resp["error"] == "" {
			t.Errorf("%s %s: error envelope missing", tc.method, tc.path)
		}
	}
}

func TestRouter_NonAdminRoleForbidden(t *testing.T) {
	e := router(t)

	token, err := signTestToken("viewer")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/shipments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := do(e, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRouter_LoginFlow(t *testing.T) {
	e := router(t)

	form := url.Values{}
	form.Set("username", "admin@cargoconnect.com")
	form.Set("password", "Admin@123")
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := do(e, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	token := resp["access_token"]
	if token == "" {
		t.Fatal("access_token missing from login response")
	}

	listReq := httptest.NewRequest(http.MethodGet, "/shipments", nil)
	listReq.Header.Set("Authorization", "Bearer "+token)
	listRec := do(e, listReq)
	if listRec.Code != http.StatusOK {
		t.Fatalf("authenticated list: expected 200, got %d", listRec.Code)
	}
}

func TestRouter_LoginRejectsBadCredentials(t *testing.T) {
	e := router(t)

	form := url.Values{}
	form.Set("username", "admin@cargoconnect.com")
	form.Set("password", "wrong")
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := do(e, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_CreateThenTrack(t *testing.T) {
	e := router(t)
	token := adminToken(t)

	body := `{
		"sender_name": "Acme Corp",
		"receiver_name": "Jane Doe",
		"receiver_email": "jane@example.com",
		"origin": "Mexico City",
		"destination": "Monterrey",
		"weight": 2.5,
		"amount": 120
	}`
	createReq := httptest.NewRequest(http.MethodPost, "/shipments", strings.NewReader(body))
	createReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	createReq.Header.Set("Authorization", "Bearer "+token)
	createRec := do(e, createReq)

	if createRec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", createRec.Code, createRec.Body.String())
	}

	var created map[string]any
	if err := json.Unmarshal(createRec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	code, _ := created["tracking_code"].(string)
	if code == "" {
		t.Fatal("tracking_code missing from create response")
	}

	// The tracking page needs no credentials.
	trackReq := httptest.NewRequest(http.MethodGet, "/track/"+code, nil)
	trackRec := do(e, trackReq)
	if trackRec.Code != http.StatusOK {
		t.Fatalf("track: expected 200, got %d", trackRec.Code)
	}
}

func TestRouter_UpdateStatusGrowsTimeline(t *testing.T) {
	e := router(t)
	token := adminToken(t)

	if _, err := testStore.Create(context.Background(), ports.CreateShipmentInput{
		SenderName:   "Acme Corp",
		ReceiverName: "Jane Doe",
		Origin:       "Mexico City",
		Destination:  "Monterrey",
	}); err != nil {
		t.Fatalf("seed shipment: %v", err)
	}

	before, err := testStore.Track(context.Background(), "CC-0123456789AB")
	if err != nil {
		t.Fatalf("seed lookup: %v", err)
	}
	entries := len(before.Timeline)

	req := httptest.NewRequest(http.MethodPatch, "/shipments/CC-0123456789AB", strings.NewReader(`{"status":"In Transit"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := do(e, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	timeline, _ := resp["timeline"].([]any)
	if len(timeline) != entries+1 {
		t.Errorf("timeline: got %d entries, want %d", len(timeline), entries+1)
	}
}

func TestRouter_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	e := router(t)
	token := adminToken(t)

	req := httptest.NewRequest(http.MethodPatch, "/shipments/CC-0123456789AB", strings.NewReader(`{"status":"Teleported"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := do(e, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestRouter_TrackUnknownCode(t *testing.T) {
	e := router(t)

	req := httptest.NewRequest(http.MethodGet, "/track/CC-FFFFFFFFFFFF", nil)
	rec := do(e, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if resp["error"] != "shipment not found" {
		t.Errorf("error message: got %q", resp["error"])
	}
}

func TestRouter_Liveness(t *testing.T) {
	e := router(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := do(e, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
