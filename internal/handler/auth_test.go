package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hirewire/api/internal/middleware"
	"github.com/hirewire/api/internal/model"
	"github.com/hirewire/api/internal/service"
)

// ============================================================================
// Mock AuthService
// ============================================================================

type mockAuthService struct {
	registerFunc    func(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	loginFunc       func(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	getUserByIDFunc func(ctx context.Context, userID string) (*model.User, error)
	deactivateFunc  func(ctx context.Context, userID string) error
}

func (m *mockAuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	if m.getUserByIDFunc != nil {
		return m.getUserByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAuthService) Deactivate(ctx context.Context, userID string) error {
	if m.deactivateFunc != nil {
		return m.deactivateFunc(ctx, userID)
	}
	return nil
}

// ============================================================================
// Test Helpers
// ============================================================================

func newTestCandidate() *model.User {
	now := time.Now()
	return &model.User{
		ID:        "user:cand",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      model.UserRoleCandidate,
		CreatedOn: now,
		UpdatedOn: now,
	}
}

func makeJSONRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withUserContext(req *http.Request, userID string, role model.UserRole) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.UserRoleKey, role)
	return req.WithContext(ctx)
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return envelope.Data
}

// ============================================================================
// Register Tests
// ============================================================================

func TestRegister_Valid_Returns201WithToken(t *testing.T) {
	t.Parallel()

	mockSvc := &mockAuthService{
		registerFunc: func(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
			return &model.AuthResponse{
				Token:     "signed.jwt.token",
				ExpiresIn: 900,
				User:      newTestCandidate(),
			}, nil
		},
	}
	h := NewAuthHandler(mockSvc)

	req := makeJSONRequest(http.MethodPost, "/v1/auth/register", model.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "secret1",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      "candidate",
	})
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	data := decodeData(t, rr)
	if data["token"] != "signed.jwt.token" {
		t.Errorf("expected token in response, got %v", data["token"])
	}
}

func TestRegister_InvalidBody_Returns400(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestRegister_ValidationFailure_Returns422(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&mockAuthService{})

	req := makeJSONRequest(http.MethodPost, "/v1/auth/register", model.RegisterRequest{
		Email:     "not-an-email",
		Password:  "x",
		FirstName: "J",
		LastName:  "D",
		Role:      "wizard",
	})
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}
}

func TestRegister_DuplicateEmail_Returns409(t *testing.T) {
	t.Parallel()

	mockSvc := &mockAuthService{
		registerFunc: func(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
			return nil, service.ErrEmailAlreadyExists
		},
	}
	h := NewAuthHandler(mockSvc)

	req := makeJSONRequest(http.MethodPost, "/v1/auth/register", model.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "secret1",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      "candidate",
	})
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, rr.Code)
	}
}

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_Valid_Returns200(t *testing.T) {
	t.Parallel()

	mockSvc := &mockAuthService{
		loginFunc: func(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
			return &model.AuthResponse{
				Token:     "signed.jwt.token",
				ExpiresIn: 900,
				User:      newTestCandidate(),
			}, nil
		},
	}
	h := NewAuthHandler(mockSvc)

	req := makeJSONRequest(http.MethodPost, "/v1/auth/login", model.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret1",
	})
	rr := httptest.NewRecorder()

	h.Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestLogin_BadCredentials_Returns401(t *testing.T) {
	t.Parallel()

	mockSvc := &mockAuthService{
		loginFunc: func(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(mockSvc)

	req := makeJSONRequest(http.MethodPost, "/v1/auth/login", model.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	rr := httptest.NewRecorder()

	h.Login(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

// ============================================================================
// Me / Deactivate Tests
// ============================================================================

func TestMe_Authenticated_ReturnsUser(t *testing.T) {
	t.Parallel()

	mockSvc := &mockAuthService{
		getUserByIDFunc: func(ctx context.Context, userID string) (*model.User, error) {
			return newTestCandidate(), nil
		},
	}
	h := NewAuthHandler(mockSvc)

	req := withUserContext(httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil), "user:cand", model.UserRoleCandidate)
	rr := httptest.NewRecorder()

	h.Me(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	data := decodeData(t, rr)
	if data["email"] != "jane@example.com" {
		t.Errorf("expected user email in response, got %v", data["email"])
	}
}

func TestMe_NoContext_Returns401(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rr := httptest.NewRecorder()

	h.Me(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestDeactivate_Returns204(t *testing.T) {
	t.Parallel()

	deactivated := ""
	mockSvc := &mockAuthService{
		deactivateFunc: func(ctx context.Context, userID string) error {
			deactivated = userID
			return nil
		},
	}
	h := NewAuthHandler(mockSvc)

	req := withUserContext(httptest.NewRequest(http.MethodDelete, "/v1/auth/me", nil), "user:cand", model.UserRoleCandidate)
	rr := httptest.NewRecorder()

	h.Deactivate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
	if deactivated != "user:cand" {
		t.Errorf("expected deactivate for user:cand, got %q", deactivated)
	}
}
