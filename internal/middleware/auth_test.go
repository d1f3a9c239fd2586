package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hirewire/api/internal/model"
	"github.com/hirewire/api/pkg/jwt"
)

// ============================================================================
// Mock Validator
// ============================================================================

type mockValidator struct {
	validateFunc func(token string) (*jwt.Claims, error)
}

func (m *mockValidator) Validate(token string) (*jwt.Claims, error) {
	return m.validateFunc(token)
}

// successValidator returns valid claims for any token
func successValidator(userID, email, role string) *mockValidator {
	return &mockValidator{
		validateFunc: func(token string) (*jwt.Claims, error) {
			return &jwt.Claims{
				UserID: userID,
				Email:  email,
				Role:   role,
			}, nil
		},
	}
}

// errorValidator returns the specified error
func errorValidator(err error) *mockValidator {
	return &mockValidator{
		validateFunc: func(token string) (*jwt.Claims, error) {
			return nil, err
		},
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

func newTestRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

// captureHandler captures the request context for inspection
type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// ============================================================================
// Auth() Middleware Tests
// ============================================================================

func TestAuth_MissingAuthorizationHeader_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	validator := successValidator("user:123", "test@example.com", "candidate")
	handler := &captureHandler{}

	req := newTestRequest("") // No auth header
	rr := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_InvalidHeaderFormat_NoBearerPrefix_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	validator := successValidator("user:123", "test@example.com", "candidate")
	handler := &captureHandler{}

	req := newTestRequest("Basic sometoken") // Wrong scheme
	rr := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_InvalidHeaderFormat_OnlyBearer_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	validator := successValidator("user:123", "test@example.com", "candidate")
	handler := &captureHandler{}

	req := newTestRequest("Bearer") // No token
	rr := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_ExpiredToken_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	validator := errorValidator(jwt.ErrTokenExpired)
	handler := &captureHandler{}

	req := newTestRequest("Bearer expired-token")
	rr := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}
}

func TestAuth_InvalidSignature_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	validator := errorValidator(jwt.ErrInvalidSignature)
	handler := &captureHandler{}

	req := newTestRequest("Bearer tampered-token")
	rr := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestAuth_ValidToken_SetsContextValues(t *testing.T) {
	t.Parallel()
	validator := successValidator("user:123", "test@example.com", "employer")
	handler := &captureHandler{}

	req := newTestRequest("Bearer valid-token")
	rr := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rr, req)

	if !handler.called {
		t.Fatal("handler should have been called")
	}
	if got := GetUserID(handler.ctx); got != "user:123" {
		t.Errorf("expected user ID user:123, got %q", got)
	}
	if got := GetUserEmail(handler.ctx); got != "test@example.com" {
		t.Errorf("expected email test@example.com, got %q", got)
	}
	if got := GetUserRole(handler.ctx); got != model.UserRoleEmployer {
		t.Errorf("expected employer role, got %q", got)
	}
	if GetClaims(handler.ctx) == nil {
		t.Error("expected claims in context")
	}
}

func TestAuth_CaseInsensitiveBearerPrefix(t *testing.T) {
	t.Parallel()
	validator := successValidator("user:123", "test@example.com", "candidate")
	handler := &captureHandler{}

	req := newTestRequest("bearer valid-token")
	rr := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rr, req)

	if !handler.called {
		t.Error("handler should have been called for lowercase bearer")
	}
}

// ============================================================================
// OptionalAuth() Middleware Tests
// ============================================================================

func TestOptionalAuth_NoHeader_ContinuesAnonymously(t *testing.T) {
	t.Parallel()
	validator := successValidator("user:123", "test@example.com", "candidate")
	handler := &captureHandler{}

	req := newTestRequest("")
	rr := httptest.NewRecorder()

	OptionalAuth(validator)(handler).ServeHTTP(rr, req)

	if !handler.called {
		t.Fatal("handler should have been called")
	}
	if got := GetUserID(handler.ctx); got != "" {
		t.Errorf("expected no user ID, got %q", got)
	}
}

func TestOptionalAuth_InvalidToken_ContinuesAnonymously(t *testing.T) {
	t.Parallel()
	validator := errorValidator(jwt.ErrInvalidToken)
	handler := &captureHandler{}

	req := newTestRequest("Bearer garbage")
	rr := httptest.NewRecorder()

	OptionalAuth(validator)(handler).ServeHTTP(rr, req)

	if !handler.called {
		t.Fatal("handler should have been called")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if got := GetUserID(handler.ctx); got != "" {
		t.Errorf("expected no user ID, got %q", got)
	}
}

func TestOptionalAuth_ValidToken_SetsContextValues(t *testing.T) {
	t.Parallel()
	validator := successValidator("user:123", "test@example.com", "candidate")
	handler := &captureHandler{}

	req := newTestRequest("Bearer valid-token")
	rr := httptest.NewRecorder()

	OptionalAuth(validator)(handler).ServeHTTP(rr, req)

	if !handler.called {
		t.Fatal("handler should have been called")
	}
	if got := GetUserID(handler.ctx); got != "user:123" {
		t.Errorf("expected user ID user:123, got %q", got)
	}
	if got := GetUserRole(handler.ctx); got != model.UserRoleCandidate {
		t.Errorf("expected candidate role, got %q", got)
	}
}

// ============================================================================
// Context Accessor Tests
// ============================================================================

func TestGetUserID_EmptyContext_ReturnsEmpty(t *testing.T) {
	t.Parallel()
	if got := GetUserID(context.Background()); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestGetUserRole_EmptyContext_ReturnsEmpty(t *testing.T) {
	t.Parallel()
	if got := GetUserRole(context.Background()); got != "" {
		t.Errorf("expected empty role, got %q", got)
	}
}

func TestGetClaims_EmptyContext_ReturnsNil(t *testing.T) {
	t.Parallel()
	if got := GetClaims(context.Background()); got != nil {
		t.Errorf("expected nil claims, got %+v", got)
	}
}
