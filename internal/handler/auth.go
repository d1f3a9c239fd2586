package handler

import (
	"context"
	"net/http"

	"github.com/hirewire/api/internal/middleware"
	"github.com/hirewire/api/internal/model"
)

// AuthService defines the auth operations the handler depends on
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	Deactivate(ctx context.Context, userID string) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	result, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "register"))
		return
	}

	WriteData(w, http.StatusCreated, result)
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "login"))
		return
	}

	WriteData(w, http.StatusOK, result)
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user)
}

// Deactivate handles DELETE /v1/auth/me
func (h *AuthHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.authService.Deactivate(r.Context(), userID); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "deactivate account"))
		return
	}

	WriteNoContent(w)
}
