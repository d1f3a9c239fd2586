package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hirewire/api/internal/model"
)

// UserService defines the user operations the handler depends on
type UserService interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context, role *model.UserRole, limit, offset int) ([]*model.User, error)
}

// UserHandler handles public user endpoints
type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Get handles GET /v1/users/{userId}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user)
}

// List handles GET /v1/users
// Query parameters:
//   - role: filter by role (optional)
//   - limit: max results (optional, default 20, max 100)
//   - offset: pagination offset (optional)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var role *model.UserRole
	if v := r.URL.Query().Get("role"); v != "" {
		if !model.ValidUserRole(v) {
			WriteError(w, model.NewValidationError([]model.FieldError{
				{Field: "role", Message: "role must be candidate or employer"},
			}))
			return
		}
		ur := model.UserRole(v)
		role = &ur
	}

	limit, offset := parsePagination(r)

	users, err := h.userService.List(r.Context(), role, limit, offset)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	limit, offset = model.NormalizeListParams(limit, offset)
	WriteCollection(w, http.StatusOK, users, &PaginationInfo{
		Limit:  limit,
		Offset: offset,
		Count:  len(users),
	})
}

// parsePagination reads limit/offset query parameters. Unparseable values
// fall back to defaults rather than failing the request.
func parsePagination(r *http.Request) (int, int) {
	limit, offset := 0, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}
