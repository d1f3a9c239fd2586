package handler

import (
	"context"
	"net/http"

	"github.com/hirewire/api/internal/middleware"
	"github.com/hirewire/api/internal/model"
)

// ApplicationService defines the application operations the handler depends on
type ApplicationService interface {
	Create(ctx context.Context, userID string, role model.UserRole, req *model.CreateApplicationRequest) (*model.Application, error)
	Get(ctx context.Context, userID string, role model.UserRole, id string) (*model.Application, error)
	ListMine(ctx context.Context, userID string, role model.UserRole, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error)
	ListForJob(ctx context.Context, userID string, role model.UserRole, jobID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error)
	Update(ctx context.Context, userID string, role model.UserRole, id string, req *model.UpdateApplicationRequest) (*model.Application, error)
	Delete(ctx context.Context, userID string, role model.UserRole, id string) error
}

// ApplicationHandler handles job application endpoints
type ApplicationHandler struct {
	appService ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(appService ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
	}
}

// Create handles POST /v1/applications
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	var req model.CreateApplicationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	app, err := h.appService.Create(r.Context(), userID, role, &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create application"))
		return
	}

	WriteData(w, http.StatusCreated, app)
}

// Get handles GET /v1/applications/{applicationId}
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())
	applicationID := r.PathValue("applicationId")

	app, err := h.appService.Get(r.Context(), userID, role, applicationID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, app)
}

// Mine handles GET /v1/profile/applications
func (h *ApplicationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	status, fieldErrs := parseApplicationStatus(r)
	if len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	limit, offset := parsePagination(r)

	apps, err := h.appService.ListMine(r.Context(), userID, role, status, limit, offset)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	limit, offset = model.NormalizeListParams(limit, offset)
	WriteCollection(w, http.StatusOK, apps, &PaginationInfo{
		Limit:  limit,
		Offset: offset,
		Count:  len(apps),
	})
}

// ListForJob handles GET /v1/jobs/{jobId}/applications
func (h *ApplicationHandler) ListForJob(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())
	jobID := r.PathValue("jobId")

	status, fieldErrs := parseApplicationStatus(r)
	if len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	limit, offset := parsePagination(r)

	apps, err := h.appService.ListForJob(r.Context(), userID, role, jobID, status, limit, offset)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	limit, offset = model.NormalizeListParams(limit, offset)
	WriteCollection(w, http.StatusOK, apps, &PaginationInfo{
		Limit:  limit,
		Offset: offset,
		Count:  len(apps),
	})
}

// Update handles PATCH /v1/applications/{applicationId}
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())
	applicationID := r.PathValue("applicationId")

	var req model.UpdateApplicationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	app, err := h.appService.Update(r.Context(), userID, role, applicationID, &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update application"))
		return
	}

	WriteData(w, http.StatusOK, app)
}

// Delete handles DELETE /v1/applications/{applicationId}
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())
	applicationID := r.PathValue("applicationId")

	if err := h.appService.Delete(r.Context(), userID, role, applicationID); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "withdraw application"))
		return
	}

	WriteNoContent(w)
}

// parseApplicationStatus reads the optional status query parameter
func parseApplicationStatus(r *http.Request) (*model.ApplicationStatus, []model.FieldError) {
	v := r.URL.Query().Get("status")
	if v == "" {
		return nil, nil
	}
	if !model.ValidApplicationStatus(v) {
		return nil, []model.FieldError{
			{Field: "status", Message: "status must be pending, reviewed, interview, rejected, or accepted"},
		}
	}
	as := model.ApplicationStatus(v)
	return &as, nil
}
