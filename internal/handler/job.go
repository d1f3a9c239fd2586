package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hirewire/api/internal/middleware"
	"github.com/hirewire/api/internal/model"
)

// JobService defines the job operations the handler depends on
type JobService interface {
	Create(ctx context.Context, userID string, role model.UserRole, req *model.CreateJobRequest) (*model.Job, error)
	Get(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error)
	ListMine(ctx context.Context, userID string, role model.UserRole, status *model.JobStatus, limit, offset int) ([]*model.Job, error)
	Update(ctx context.Context, userID, jobID string, req *model.UpdateJobRequest) (*model.Job, error)
	Publish(ctx context.Context, userID, jobID string) (*model.Job, error)
	Close(ctx context.Context, userID, jobID string) (*model.Job, error)
	Delete(ctx context.Context, userID, jobID string) error
}

// JobHandler handles job endpoints
type JobHandler struct {
	jobService JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// Create handles POST /v1/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	var req model.CreateJobRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	job, err := h.jobService.Create(r.Context(), userID, role, &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create job"))
		return
	}

	WriteData(w, http.StatusCreated, job)
}

// Get handles GET /v1/jobs/{jobId}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobId")

	job, err := h.jobService.Get(r.Context(), jobID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, job)
}

// List handles GET /v1/jobs
// Query parameters:
//   - category: exact match (optional)
//   - employment_type: exact match (optional)
//   - experience_level: exact match (optional)
//   - location: case-insensitive substring (optional)
//   - remote: true/false (optional)
//   - salary_min: minimum acceptable salary floor (optional)
//   - skills: required skill, can repeat (optional)
//   - search: case-insensitive substring on title or description (optional)
//   - limit, offset: pagination
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, fieldErrs := parseJobFilters(r)
	if len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	jobs, err := h.jobService.List(r.Context(), filters)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	limit, offset := model.NormalizeListParams(filters.Limit, filters.Offset)
	WriteCollection(w, http.StatusOK, jobs, &PaginationInfo{
		Limit:  limit,
		Offset: offset,
		Count:  len(jobs),
	})
}

// Mine handles GET /v1/company/jobs
func (h *JobHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	var status *model.JobStatus
	if v := r.URL.Query().Get("status"); v != "" {
		if !model.ValidJobStatus(v) {
			WriteError(w, model.NewValidationError([]model.FieldError{
				{Field: "status", Message: "status must be draft, published, or closed"},
			}))
			return
		}
		js := model.JobStatus(v)
		status = &js
	}

	limit, offset := parsePagination(r)

	jobs, err := h.jobService.ListMine(r.Context(), userID, role, status, limit, offset)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	limit, offset = model.NormalizeListParams(limit, offset)
	WriteCollection(w, http.StatusOK, jobs, &PaginationInfo{
		Limit:  limit,
		Offset: offset,
		Count:  len(jobs),
	})
}

// Update handles PATCH /v1/jobs/{jobId}
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	jobID := r.PathValue("jobId")

	var req model.UpdateJobRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	job, err := h.jobService.Update(r.Context(), userID, jobID, &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update job"))
		return
	}

	WriteData(w, http.StatusOK, job)
}

// Publish handles POST /v1/jobs/{jobId}/publish
func (h *JobHandler) Publish(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	jobID := r.PathValue("jobId")

	job, err := h.jobService.Publish(r.Context(), userID, jobID)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "publish job"))
		return
	}

	WriteData(w, http.StatusOK, job)
}

// Close handles POST /v1/jobs/{jobId}/close
func (h *JobHandler) Close(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	jobID := r.PathValue("jobId")

	job, err := h.jobService.Close(r.Context(), userID, jobID)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "close job"))
		return
	}

	WriteData(w, http.StatusOK, job)
}

// Delete handles DELETE /v1/jobs/{jobId}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	jobID := r.PathValue("jobId")

	if err := h.jobService.Delete(r.Context(), userID, jobID); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "delete job"))
		return
	}

	WriteNoContent(w)
}

// parseJobFilters builds search filters from query parameters
func parseJobFilters(r *http.Request) (*model.JobFilters, []model.FieldError) {
	q := r.URL.Query()
	filters := &model.JobFilters{}

	if v := q.Get("category"); v != "" {
		filters.Category = &v
	}
	if v := q.Get("employment_type"); v != "" {
		filters.EmploymentType = &v
	}
	if v := q.Get("experience_level"); v != "" {
		filters.ExperienceLevel = &v
	}
	if v := q.Get("location"); v != "" {
		filters.Location = &v
	}
	if v := q.Get("remote"); v != "" {
		remote := v == "true"
		filters.Remote = &remote
	}
	var fieldErrs []model.FieldError
	if v := q.Get("salary_min"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			fieldErrs = append(fieldErrs, model.FieldError{Field: "salary_min", Message: "must be a non-negative number"})
		} else {
			filters.SalaryMin = &f
		}
	}
	if skills := q["skills"]; len(skills) > 0 {
		filters.Skills = skills
	}
	if v := q.Get("search"); v != "" {
		filters.Search = &v
	}

	filters.Limit, filters.Offset = parsePagination(r)

	return filters, append(fieldErrs, filters.Validate()...)
}
