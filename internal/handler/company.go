package handler

import (
	"context"
	"net/http"

	"github.com/hirewire/api/internal/middleware"
	"github.com/hirewire/api/internal/model"
)

// CompanyService defines the company operations the handler depends on
type CompanyService interface {
	Create(ctx context.Context, ownerID string, role model.UserRole, req *model.CreateCompanyRequest) (*model.Company, error)
	GetByID(ctx context.Context, id string) (*model.Company, error)
	List(ctx context.Context, limit, offset int) ([]*model.Company, error)
	GetMine(ctx context.Context, ownerID string) (*model.Company, error)
	Update(ctx context.Context, userID, companyID string, req *model.UpdateCompanyRequest) (*model.Company, error)
	Delete(ctx context.Context, userID, companyID string) error
}

// CompanyHandler handles company endpoints
type CompanyHandler struct {
	companyService CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// Create handles POST /v1/companies
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	var req model.CreateCompanyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	company, err := h.companyService.Create(r.Context(), userID, role, &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create company"))
		return
	}

	WriteData(w, http.StatusCreated, company)
}

// Get handles GET /v1/companies/{companyId}
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	companyID := r.PathValue("companyId")

	company, err := h.companyService.GetByID(r.Context(), companyID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, company)
}

// List handles GET /v1/companies
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	companies, err := h.companyService.List(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	limit, offset = model.NormalizeListParams(limit, offset)
	WriteCollection(w, http.StatusOK, companies, &PaginationInfo{
		Limit:  limit,
		Offset: offset,
		Count:  len(companies),
	})
}

// Mine handles GET /v1/company
func (h *CompanyHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	company, err := h.companyService.GetMine(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, company)
}

// Update handles PATCH /v1/companies/{companyId}
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	companyID := r.PathValue("companyId")

	var req model.UpdateCompanyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	company, err := h.companyService.Update(r.Context(), userID, companyID, &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update company"))
		return
	}

	WriteData(w, http.StatusOK, company)
}

// Delete handles DELETE /v1/companies/{companyId}
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	companyID := r.PathValue("companyId")

	if err := h.companyService.Delete(r.Context(), userID, companyID); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "delete company"))
		return
	}

	WriteNoContent(w)
}
