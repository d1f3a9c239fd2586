package service

import (
	"context"
	"errors"

	"github.com/hirewire/api/internal/database"
	"github.com/hirewire/api/internal/model"
)

// CompanyRepository defines the interface for company storage
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id string) (*model.Company, error)
	GetByOwner(ctx context.Context, ownerID string) (*model.Company, error)
	List(ctx context.Context, limit, offset int) ([]*model.Company, error)
	Update(ctx context.Context, id string, req *model.UpdateCompanyRequest) error
	SoftDelete(ctx context.Context, id string) error
}

// CompanyService handles company operations
type CompanyService struct {
	companyRepo CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// Create creates a company owned by the calling employer. One live company
// per owner: a soft-deleted company does not count.
func (s *CompanyService) Create(ctx context.Context, ownerID string, role model.UserRole, req *model.CreateCompanyRequest) (*model.Company, error) {
	if role != model.UserRoleEmployer {
		return nil, ErrOnlyEmployersOwnCompany
	}

	// Friendly pre-check; the unique index is the real guard
	existing, err := s.companyRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCompanyExists
	}

	company := &model.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Logo:        req.Logo,
		Industry:    req.Industry,
		Size:        model.CompanySize(req.Size),
		Location:    req.Location,
		FoundedYear: req.FoundedYear,
		OwnerID:     ownerID,
		Employees:   []string{},
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrCompanyExists
		}
		return nil, err
	}
	return company, nil
}

// GetByID retrieves a live company
func (s *CompanyService) GetByID(ctx context.Context, id string) (*model.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// List retrieves live companies, newest first
func (s *CompanyService) List(ctx context.Context, limit, offset int) ([]*model.Company, error) {
	limit, offset = model.NormalizeListParams(limit, offset)
	return s.companyRepo.List(ctx, limit, offset)
}

// GetMine retrieves the calling employer's company
func (s *CompanyService) GetMine(ctx context.Context, ownerID string) (*model.Company, error) {
	company, err := s.companyRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// Update applies a partial update to a company owned by the caller
func (s *CompanyService) Update(ctx context.Context, userID, companyID string, req *model.UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	if company.OwnerID != userID {
		return nil, ErrNotCompanyOwner
	}

	if err := s.companyRepo.Update(ctx, companyID, req); err != nil {
		return nil, err
	}
	return s.companyRepo.GetByID(ctx, companyID)
}

// Delete soft-deletes a company owned by the caller
func (s *CompanyService) Delete(ctx context.Context, userID, companyID string) error {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}
	if company.OwnerID != userID {
		return ErrNotCompanyOwner
	}

	return s.companyRepo.SoftDelete(ctx, companyID)
}
