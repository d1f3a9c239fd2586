package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirewire/api/internal/database"
	"github.com/hirewire/api/internal/model"
)

// CompanyRepository handles company data access
type CompanyRepository struct {
	db database.Database
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db database.Database) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company. The unique index on (owner, is_deleted)
// rejects a second live company for the same owner.
func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	query := `
		CREATE company CONTENT {
			name: $name,
			description: $description,
			website: IF $website IS NOT NULL THEN $website ELSE NONE END,
			logo: IF $logo IS NOT NULL THEN $logo ELSE NONE END,
			industry: $industry,
			size: $size,
			location: $location,
			founded_year: IF $founded_year IS NOT NULL THEN $founded_year ELSE NONE END,
			owner: type::record($owner),
			employees: $employees,
			is_deleted: false,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	employees := company.Employees
	if employees == nil {
		employees = []string{}
	}

	vars := map[string]interface{}{
		"name":         company.Name,
		"description":  company.Description,
		"website":      ptrToNone(company.Website),
		"logo":         ptrToNone(company.Logo),
		"industry":     company.Industry,
		"size":         company.Size,
		"location":     company.Location,
		"founded_year": company.FoundedYear,
		"owner":        company.OwnerID,
		"employees":    employees,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: owner already has a company", database.ErrDuplicate)
		}
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	company.ID = created.ID
	company.CreatedOn = created.CreatedOn
	company.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a live company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*model.Company, error) {
	query := `SELECT * FROM type::record($id) WHERE is_deleted = false`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, ok := unwrapRow(result)
	if !ok {
		return nil, nil
	}
	return parseCompanyRow(row), nil
}

// GetByOwner retrieves the live company owned by a user
func (r *CompanyRepository) GetByOwner(ctx context.Context, ownerID string) (*model.Company, error) {
	query := `SELECT * FROM company WHERE owner = type::record($owner) AND is_deleted = false LIMIT 1`
	vars := map[string]interface{}{"owner": ownerID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, ok := unwrapRow(result)
	if !ok {
		return nil, nil
	}
	return parseCompanyRow(row), nil
}

// List retrieves live companies, newest first
func (r *CompanyRepository) List(ctx context.Context, limit, offset int) ([]*model.Company, error) {
	query := `
		SELECT * FROM company WHERE is_deleted = false
		ORDER BY created_on DESC LIMIT $limit START $offset
	`
	vars := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	companies := make([]*model.Company, 0)
	for _, row := range unwrapRows(result) {
		companies = append(companies, parseCompanyRow(row))
	}
	return companies, nil
}

// Update applies a partial update to a company
func (r *CompanyRepository) Update(ctx context.Context, id string, req *model.UpdateCompanyRequest) error {
	query := `UPDATE type::record($id) SET updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	if req.Name != nil {
		query += `, name = $name`
		vars["name"] = *req.Name
	}
	if req.Description != nil {
		query += `, description = $description`
		vars["description"] = *req.Description
	}
	if req.Website != nil {
		query += `, website = $website`
		vars["website"] = *req.Website
	}
	if req.Logo != nil {
		query += `, logo = $logo`
		vars["logo"] = *req.Logo
	}
	if req.Industry != nil {
		query += `, industry = $industry`
		vars["industry"] = *req.Industry
	}
	if req.Size != nil {
		query += `, size = $size`
		vars["size"] = *req.Size
	}
	if req.Location != nil {
		query += `, location = $location`
		vars["location"] = *req.Location
	}
	if req.FoundedYear != nil {
		query += `, founded_year = $founded_year`
		vars["founded_year"] = *req.FoundedYear
	}

	return r.db.Execute(ctx, query, vars)
}

// SoftDelete marks a company as deleted
func (r *CompanyRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET is_deleted = true, updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

func parseCompanyRow(row map[string]interface{}) *model.Company {
	return &model.Company{
		ID:          getIDString(row, "id"),
		Name:        getString(row, "name"),
		Description: getString(row, "description"),
		Website:     getStringPtr(row, "website"),
		Logo:        getStringPtr(row, "logo"),
		Industry:    getString(row, "industry"),
		Size:        model.CompanySize(getString(row, "size")),
		Location:    getString(row, "location"),
		FoundedYear: getIntPtr(row, "founded_year"),
		OwnerID:     getIDString(row, "owner"),
		Employees:   getIDSlice(row, "employees"),
		IsDeleted:   getBool(row, "is_deleted"),
		CreatedOn:   getTimeValue(row, "created_on"),
		UpdatedOn:   getTimeValue(row, "updated_on"),
	}
}
