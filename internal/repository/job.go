package repository

import (
	"context"
	"errors"

	"github.com/hirewire/api/internal/database"
	"github.com/hirewire/api/internal/model"
)

// JobRepository handles job data access
type JobRepository struct {
	db database.Database
}

// NewJobRepository creates a new job repository
func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job posting
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `
		CREATE job CONTENT {
			title: $title,
			description: $description,
			requirements: $requirements,
			salary_min: IF $salary_min IS NOT NULL THEN $salary_min ELSE NONE END,
			salary_max: IF $salary_max IS NOT NULL THEN $salary_max ELSE NONE END,
			currency: $currency,
			employment_type: $employment_type,
			location: $location,
			remote: $remote,
			status: $status,
			company: type::record($company),
			category: $category,
			experience_level: $experience_level,
			skills: $skills,
			applications_count: 0,
			views_count: 0,
			is_deleted: false,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	skills := job.Skills
	if skills == nil {
		skills = []string{}
	}

	vars := map[string]interface{}{
		"title":            job.Title,
		"description":      job.Description,
		"requirements":     job.Requirements,
		"salary_min":       job.SalaryMin,
		"salary_max":       job.SalaryMax,
		"currency":         job.Currency,
		"employment_type":  job.EmploymentType,
		"location":         job.Location,
		"remote":           job.Remote,
		"status":           job.Status,
		"company":          job.CompanyID,
		"category":         job.Category,
		"experience_level": job.ExperienceLevel,
		"skills":           skills,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	job.ID = created.ID
	job.CreatedOn = created.CreatedOn
	job.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a live job by ID, regardless of status
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
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
	return parseJobRow(row), nil
}

// List retrieves published, live jobs matching the filters, newest first.
// Each optional filter contributes an independent AND clause; the salary and
// search filters are parenthesised OR-groups so they compose with the rest.
func (r *JobRepository) List(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error) {
	query := `
		SELECT * FROM job
		WHERE is_deleted = false AND status = "published"
	`
	limit, offset := model.NormalizeListParams(0, 0)
	vars := map[string]interface{}{}

	if filters != nil {
		limit, offset = model.NormalizeListParams(filters.Limit, filters.Offset)

		if filters.Category != nil {
			query += ` AND category = $category`
			vars["category"] = *filters.Category
		}
		if filters.EmploymentType != nil {
			query += ` AND employment_type = $employment_type`
			vars["employment_type"] = *filters.EmploymentType
		}
		if filters.ExperienceLevel != nil {
			query += ` AND experience_level = $experience_level`
			vars["experience_level"] = *filters.ExperienceLevel
		}
		if filters.Remote != nil {
			query += ` AND remote = $remote`
			vars["remote"] = *filters.Remote
		}
		if filters.Location != nil {
			query += ` AND string::lowercase(location) CONTAINS string::lowercase($location)`
			vars["location"] = *filters.Location
		}
		if filters.SalaryMin != nil {
			query += ` AND (salary_min >= $salary_floor OR salary_max >= $salary_floor)`
			vars["salary_floor"] = *filters.SalaryMin
		}
		if len(filters.Skills) > 0 {
			query += ` AND skills CONTAINSANY $skills`
			vars["skills"] = filters.Skills
		}
		if filters.Search != nil {
			query += ` AND (string::lowercase(title) CONTAINS string::lowercase($search)
				OR string::lowercase(description) CONTAINS string::lowercase($search))`
			vars["search"] = *filters.Search
		}
	}

	query += ` ORDER BY created_on DESC LIMIT $limit START $offset`
	vars["limit"] = limit
	vars["offset"] = offset

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	jobs := make([]*model.Job, 0)
	for _, row := range unwrapRows(result) {
		jobs = append(jobs, parseJobRow(row))
	}
	return jobs, nil
}

// ListByCompany retrieves a company's live jobs in any status, optionally
// narrowed to one status, newest first.
func (r *JobRepository) ListByCompany(ctx context.Context, companyID string, status *model.JobStatus, limit, offset int) ([]*model.Job, error) {
	query := `SELECT * FROM job WHERE company = type::record($company) AND is_deleted = false`
	vars := map[string]interface{}{
		"company": companyID,
		"limit":   limit,
		"offset":  offset,
	}

	if status != nil {
		query += ` AND status = $status`
		vars["status"] = *status
	}

	query += ` ORDER BY created_on DESC LIMIT $limit START $offset`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	jobs := make([]*model.Job, 0)
	for _, row := range unwrapRows(result) {
		jobs = append(jobs, parseJobRow(row))
	}
	return jobs, nil
}

// Update applies a partial update to a job
func (r *JobRepository) Update(ctx context.Context, id string, req *model.UpdateJobRequest) error {
	query := `UPDATE type::record($id) SET updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	if req.Title != nil {
		query += `, title = $title`
		vars["title"] = *req.Title
	}
	if req.Description != nil {
		query += `, description = $description`
		vars["description"] = *req.Description
	}
	if req.Requirements != nil {
		query += `, requirements = $requirements`
		vars["requirements"] = req.Requirements
	}
	if req.SalaryMin != nil {
		query += `, salary_min = $salary_min`
		vars["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		query += `, salary_max = $salary_max`
		vars["salary_max"] = *req.SalaryMax
	}
	if req.Currency != nil {
		query += `, currency = $currency`
		vars["currency"] = *req.Currency
	}
	if req.EmploymentType != nil {
		query += `, employment_type = $employment_type`
		vars["employment_type"] = *req.EmploymentType
	}
	if req.Location != nil {
		query += `, location = $location`
		vars["location"] = *req.Location
	}
	if req.Remote != nil {
		query += `, remote = $remote`
		vars["remote"] = *req.Remote
	}
	if req.Status != nil {
		query += `, status = $status`
		vars["status"] = *req.Status
	}
	if req.Category != nil {
		query += `, category = $category`
		vars["category"] = *req.Category
	}
	if req.ExperienceLevel != nil {
		query += `, experience_level = $experience_level`
		vars["experience_level"] = *req.ExperienceLevel
	}
	if req.Skills != nil {
		query += `, skills = $skills`
		vars["skills"] = req.Skills
	}

	return r.db.Execute(ctx, query, vars)
}

// SetStatus moves a job to the given lifecycle status
func (r *JobRepository) SetStatus(ctx context.Context, id string, status model.JobStatus) error {
	query := `UPDATE type::record($id) SET status = $status, updated_on = time::now()`
	vars := map[string]interface{}{
		"id":     id,
		"status": status,
	}

	return r.db.Execute(ctx, query, vars)
}

// IncrementViews bumps the view counter atomically
func (r *JobRepository) IncrementViews(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET views_count += 1`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// IncrementApplications bumps the application counter atomically
func (r *JobRepository) IncrementApplications(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET applications_count += 1`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// SoftDelete marks a job as deleted
func (r *JobRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET is_deleted = true, updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

func parseJobRow(row map[string]interface{}) *model.Job {
	skills := getStringSlice(row, "skills")
	if skills == nil {
		skills = []string{}
	}
	requirements := getStringSlice(row, "requirements")
	if requirements == nil {
		requirements = []string{}
	}

	return &model.Job{
		ID:                getIDString(row, "id"),
		Title:             getString(row, "title"),
		Description:       getString(row, "description"),
		Requirements:      requirements,
		SalaryMin:         getFloatPtr(row, "salary_min"),
		SalaryMax:         getFloatPtr(row, "salary_max"),
		Currency:          getString(row, "currency"),
		EmploymentType:    model.EmploymentType(getString(row, "employment_type")),
		Location:          getString(row, "location"),
		Remote:            getBool(row, "remote"),
		Status:            model.JobStatus(getString(row, "status")),
		CompanyID:         getIDString(row, "company"),
		Category:          getString(row, "category"),
		ExperienceLevel:   model.ExperienceLevel(getString(row, "experience_level")),
		Skills:            skills,
		ApplicationsCount: getInt(row, "applications_count"),
		ViewsCount:        getInt(row, "views_count"),
		IsDeleted:         getBool(row, "is_deleted"),
		CreatedOn:         getTimeValue(row, "created_on"),
		UpdatedOn:         getTimeValue(row, "updated_on"),
	}
}
