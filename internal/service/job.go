package service

import (
	"context"

	"github.com/hirewire/api/internal/model"
)

// JobRepository defines the interface for job storage
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error)
	ListByCompany(ctx context.Context, companyID string, status *model.JobStatus, limit, offset int) ([]*model.Job, error)
	Update(ctx context.Context, id string, req *model.UpdateJobRequest) error
	SetStatus(ctx context.Context, id string, status model.JobStatus) error
	IncrementViews(ctx context.Context, id string) error
	IncrementApplications(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
}

// JobService handles job posting operations
type JobService struct {
	jobRepo     JobRepository
	companyRepo CompanyRepository
	events      *EventHub
}

// JobServiceConfig holds configuration for the job service
type JobServiceConfig struct {
	JobRepo     JobRepository
	CompanyRepo CompanyRepository
	Events      *EventHub
}

// NewJobService creates a new job service
func NewJobService(cfg JobServiceConfig) *JobService {
	return &JobService{
		jobRepo:     cfg.JobRepo,
		companyRepo: cfg.CompanyRepo,
		events:      cfg.Events,
	}
}

// Create posts a new job as a draft. The caller must be an employer with a
// live company.
func (s *JobService) Create(ctx context.Context, userID string, role model.UserRole, req *model.CreateJobRequest) (*model.Job, error) {
	if role != model.UserRoleEmployer {
		return nil, ErrOnlyEmployersPost
	}

	company, err := s.companyRepo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyRequired
	}

	currency := "USD"
	if req.Currency != nil && *req.Currency != "" {
		currency = *req.Currency
	}

	job := &model.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Currency:        currency,
		EmploymentType:  model.EmploymentType(req.EmploymentType),
		Location:        req.Location,
		Remote:          req.Remote,
		Status:          model.JobStatusDraft,
		CompanyID:       company.ID,
		Category:        req.Category,
		ExperienceLevel: model.ExperienceLevel(req.ExperienceLevel),
		Skills:          req.Skills,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Get retrieves a live job in any status and counts the view. Every fetch
// increments views_count, drafts included.
func (s *JobService) Get(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if err := s.jobRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	job.ViewsCount++

	return job, nil
}

// List retrieves published jobs matching the filters
func (s *JobService) List(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error) {
	return s.jobRepo.List(ctx, filters)
}

// ListMine retrieves the calling employer's jobs in any status
func (s *JobService) ListMine(ctx context.Context, userID string, role model.UserRole, status *model.JobStatus, limit, offset int) ([]*model.Job, error) {
	if role != model.UserRoleEmployer {
		return nil, ErrOnlyEmployersPost
	}

	company, err := s.companyRepo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		// No company yet means no jobs, not an error
		return []*model.Job{}, nil
	}

	limit, offset = model.NormalizeListParams(limit, offset)
	return s.jobRepo.ListByCompany(ctx, company.ID, status, limit, offset)
}

// Update applies a partial update to a job owned by the caller's company
func (s *JobService) Update(ctx context.Context, userID, jobID string, req *model.UpdateJobRequest) (*model.Job, error) {
	if _, err := s.authorizeOwner(ctx, userID, jobID); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, req); err != nil {
		return nil, err
	}
	return s.jobRepo.GetByID(ctx, jobID)
}

// Publish moves a job to published and announces it. Re-publishing an
// already published job is allowed and announces it again.
func (s *JobService) Publish(ctx context.Context, userID, jobID string) (*model.Job, error) {
	if _, err := s.authorizeOwner(ctx, userID, jobID); err != nil {
		return nil, err
	}

	if err := s.jobRepo.SetStatus(ctx, jobID, model.JobStatusPublished); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish(&Event{Type: EventJobCreated, Data: job})
	}
	return job, nil
}

// Close moves a job to closed, stopping new applications
func (s *JobService) Close(ctx context.Context, userID, jobID string) (*model.Job, error) {
	if _, err := s.authorizeOwner(ctx, userID, jobID); err != nil {
		return nil, err
	}

	if err := s.jobRepo.SetStatus(ctx, jobID, model.JobStatusClosed); err != nil {
		return nil, err
	}
	return s.jobRepo.GetByID(ctx, jobID)
}

// Delete soft-deletes a job owned by the caller's company
func (s *JobService) Delete(ctx context.Context, userID, jobID string) error {
	if _, err := s.authorizeOwner(ctx, userID, jobID); err != nil {
		return err
	}
	return s.jobRepo.SoftDelete(ctx, jobID)
}

// authorizeOwner loads a job and verifies the caller owns the company that
// posted it.
func (s *JobService) authorizeOwner(ctx context.Context, userID, jobID string) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	company, err := s.companyRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.OwnerID != userID {
		return nil, ErrNotJobOwner
	}

	return job, nil
}
