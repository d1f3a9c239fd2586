package service

import (
	"context"
	"errors"

	"github.com/hirewire/api/internal/database"
	"github.com/hirewire/api/internal/model"
)

// ApplicationRepository defines the interface for application storage
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	GetByID(ctx context.Context, id string) (*model.Application, error)
	GetByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*model.Application, error)
	ListByCandidate(ctx context.Context, candidateID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error)
	ListByJob(ctx context.Context, jobID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error)
	Update(ctx context.Context, id string, req *model.UpdateApplicationRequest, reviewerID string) error
	SoftDelete(ctx context.Context, id string) error
}

// ApplicationService handles job application operations
type ApplicationService struct {
	appRepo     ApplicationRepository
	jobRepo     JobRepository
	companyRepo CompanyRepository
	events      *EventHub
}

// ApplicationServiceConfig holds configuration for the application service
type ApplicationServiceConfig struct {
	AppRepo     ApplicationRepository
	JobRepo     JobRepository
	CompanyRepo CompanyRepository
	Events      *EventHub
}

// NewApplicationService creates a new application service
func NewApplicationService(cfg ApplicationServiceConfig) *ApplicationService {
	return &ApplicationService{
		appRepo:     cfg.AppRepo,
		jobRepo:     cfg.JobRepo,
		companyRepo: cfg.CompanyRepo,
		events:      cfg.Events,
	}
}

// Create submits an application to a published job. One live application per
// (job, candidate): the unique index decides the winner under concurrency,
// and the applications counter only moves for the winning insert.
func (s *ApplicationService) Create(ctx context.Context, userID string, role model.UserRole, req *model.CreateApplicationRequest) (*model.Application, error) {
	if role != model.UserRoleCandidate {
		return nil, ErrOnlyCandidatesApply
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil || !job.IsPublished() {
		return nil, ErrJobNotAvailable
	}

	// Friendly pre-check; the unique index is the real guard
	existing, err := s.appRepo.GetByJobAndCandidate(ctx, job.ID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	app := &model.Application{
		JobID:       job.ID,
		CandidateID: userID,
		CoverLetter: req.CoverLetter,
		Status:      model.ApplicationStatusPending,
		Resume:      req.Resume,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	if err := s.jobRepo.IncrementApplications(ctx, job.ID); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish(&Event{Type: EventApplicationCreated, Data: app})
	}
	return app, nil
}

// Get retrieves an application the caller is a party to: the applying
// candidate, or the employer owning the job's company.
func (s *ApplicationService) Get(ctx context.Context, userID string, role model.UserRole, id string) (*model.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	if err := s.authorizeParty(ctx, userID, role, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListMine retrieves the calling candidate's applications
func (s *ApplicationService) ListMine(ctx context.Context, userID string, role model.UserRole, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error) {
	if role != model.UserRoleCandidate {
		return nil, ErrOnlyCandidatesApply
	}

	limit, offset = model.NormalizeListParams(limit, offset)
	return s.appRepo.ListByCandidate(ctx, userID, status, limit, offset)
}

// ListForJob retrieves applications to a job owned by the calling employer
func (s *ApplicationService) ListForJob(ctx context.Context, userID string, role model.UserRole, jobID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error) {
	if role != model.UserRoleEmployer {
		return nil, ErrOnlyEmployersReview
	}

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
		return nil, ErrNotApplicationParty
	}

	limit, offset = model.NormalizeListParams(limit, offset)
	return s.appRepo.ListByJob(ctx, jobID, status, limit, offset)
}

// Update reviews an application. Setting a status stamps the reviewer and
// review time and announces the change.
func (s *ApplicationService) Update(ctx context.Context, userID string, role model.UserRole, id string, req *model.UpdateApplicationRequest) (*model.Application, error) {
	if role != model.UserRoleEmployer {
		return nil, ErrOnlyEmployersReview
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	if err := s.authorizeEmployer(ctx, userID, app); err != nil {
		return nil, err
	}

	if err := s.appRepo.Update(ctx, id, req, userID); err != nil {
		return nil, err
	}

	updated, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && s.events != nil {
		s.events.Publish(&Event{Type: EventApplicationStatusChanged, Data: updated})
	}
	return updated, nil
}

// Delete withdraws (candidate) or removes (owning employer) an application
func (s *ApplicationService) Delete(ctx context.Context, userID string, role model.UserRole, id string) error {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if app == nil {
		return ErrApplicationNotFound
	}

	if err := s.authorizeParty(ctx, userID, role, app); err != nil {
		return err
	}

	return s.appRepo.SoftDelete(ctx, id)
}

// authorizeParty allows the applying candidate, or the employer whose
// company owns the job.
func (s *ApplicationService) authorizeParty(ctx context.Context, userID string, role model.UserRole, app *model.Application) error {
	if role == model.UserRoleCandidate {
		if app.CandidateID != userID {
			return ErrNotApplicationParty
		}
		return nil
	}
	return s.authorizeEmployer(ctx, userID, app)
}

// authorizeEmployer verifies the caller owns the company behind the
// application's job. A broken ownership chain denies access.
func (s *ApplicationService) authorizeEmployer(ctx context.Context, userID string, app *model.Application) error {
	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrNotApplicationParty
	}

	company, err := s.companyRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		return err
	}
	if company == nil || company.OwnerID != userID {
		return ErrNotApplicationParty
	}
	return nil
}
