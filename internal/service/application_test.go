package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hirewire/api/internal/database"
	"github.com/hirewire/api/internal/model"
)

// ============================================================================
// Mock Repository
// ============================================================================

type mockApplicationRepo struct {
	createFunc               func(ctx context.Context, app *model.Application) error
	getByIDFunc              func(ctx context.Context, id string) (*model.Application, error)
	getByJobAndCandidateFunc func(ctx context.Context, jobID, candidateID string) (*model.Application, error)
	listByCandidateFunc      func(ctx context.Context, candidateID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error)
	listByJobFunc            func(ctx context.Context, jobID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error)
	updateFunc               func(ctx context.Context, id string, req *model.UpdateApplicationRequest, reviewerID string) error
	softDeleteFunc           func(ctx context.Context, id string) error
}

func (m *mockApplicationRepo) Create(ctx context.Context, app *model.Application) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, app)
	}
	app.ID = "application:1"
	return nil
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockApplicationRepo) GetByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*model.Application, error) {
	if m.getByJobAndCandidateFunc != nil {
		return m.getByJobAndCandidateFunc(ctx, jobID, candidateID)
	}
	return nil, nil
}

func (m *mockApplicationRepo) ListByCandidate(ctx context.Context, candidateID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error) {
	if m.listByCandidateFunc != nil {
		return m.listByCandidateFunc(ctx, candidateID, status, limit, offset)
	}
	return nil, nil
}

func (m *mockApplicationRepo) ListByJob(ctx context.Context, jobID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error) {
	if m.listByJobFunc != nil {
		return m.listByJobFunc(ctx, jobID, status, limit, offset)
	}
	return nil, nil
}

func (m *mockApplicationRepo) Update(ctx context.Context, id string, req *model.UpdateApplicationRequest, reviewerID string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req, reviewerID)
	}
	return nil
}

func (m *mockApplicationRepo) SoftDelete(ctx context.Context, id string) error {
	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(ctx, id)
	}
	return nil
}

// ============================================================================
// Test Helpers
// ============================================================================

func publishedJobRepo() *mockJobRepo {
	return &mockJobRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Job, error) {
			return &model.Job{ID: id, CompanyID: "company:1", Status: model.JobStatusPublished}, nil
		},
	}
}

func createApplicationRequest() *model.CreateApplicationRequest {
	return &model.CreateApplicationRequest{
		JobID:       "job:1",
		CoverLetter: "I have spent the last five years building and operating high throughput Go services and would love to do it here.",
	}
}

func pendingApplication() *model.Application {
	return &model.Application{
		ID:          "application:1",
		JobID:       "job:1",
		CandidateID: "user:cand",
		Status:      model.ApplicationStatusPending,
	}
}

// ============================================================================
// Create Tests
// ============================================================================

func TestApplicationCreate_Success(t *testing.T) {
	t.Parallel()
	hub := NewEventHub()
	defer hub.Close()
	sub := hub.Subscribe("sub:1", []EventType{EventApplicationCreated})

	counted := ""
	jobRepo := publishedJobRepo()
	jobRepo.incAppsFunc = func(ctx context.Context, id string) error {
		counted = id
		return nil
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo:     &mockApplicationRepo{},
		JobRepo:     jobRepo,
		CompanyRepo: &mockCompanyRepo{},
		Events:      hub,
	})

	app, err := svc.Create(context.Background(), "user:cand", model.UserRoleCandidate, createApplicationRequest())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if app.Status != model.ApplicationStatusPending {
		t.Errorf("new applications must start pending, got %q", app.Status)
	}
	if app.CandidateID != "user:cand" {
		t.Errorf("expected candidate user:cand, got %q", app.CandidateID)
	}
	if counted != "job:1" {
		t.Errorf("expected applications counter bumped for job:1, got %q", counted)
	}

	select {
	case ev := <-sub.Events:
		if ev.Type != EventApplicationCreated {
			t.Errorf("expected %q event, got %q", EventApplicationCreated, ev.Type)
		}
	default:
		t.Error("expected an application.created event to be published")
	}
}

func TestApplicationCreate_EmployerRole_ReturnsErrOnlyCandidatesApply(t *testing.T) {
	t.Parallel()
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo: &mockApplicationRepo{},
		JobRepo: publishedJobRepo(),
	})

	_, err := svc.Create(context.Background(), "user:emp", model.UserRoleEmployer, createApplicationRequest())

	if !errors.Is(err, ErrOnlyCandidatesApply) {
		t.Errorf("expected ErrOnlyCandidatesApply, got %v", err)
	}
}

func TestApplicationCreate_DraftJob_ReturnsErrJobNotAvailable(t *testing.T) {
	t.Parallel()
	jobRepo := &mockJobRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Job, error) {
			return &model.Job{ID: id, Status: model.JobStatusDraft}, nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo: &mockApplicationRepo{},
		JobRepo: jobRepo,
	})

	_, err := svc.Create(context.Background(), "user:cand", model.UserRoleCandidate, createApplicationRequest())

	if !errors.Is(err, ErrJobNotAvailable) {
		t.Errorf("expected ErrJobNotAvailable, got %v", err)
	}
}

func TestApplicationCreate_MissingJob_ReturnsErrJobNotAvailable(t *testing.T) {
	t.Parallel()
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo: &mockApplicationRepo{},
		JobRepo: &mockJobRepo{},
	})

	_, err := svc.Create(context.Background(), "user:cand", model.UserRoleCandidate, createApplicationRequest())

	if !errors.Is(err, ErrJobNotAvailable) {
		t.Errorf("expected ErrJobNotAvailable, got %v", err)
	}
}

func TestApplicationCreate_AlreadyApplied_PreCheck(t *testing.T) {
	t.Parallel()
	appRepo := &mockApplicationRepo{
		getByJobAndCandidateFunc: func(ctx context.Context, jobID, candidateID string) (*model.Application, error) {
			return pendingApplication(), nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo: appRepo,
		JobRepo: publishedJobRepo(),
	})

	_, err := svc.Create(context.Background(), "user:cand", model.UserRoleCandidate, createApplicationRequest())

	if !errors.Is(err, ErrAlreadyApplied) {
		t.Errorf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationCreate_AlreadyApplied_IndexRace(t *testing.T) {
	t.Parallel()
	// Pre-check sees nothing, insert loses to the unique index
	appRepo := &mockApplicationRepo{
		createFunc: func(ctx context.Context, app *model.Application) error {
			return fmt.Errorf("%w: already applied to this job", database.ErrDuplicate)
		},
	}
	counted := false
	jobRepo := publishedJobRepo()
	jobRepo.incAppsFunc = func(ctx context.Context, id string) error {
		counted = true
		return nil
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo: appRepo,
		JobRepo: jobRepo,
	})

	_, err := svc.Create(context.Background(), "user:cand", model.UserRoleCandidate, createApplicationRequest())

	if !errors.Is(err, ErrAlreadyApplied) {
		t.Errorf("expected ErrAlreadyApplied, got %v", err)
	}
	if counted {
		t.Error("losing insert must not bump the applications counter")
	}
}

// ============================================================================
// Get / List Tests
// ============================================================================

func TestApplicationGet_Candidate_OwnApplication(t *testing.T) {
	t.Parallel()
	appRepo := &mockApplicationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Application, error) {
			return pendingApplication(), nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo: appRepo,
		JobRepo: publishedJobRepo(),
	})

	app, err := svc.Get(context.Background(), "user:cand", model.UserRoleCandidate, "application:1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if app.ID != "application:1" {
		t.Errorf("expected application:1, got %q", app.ID)
	}
}

func TestApplicationGet_Candidate_OtherApplication_Denied(t *testing.T) {
	t.Parallel()
	appRepo := &mockApplicationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Application, error) {
			return pendingApplication(), nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo: appRepo,
		JobRepo: publishedJobRepo(),
	})

	_, err := svc.Get(context.Background(), "user:other", model.UserRoleCandidate, "application:1")

	if !errors.Is(err, ErrNotApplicationParty) {
		t.Errorf("expected ErrNotApplicationParty, got %v", err)
	}
}

func TestApplicationGet_Employer_OwnsJobCompany(t *testing.T) {
	t.Parallel()
	appRepo := &mockApplicationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Application, error) {
			return pendingApplication(), nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo:     appRepo,
		JobRepo:     publishedJobRepo(),
		CompanyRepo: ownedCompanyRepo("user:emp"),
	})

	_, err := svc.Get(context.Background(), "user:emp", model.UserRoleEmployer, "application:1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestApplicationGet_Employer_BrokenChain_Denied(t *testing.T) {
	t.Parallel()
	// The job behind the application is gone; employers cannot prove
	// ownership through a broken chain.
	appRepo := &mockApplicationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Application, error) {
			return pendingApplication(), nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo:     appRepo,
		JobRepo:     &mockJobRepo{},
		CompanyRepo: ownedCompanyRepo("user:emp"),
	})

	_, err := svc.Get(context.Background(), "user:emp", model.UserRoleEmployer, "application:1")

	if !errors.Is(err, ErrNotApplicationParty) {
		t.Errorf("expected ErrNotApplicationParty, got %v", err)
	}
}

func TestApplicationListMine_EmployerRole_ReturnsErrOnlyCandidatesApply(t *testing.T) {
	t.Parallel()
	svc := NewApplicationService(ApplicationServiceConfig{AppRepo: &mockApplicationRepo{}})

	_, err := svc.ListMine(context.Background(), "user:emp", model.UserRoleEmployer, nil, 0, 0)

	if !errors.Is(err, ErrOnlyCandidatesApply) {
		t.Errorf("expected ErrOnlyCandidatesApply, got %v", err)
	}
}

func TestApplicationListForJob_ForeignEmployer_Denied(t *testing.T) {
	t.Parallel()
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo:     &mockApplicationRepo{},
		JobRepo:     publishedJobRepo(),
		CompanyRepo: ownedCompanyRepo("user:other"),
	})

	_, err := svc.ListForJob(context.Background(), "user:emp", model.UserRoleEmployer, "job:1", nil, 0, 0)

	if !errors.Is(err, ErrNotApplicationParty) {
		t.Errorf("expected ErrNotApplicationParty, got %v", err)
	}
}

func TestApplicationListForJob_OwningEmployer_Succeeds(t *testing.T) {
	t.Parallel()
	appRepo := &mockApplicationRepo{
		listByJobFunc: func(ctx context.Context, jobID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error) {
			if limit != model.DefaultListLimit {
				t.Errorf("expected default limit %d, got %d", model.DefaultListLimit, limit)
			}
			return []*model.Application{pendingApplication()}, nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo:     appRepo,
		JobRepo:     publishedJobRepo(),
		CompanyRepo: ownedCompanyRepo("user:emp"),
	})

	apps, err := svc.ListForJob(context.Background(), "user:emp", model.UserRoleEmployer, "job:1", nil, 0, 0)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(apps) != 1 {
		t.Errorf("expected 1 application, got %d", len(apps))
	}
}

// ============================================================================
// Update Tests
// ============================================================================

func TestApplicationUpdate_StampsReviewerAndAnnounces(t *testing.T) {
	t.Parallel()
	hub := NewEventHub()
	defer hub.Close()
	sub := hub.Subscribe("sub:1", []EventType{EventApplicationStatusChanged})

	reviewer := ""
	appRepo := &mockApplicationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Application, error) {
			return pendingApplication(), nil
		},
		updateFunc: func(ctx context.Context, id string, req *model.UpdateApplicationRequest, reviewerID string) error {
			reviewer = reviewerID
			return nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo:     appRepo,
		JobRepo:     publishedJobRepo(),
		CompanyRepo: ownedCompanyRepo("user:emp"),
		Events:      hub,
	})

	status := string(model.ApplicationStatusInterview)
	_, err := svc.Update(context.Background(), "user:emp", model.UserRoleEmployer, "application:1", &model.UpdateApplicationRequest{Status: &status})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reviewer != "user:emp" {
		t.Errorf("expected reviewer user:emp, got %q", reviewer)
	}

	select {
	case ev := <-sub.Events:
		if ev.Type != EventApplicationStatusChanged {
			t.Errorf("expected %q event, got %q", EventApplicationStatusChanged, ev.Type)
		}
	default:
		t.Error("expected an application.status_changed event to be published")
	}
}

func TestApplicationUpdate_NotesOnly_NoAnnouncement(t *testing.T) {
	t.Parallel()
	hub := NewEventHub()
	defer hub.Close()
	sub := hub.Subscribe("sub:1", []EventType{EventApplicationStatusChanged})

	appRepo := &mockApplicationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Application, error) {
			return pendingApplication(), nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo:     appRepo,
		JobRepo:     publishedJobRepo(),
		CompanyRepo: ownedCompanyRepo("user:emp"),
		Events:      hub,
	})

	notes := "Strong portfolio, schedule a call"
	_, err := svc.Update(context.Background(), "user:emp", model.UserRoleEmployer, "application:1", &model.UpdateApplicationRequest{Notes: &notes})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	select {
	case ev := <-sub.Events:
		t.Errorf("expected no event for a notes-only update, got %q", ev.Type)
	default:
	}
}

func TestApplicationUpdate_CandidateRole_ReturnsErrOnlyEmployersReview(t *testing.T) {
	t.Parallel()
	svc := NewApplicationService(ApplicationServiceConfig{AppRepo: &mockApplicationRepo{}})

	status := string(model.ApplicationStatusRejected)
	_, err := svc.Update(context.Background(), "user:cand", model.UserRoleCandidate, "application:1", &model.UpdateApplicationRequest{Status: &status})

	if !errors.Is(err, ErrOnlyEmployersReview) {
		t.Errorf("expected ErrOnlyEmployersReview, got %v", err)
	}
}

func TestApplicationUpdate_ForeignEmployer_Denied(t *testing.T) {
	t.Parallel()
	appRepo := &mockApplicationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Application, error) {
			return pendingApplication(), nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo:     appRepo,
		JobRepo:     publishedJobRepo(),
		CompanyRepo: ownedCompanyRepo("user:other"),
	})

	status := string(model.ApplicationStatusAccepted)
	_, err := svc.Update(context.Background(), "user:emp", model.UserRoleEmployer, "application:1", &model.UpdateApplicationRequest{Status: &status})

	if !errors.Is(err, ErrNotApplicationParty) {
		t.Errorf("expected ErrNotApplicationParty, got %v", err)
	}
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestApplicationDelete_Candidate_Withdraws(t *testing.T) {
	t.Parallel()
	deleted := ""
	appRepo := &mockApplicationRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Application, error) {
			return pendingApplication(), nil
		},
		softDeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := NewApplicationService(ApplicationServiceConfig{
		AppRepo: appRepo,
		JobRepo: publishedJobRepo(),
	})

	err := svc.Delete(context.Background(), "user:cand", model.UserRoleCandidate, "application:1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleted != "application:1" {
		t.Errorf("expected application:1 soft-deleted, got %q", deleted)
	}
}

func TestApplicationDelete_Missing_ReturnsErrApplicationNotFound(t *testing.T) {
	t.Parallel()
	svc := NewApplicationService(ApplicationServiceConfig{AppRepo: &mockApplicationRepo{}})

	err := svc.Delete(context.Background(), "user:cand", model.UserRoleCandidate, "application:missing")

	if !errors.Is(err, ErrApplicationNotFound) {
		t.Errorf("expected ErrApplicationNotFound, got %v", err)
	}
}
