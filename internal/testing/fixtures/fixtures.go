// Package fixtures provides test data factories for e2e tests.
//
// Factories create records through the real repositories so unique
// indexes and soft-delete bookkeeping behave exactly as in production.
package fixtures

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hirewire/api/internal/database"
	"github.com/hirewire/api/internal/model"
	"github.com/hirewire/api/internal/repository"
)

// DefaultPassword is the plaintext behind every fixture account's hash.
const DefaultPassword = "fixture-password-1"

var fixtureCounter int64

// Factory creates test fixtures in the database
type Factory struct {
	db           database.Database
	users        *repository.UserRepository
	companies    *repository.CompanyRepository
	jobs         *repository.JobRepository
	applications *repository.ApplicationRepository
}

// New creates a fixture factory for the given database
func New(db database.Database) *Factory {
	return &Factory{
		db:           db,
		users:        repository.NewUserRepository(db),
		companies:    repository.NewCompanyRepository(db),
		jobs:         repository.NewJobRepository(db),
		applications: repository.NewApplicationRepository(db),
	}
}

// nextID returns a process-unique suffix for fixture fields that carry
// unique indexes, such as user emails.
func nextID() int64 {
	return atomic.AddInt64(&fixtureCounter, 1)
}

func (f *Factory) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// ============================================================================
// Users
// ============================================================================

// UserOpt customizes a fixture user before creation
type UserOpt func(*model.User)

// WithEmail sets the user's email
func WithEmail(email string) UserOpt {
	return func(u *model.User) {
		u.Email = email
	}
}

// WithName sets the user's first and last name
func WithName(first, last string) UserOpt {
	return func(u *model.User) {
		u.FirstName = first
		u.LastName = last
	}
}

// WithSkills sets the user's skill list
func WithSkills(skills ...string) UserOpt {
	return func(u *model.User) {
		u.Skills = skills
	}
}

// WithDeleted marks the fixture user as soft-deleted after creation
func WithDeleted() UserOpt {
	return func(u *model.User) {
		u.IsDeleted = true
	}
}

// CreateCandidate creates a candidate account with a bcrypt hash of
// DefaultPassword.
func (f *Factory) CreateCandidate(t *testing.T, opts ...UserOpt) *model.User {
	t.Helper()
	return f.createUser(t, model.UserRoleCandidate, opts...)
}

// CreateEmployer creates an employer account with a bcrypt hash of
// DefaultPassword.
func (f *Factory) CreateEmployer(t *testing.T, opts ...UserOpt) *model.User {
	t.Helper()
	return f.createUser(t, model.UserRoleEmployer, opts...)
}

func (f *Factory) createUser(t *testing.T, role model.UserRole, opts ...UserOpt) *model.User {
	t.Helper()

	n := nextID()
	// MinCost keeps fixture creation fast; these hashes never leave tests.
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}
	hash := string(hashBytes)

	user := &model.User{
		Email:     fmt.Sprintf("%s%d@fixtures.test", role, n),
		Hash:      &hash,
		FirstName: "Test",
		LastName:  fmt.Sprintf("User%d", n),
		Role:      role,
		Skills:    []string{},
	}
	for _, opt := range opts {
		opt(user)
	}

	ctx, cancel := f.ctx()
	defer cancel()

	wantDeleted := user.IsDeleted
	user.IsDeleted = false
	if err := f.users.Create(ctx, user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	if wantDeleted {
		if err := f.users.SoftDelete(ctx, user.ID); err != nil {
			t.Fatalf("fixtures: failed to soft-delete user: %v", err)
		}
		user.IsDeleted = true
	}

	return user
}

// ============================================================================
// Companies
// ============================================================================

// CompanyOpt customizes a fixture company before creation
type CompanyOpt func(*model.Company)

// WithCompanyName sets the company name
func WithCompanyName(name string) CompanyOpt {
	return func(c *model.Company) {
		c.Name = name
	}
}

// WithIndustry sets the company industry
func WithIndustry(industry string) CompanyOpt {
	return func(c *model.Company) {
		c.Industry = industry
	}
}

// CreateCompany creates a company owned by the given employer
func (f *Factory) CreateCompany(t *testing.T, owner *model.User, opts ...CompanyOpt) *model.Company {
	t.Helper()

	n := nextID()
	company := &model.Company{
		Name:        fmt.Sprintf("Fixture Co %d", n),
		Description: "A company created for testing purposes.",
		Industry:    "technology",
		Size:        model.CompanySizeSmall,
		Location:    "Remote",
		OwnerID:     owner.ID,
		Employees:   []string{},
	}
	for _, opt := range opts {
		opt(company)
	}

	ctx, cancel := f.ctx()
	defer cancel()

	if err := f.companies.Create(ctx, company); err != nil {
		t.Fatalf("fixtures: failed to create company: %v", err)
	}

	return company
}

// ============================================================================
// Jobs
// ============================================================================

// JobOpt customizes a fixture job before creation
type JobOpt func(*model.Job)

// WithStatus sets the job status
func WithStatus(status model.JobStatus) JobOpt {
	return func(j *model.Job) {
		j.Status = status
	}
}

// WithTitle sets the job title
func WithTitle(title string) JobOpt {
	return func(j *model.Job) {
		j.Title = title
	}
}

// WithCategory sets the job category
func WithCategory(category string) JobOpt {
	return func(j *model.Job) {
		j.Category = category
	}
}

// WithSalaryRange sets the salary bounds
func WithSalaryRange(min, max float64) JobOpt {
	return func(j *model.Job) {
		j.SalaryMin = &min
		j.SalaryMax = &max
	}
}

// WithRemote marks the job as remote
func WithRemote() JobOpt {
	return func(j *model.Job) {
		j.Remote = true
	}
}

// WithJobSkills sets the job's required skills
func WithJobSkills(skills ...string) JobOpt {
	return func(j *model.Job) {
		j.Skills = skills
	}
}

// CreateJob creates a draft job for the given company. Use
// WithStatus(model.JobStatusPublished) for a job candidates can apply to.
func (f *Factory) CreateJob(t *testing.T, company *model.Company, opts ...JobOpt) *model.Job {
	t.Helper()

	n := nextID()
	job := &model.Job{
		Title:           fmt.Sprintf("Software Engineer %d", n),
		Description:     "Build and maintain backend services for the hiring platform.",
		Requirements:    []string{"3+ years of backend experience"},
		Currency:        "USD",
		EmploymentType:  model.EmploymentFullTime,
		Location:        "Remote",
		Status:          model.JobStatusDraft,
		CompanyID:       company.ID,
		Category:        "engineering",
		ExperienceLevel: model.ExperienceMiddle,
		Skills:          []string{"go"},
	}
	for _, opt := range opts {
		opt(job)
	}

	ctx, cancel := f.ctx()
	defer cancel()

	if err := f.jobs.Create(ctx, job); err != nil {
		t.Fatalf("fixtures: failed to create job: %v", err)
	}

	return job
}

// CreatePublishedJob creates a job candidates can apply to
func (f *Factory) CreatePublishedJob(t *testing.T, company *model.Company, opts ...JobOpt) *model.Job {
	t.Helper()
	opts = append([]JobOpt{WithStatus(model.JobStatusPublished)}, opts...)
	return f.CreateJob(t, company, opts...)
}

// ============================================================================
// Applications
// ============================================================================

// ApplicationOpt customizes a fixture application before creation
type ApplicationOpt func(*model.Application)

// WithApplicationStatus sets the application status
func WithApplicationStatus(status model.ApplicationStatus) ApplicationOpt {
	return func(a *model.Application) {
		a.Status = status
	}
}

// WithCoverLetter sets the cover letter text
func WithCoverLetter(text string) ApplicationOpt {
	return func(a *model.Application) {
		a.CoverLetter = text
	}
}

// CreateApplication creates an application from the candidate to the job
// and bumps the job's application counter, mirroring the production path.
func (f *Factory) CreateApplication(t *testing.T, job *model.Job, candidate *model.User, opts ...ApplicationOpt) *model.Application {
	t.Helper()

	app := &model.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		CoverLetter: "I am excited to apply for this position and believe my experience is a strong match.",
		Status:      model.ApplicationStatusPending,
	}
	for _, opt := range opts {
		opt(app)
	}

	ctx, cancel := f.ctx()
	defer cancel()

	if err := f.applications.Create(ctx, app); err != nil {
		t.Fatalf("fixtures: failed to create application: %v", err)
	}
	if err := f.jobs.IncrementApplications(ctx, job.ID); err != nil {
		t.Fatalf("fixtures: failed to bump application counter: %v", err)
	}

	return app
}
