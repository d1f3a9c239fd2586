// Package tests contains end-to-end acceptance tests for the HireWire API.
package tests

import (
	"context"
	"sync"
	"testing"

	"github.com/hirewire/api/internal/model"
	"github.com/hirewire/api/internal/repository"
	"github.com/hirewire/api/internal/service"
	"github.com/hirewire/api/internal/testing/fixtures"
	"github.com/hirewire/api/internal/testing/helpers"
	"github.com/hirewire/api/internal/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Job Applications
DOMAIN: Applications

ACCEPTANCE CRITERIA:
===================

AC-APPL-001: Candidate Applies to a Published Job
  GIVEN a candidate and a published job
  WHEN the candidate applies with a cover letter
  THEN the application is created as pending
  AND the job's applications counter advances
  AND an application.created event is delivered

AC-APPL-002: One Application per Candidate per Job
  GIVEN a candidate who already applied to a job
  WHEN they apply again, even concurrently
  THEN exactly one application wins
  AND the counter reflects only the winner

AC-APPL-003: Unavailable Jobs Reject Applications
  GIVEN a draft job and a deleted job
  WHEN a candidate applies to either
  THEN the request fails as if the job did not exist

AC-APPL-004: Application Visibility
  GIVEN an application from candidate A to employer B's job
  WHEN candidate C or employer D tries to read it
  THEN access is denied
  AND A and B can both read it

AC-APPL-005: Employer Reviews an Application
  GIVEN a pending application on an employer's job
  WHEN the employer changes its status
  THEN the reviewer and review time are recorded
  AND an application.status_changed event is delivered

AC-APPL-006: Candidate Withdraws
  GIVEN a candidate's pending application
  WHEN the candidate withdraws it
  THEN it disappears from listings
  AND the candidate may apply to the job again
*/

// newApplicationService wires an ApplicationService and its event hub
// against the test database
func newApplicationService(tdb *testdb.TestDB) (*service.ApplicationService, *service.EventHub) {
	hub := service.NewEventHub()
	svc := service.NewApplicationService(service.ApplicationServiceConfig{
		AppRepo:     repository.NewApplicationRepository(tdb.DB),
		JobRepo:     repository.NewJobRepository(tdb.DB),
		CompanyRepo: repository.NewCompanyRepository(tdb.DB),
		Events:      hub,
	})
	return svc, hub
}

func TestApplications_CandidateApplies(t *testing.T) {
	// AC-APPL-001: Candidate Applies to a Published Job
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	appService, hub := newApplicationService(tdb)
	defer hub.Close()
	ctx := context.Background()

	employer := f.CreateEmployer(t)
	company := f.CreateCompany(t, employer)
	job := f.CreatePublishedJob(t, company)
	candidate := f.CreateCandidate(t)

	topics := []service.EventType{service.EventApplicationCreated}
	sub := hub.Subscribe("sub-apply", topics)
	defer hub.Unsubscribe(sub.ID, topics)

	app, err := appService.Create(ctx, candidate.ID, candidate.Role, &model.CreateApplicationRequest{
		JobID:       job.ID,
		CoverLetter: "I have five years of Go experience and would love to join your team.",
	})

	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusPending, app.Status)
	assert.Equal(t, candidate.ID, app.CandidateID)
	assert.Equal(t, job.ID, app.JobID)

	events := drainEvents(sub)
	require.Len(t, events, 1)
	assert.Equal(t, service.EventApplicationCreated, events[0].Type)

	// The job's counter moved for the winning insert
	jobRepo := repository.NewJobRepository(tdb.DB)
	refetched, err := jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ApplicationsCount+1, refetched.ApplicationsCount)

	helpers.AssertRecordExists(t, tdb.DB, "application", app.ID)
}

func TestApplications_OneApplicationPerJob(t *testing.T) {
	// AC-APPL-002: One Application per Candidate per Job
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	appService, hub := newApplicationService(tdb)
	defer hub.Close()
	ctx := context.Background()

	employer := f.CreateEmployer(t)
	company := f.CreateCompany(t, employer)
	job := f.CreatePublishedJob(t, company)
	candidate := f.CreateCandidate(t)

	req := &model.CreateApplicationRequest{
		JobID:       job.ID,
		CoverLetter: "Applying twice should not be possible, no matter how fast I click.",
	}

	// Fire both attempts concurrently; the unique index picks the winner
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = appService.Create(ctx, candidate.ID, candidate.Role, req)
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, service.ErrAlreadyApplied)
			conflicts++
		}
	}
	assert.Equal(t, 1, wins, "exactly one application should win")
	assert.Equal(t, 1, conflicts, "the loser should see a conflict")

	// Only the winner moved the counter
	jobRepo := repository.NewJobRepository(tdb.DB)
	refetched, err := jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ApplicationsCount+1, refetched.ApplicationsCount)
}

func TestApplications_UnavailableJobsReject(t *testing.T) {
	// AC-APPL-003: Unavailable Jobs Reject Applications
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	appService, hub := newApplicationService(tdb)
	defer hub.Close()
	ctx := context.Background()

	employer := f.CreateEmployer(t)
	company := f.CreateCompany(t, employer)
	draft := f.CreateJob(t, company)
	deleted := f.CreatePublishedJob(t, company)
	candidate := f.CreateCandidate(t)

	jobRepo := repository.NewJobRepository(tdb.DB)
	require.NoError(t, jobRepo.SoftDelete(ctx, deleted.ID))

	for _, jobID := range []string{draft.ID, deleted.ID} {
		_, err := appService.Create(ctx, candidate.ID, candidate.Role, &model.CreateApplicationRequest{
			JobID:       jobID,
			CoverLetter: "This application should bounce off an unavailable job posting.",
		})
		require.ErrorIs(t, err, service.ErrJobNotAvailable)
	}
}

func TestApplications_Visibility(t *testing.T) {
	// AC-APPL-004: Application Visibility
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	appService, hub := newApplicationService(tdb)
	defer hub.Close()
	ctx := context.Background()

	employer := f.CreateEmployer(t)
	company := f.CreateCompany(t, employer)
	job := f.CreatePublishedJob(t, company)
	candidate := f.CreateCandidate(t)
	app := f.CreateApplication(t, job, candidate)

	otherCandidate := f.CreateCandidate(t)
	otherEmployer := f.CreateEmployer(t)
	f.CreateCompany(t, otherEmployer)

	// Strangers on both sides are denied
	_, err := appService.Get(ctx, otherCandidate.ID, otherCandidate.Role, app.ID)
	require.ErrorIs(t, err, service.ErrNotApplicationParty)

	_, err = appService.Get(ctx, otherEmployer.ID, otherEmployer.Role, app.ID)
	require.ErrorIs(t, err, service.ErrNotApplicationParty)

	// Both parties can read it
	got, err := appService.Get(ctx, candidate.ID, candidate.Role, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, got.ID)

	got, err = appService.Get(ctx, employer.ID, employer.Role, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, got.ID)

	// The job's applications are only listable by the owning employer
	_, err = appService.ListForJob(ctx, otherEmployer.ID, otherEmployer.Role, job.ID, nil, model.DefaultListLimit, 0)
	require.ErrorIs(t, err, service.ErrNotJobOwner)

	apps, err := appService.ListForJob(ctx, employer.ID, employer.Role, job.ID, nil, model.DefaultListLimit, 0)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, app.ID, apps[0].ID)
}

func TestApplications_EmployerReviews(t *testing.T) {
	// AC-APPL-005: Employer Reviews an Application
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	appService, hub := newApplicationService(tdb)
	defer hub.Close()
	ctx := context.Background()

	employer := f.CreateEmployer(t)
	company := f.CreateCompany(t, employer)
	job := f.CreatePublishedJob(t, company)
	candidate := f.CreateCandidate(t)
	app := f.CreateApplication(t, job, candidate)

	topics := []service.EventType{service.EventApplicationStatusChanged}
	sub := hub.Subscribe("sub-review", topics)
	defer hub.Unsubscribe(sub.ID, topics)

	updated, err := appService.Update(ctx, employer.ID, employer.Role, app.ID, &model.UpdateApplicationRequest{
		Status: helpers.StringPtr("interview"),
		Notes:  helpers.StringPtr("Strong portfolio, move to technical interview."),
	})

	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusInterview, updated.Status)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, employer.ID, *updated.ReviewedBy)
	assert.NotNil(t, updated.ReviewedAt)

	events := drainEvents(sub)
	require.Len(t, events, 1)
	assert.Equal(t, service.EventApplicationStatusChanged, events[0].Type)

	// Candidates cannot review, not even their own application
	_, err = appService.Update(ctx, candidate.ID, candidate.Role, app.ID, &model.UpdateApplicationRequest{
		Status: helpers.StringPtr("accepted"),
	})
	require.ErrorIs(t, err, service.ErrOnlyEmployersReview)
}

func TestApplications_CandidateWithdraws(t *testing.T) {
	// AC-APPL-006: Candidate Withdraws
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	appService, hub := newApplicationService(tdb)
	defer hub.Close()
	ctx := context.Background()

	employer := f.CreateEmployer(t)
	company := f.CreateCompany(t, employer)
	job := f.CreatePublishedJob(t, company)
	candidate := f.CreateCandidate(t)
	app := f.CreateApplication(t, job, candidate)

	require.NoError(t, appService.Delete(ctx, candidate.ID, candidate.Role, app.ID))

	// The withdrawn application is gone from the candidate's listing
	mine, err := appService.ListMine(ctx, candidate.ID, candidate.Role, nil, model.DefaultListLimit, 0)
	require.NoError(t, err)
	for _, a := range mine {
		assert.NotEqual(t, app.ID, a.ID, "withdrawn application should not be listed")
	}

	// The candidate is free to apply again
	again, err := appService.Create(ctx, candidate.ID, candidate.Role, &model.CreateApplicationRequest{
		JobID:       job.ID,
		CoverLetter: "After reconsidering, I would like to put my application back in.",
	})
	require.NoError(t, err)
	assert.NotEqual(t, app.ID, again.ID)
}
