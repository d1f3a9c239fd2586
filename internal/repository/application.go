package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirewire/api/internal/database"
	"github.com/hirewire/api/internal/model"
)

// ApplicationRepository handles application data access
type ApplicationRepository struct {
	db database.Database
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db database.Database) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new application. The unique index on
// (job, candidate, is_deleted) is the serialization point for double-apply:
// under concurrent submission exactly one insert wins.
func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	query := `
		CREATE application CONTENT {
			job: type::record($job),
			candidate: type::record($candidate),
			cover_letter: $cover_letter,
			status: $status,
			resume: IF $resume IS NOT NULL THEN $resume ELSE NONE END,
			is_deleted: false,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"job":          app.JobID,
		"candidate":    app.CandidateID,
		"cover_letter": app.CoverLetter,
		"status":       app.Status,
		"resume":       ptrToNone(app.Resume),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: already applied to this job", database.ErrDuplicate)
		}
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	app.ID = created.ID
	app.CreatedOn = created.CreatedOn
	app.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a live application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*model.Application, error) {
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
	return parseApplicationRow(row), nil
}

// GetByJobAndCandidate retrieves a candidate's live application to a job
func (r *ApplicationRepository) GetByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*model.Application, error) {
	query := `
		SELECT * FROM application
		WHERE job = type::record($job) AND candidate = type::record($candidate) AND is_deleted = false
		LIMIT 1
	`
	vars := map[string]interface{}{
		"job":       jobID,
		"candidate": candidateID,
	}

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
	return parseApplicationRow(row), nil
}

// ListByCandidate retrieves a candidate's live applications, newest first
func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error) {
	query := `SELECT * FROM application WHERE candidate = type::record($candidate) AND is_deleted = false`
	vars := map[string]interface{}{
		"candidate": candidateID,
		"limit":     limit,
		"offset":    offset,
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

	apps := make([]*model.Application, 0)
	for _, row := range unwrapRows(result) {
		apps = append(apps, parseApplicationRow(row))
	}
	return apps, nil
}

// ListByJob retrieves a job's live applications, newest first
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string, status *model.ApplicationStatus, limit, offset int) ([]*model.Application, error) {
	query := `SELECT * FROM application WHERE job = type::record($job) AND is_deleted = false`
	vars := map[string]interface{}{
		"job":    jobID,
		"limit":  limit,
		"offset": offset,
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

	apps := make([]*model.Application, 0)
	for _, row := range unwrapRows(result) {
		apps = append(apps, parseApplicationRow(row))
	}
	return apps, nil
}

// Update applies a review update. When a status is set the reviewer stamp is
// written alongside it.
func (r *ApplicationRepository) Update(ctx context.Context, id string, req *model.UpdateApplicationRequest, reviewerID string) error {
	query := `UPDATE type::record($id) SET updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	if req.Status != nil {
		query += `, status = $status, reviewed_by = type::record($reviewed_by), reviewed_at = time::now()`
		vars["status"] = *req.Status
		vars["reviewed_by"] = reviewerID
	}
	if req.Notes != nil {
		query += `, notes = $notes`
		vars["notes"] = *req.Notes
	}

	return r.db.Execute(ctx, query, vars)
}

// SoftDelete marks an application as deleted, freeing the candidate to apply
// to the same job again.
func (r *ApplicationRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET is_deleted = true, updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

func parseApplicationRow(row map[string]interface{}) *model.Application {
	return &model.Application{
		ID:          getIDString(row, "id"),
		JobID:       getIDString(row, "job"),
		CandidateID: getIDString(row, "candidate"),
		CoverLetter: getString(row, "cover_letter"),
		Status:      model.ApplicationStatus(getString(row, "status")),
		Resume:      getStringPtr(row, "resume"),
		Notes:       getStringPtr(row, "notes"),
		ReviewedBy:  getIDStringPtr(row, "reviewed_by"),
		ReviewedAt:  getTime(row, "reviewed_at"),
		IsDeleted:   getBool(row, "is_deleted"),
		CreatedOn:   getTimeValue(row, "created_on"),
		UpdatedOn:   getTimeValue(row, "updated_on"),
	}
}
