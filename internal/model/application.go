package model

import "time"

// ApplicationStatus tracks an application through review
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
)

// ValidApplicationStatus reports whether s names a known status.
func ValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusInterview,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

// Application constraints
const (
	MinCoverLetterLength = 50
	MaxCoverLetterLength = 2000
	MaxNotesLength       = 1000
)

// Application represents a candidate's application to a job
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	CandidateID string            `json:"candidate_id"`
	CoverLetter string            `json:"cover_letter"`
	Status      ApplicationStatus `json:"status"`
	Resume      *string           `json:"resume,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
	ReviewedBy  *string           `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time        `json:"reviewed_at,omitempty"`
	IsDeleted   bool              `json:"-"`
	CreatedOn   time.Time         `json:"created_on"`
	UpdatedOn   time.Time         `json:"updated_on"`
}

// CreateApplicationRequest represents a candidate applying to a job
type CreateApplicationRequest struct {
	JobID       string  `json:"job_id"`
	CoverLetter string  `json:"cover_letter"`
	Resume      *string `json:"resume,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateApplicationRequest) Validate() []FieldError {
	var errors []FieldError

	if r.JobID == "" {
		errors = append(errors, FieldError{Field: "job_id", Message: "job_id is required"})
	}
	if len(r.CoverLetter) < MinCoverLetterLength || len(r.CoverLetter) > MaxCoverLetterLength {
		errors = append(errors, FieldError{Field: "cover_letter", Message: "cover_letter must be 50 to 2000 characters"})
	}

	return errors
}

// UpdateApplicationRequest represents an employer reviewing an application
type UpdateApplicationRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// Validate checks the fields that are present
func (r *UpdateApplicationRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Status != nil && !ValidApplicationStatus(*r.Status) {
		errors = append(errors, FieldError{Field: "status", Message: "status must be one of pending, reviewed, interview, rejected, accepted"})
	}
	if r.Notes != nil && len(*r.Notes) > MaxNotesLength {
		errors = append(errors, FieldError{Field: "notes", Message: "notes must be 1000 characters or less"})
	}

	return errors
}
