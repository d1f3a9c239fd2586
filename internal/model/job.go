package model

import "time"

// JobStatus tracks a job posting through its lifecycle
type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"     // Visible only to the owning employer
	JobStatusPublished JobStatus = "published" // Listed publicly, accepts applications
	JobStatusClosed    JobStatus = "closed"    // No longer accepting applications
)

// ValidJobStatus reports whether s names a known status.
func ValidJobStatus(s string) bool {
	switch JobStatus(s) {
	case JobStatusDraft, JobStatusPublished, JobStatusClosed:
		return true
	}
	return false
}

// EmploymentType describes the working arrangement for a job
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

// ValidEmploymentType reports whether s names a known employment type.
func ValidEmploymentType(s string) bool {
	switch EmploymentType(s) {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	}
	return false
}

// ExperienceLevel describes the seniority a job targets
type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMiddle ExperienceLevel = "middle"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

// ValidExperienceLevel reports whether s names a known level.
func ValidExperienceLevel(s string) bool {
	switch ExperienceLevel(s) {
	case ExperienceJunior, ExperienceMiddle, ExperienceSenior, ExperienceLead:
		return true
	}
	return false
}

// Job constraints
const (
	MinJobTitleLength = 5
	MaxJobTitleLength = 100
	MinJobDescLength  = 100
	MaxJobDescLength  = 5000
)

// Job represents a position posted by a company
type Job struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Requirements      []string        `json:"requirements"`
	SalaryMin         *float64        `json:"salary_min,omitempty"`
	SalaryMax         *float64        `json:"salary_max,omitempty"`
	Currency          string          `json:"currency"`
	EmploymentType    EmploymentType  `json:"employment_type"`
	Location          string          `json:"location"`
	Remote            bool            `json:"remote"`
	Status            JobStatus       `json:"status"`
	CompanyID         string          `json:"company_id"`
	Category          string          `json:"category"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	Skills            []string        `json:"skills"`
	ApplicationsCount int             `json:"applications_count"`
	ViewsCount        int             `json:"views_count"`
	IsDeleted         bool            `json:"-"`
	CreatedOn         time.Time       `json:"created_on"`
	UpdatedOn         time.Time       `json:"updated_on"`
}

// IsPublished returns true if the job accepts applications
func (j *Job) IsPublished() bool {
	return j.Status == JobStatusPublished
}

// CreateJobRequest represents a request to post a job
type CreateJobRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	SalaryMin       *float64 `json:"salary_min,omitempty"`
	SalaryMax       *float64 `json:"salary_max,omitempty"`
	Currency        *string  `json:"currency,omitempty"` // Defaults to USD
	EmploymentType  string   `json:"employment_type"`
	Location        string   `json:"location"`
	Remote          bool     `json:"remote,omitempty"`
	Category        string   `json:"category"`
	ExperienceLevel string   `json:"experience_level"`
	Skills          []string `json:"skills,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateJobRequest) Validate() []FieldError {
	var errors []FieldError

	if len(r.Title) < MinJobTitleLength || len(r.Title) > MaxJobTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title must be 5 to 100 characters"})
	}
	if len(r.Description) < MinJobDescLength || len(r.Description) > MaxJobDescLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 100 to 5000 characters"})
	}
	if len(r.Requirements) == 0 {
		errors = append(errors, FieldError{Field: "requirements", Message: "at least one requirement is required"})
	}
	if r.SalaryMin != nil && *r.SalaryMin < 0 {
		errors = append(errors, FieldError{Field: "salary_min", Message: "salary_min cannot be negative"})
	}
	if r.SalaryMax != nil && *r.SalaryMax < 0 {
		errors = append(errors, FieldError{Field: "salary_max", Message: "salary_max cannot be negative"})
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMax < *r.SalaryMin {
		errors = append(errors, FieldError{Field: "salary_max", Message: "salary_max cannot be below salary_min"})
	}
	if !ValidEmploymentType(r.EmploymentType) {
		errors = append(errors, FieldError{Field: "employment_type", Message: "employment_type must be one of full-time, part-time, contract, internship"})
	}
	if r.Location == "" {
		errors = append(errors, FieldError{Field: "location", Message: "location is required"})
	}
	if r.Category == "" {
		errors = append(errors, FieldError{Field: "category", Message: "category is required"})
	}
	if !ValidExperienceLevel(r.ExperienceLevel) {
		errors = append(errors, FieldError{Field: "experience_level", Message: "experience_level must be one of junior, middle, senior, lead"})
	}

	return errors
}

// UpdateJobRequest represents a partial update to a job
type UpdateJobRequest struct {
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Requirements    []string `json:"requirements,omitempty"`
	SalaryMin       *float64 `json:"salary_min,omitempty"`
	SalaryMax       *float64 `json:"salary_max,omitempty"`
	Currency        *string  `json:"currency,omitempty"`
	EmploymentType  *string  `json:"employment_type,omitempty"`
	Location        *string  `json:"location,omitempty"`
	Remote          *bool    `json:"remote,omitempty"`
	Status          *string  `json:"status,omitempty"`
	Category        *string  `json:"category,omitempty"`
	ExperienceLevel *string  `json:"experience_level,omitempty"`
	Skills          []string `json:"skills,omitempty"`
}

// Validate checks the fields that are present
func (r *UpdateJobRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title != nil && (len(*r.Title) < MinJobTitleLength || len(*r.Title) > MaxJobTitleLength) {
		errors = append(errors, FieldError{Field: "title", Message: "title must be 5 to 100 characters"})
	}
	if r.Description != nil && (len(*r.Description) < MinJobDescLength || len(*r.Description) > MaxJobDescLength) {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 100 to 5000 characters"})
	}
	if r.Requirements != nil && len(r.Requirements) == 0 {
		errors = append(errors, FieldError{Field: "requirements", Message: "at least one requirement is required"})
	}
	if r.SalaryMin != nil && *r.SalaryMin < 0 {
		errors = append(errors, FieldError{Field: "salary_min", Message: "salary_min cannot be negative"})
	}
	if r.SalaryMax != nil && *r.SalaryMax < 0 {
		errors = append(errors, FieldError{Field: "salary_max", Message: "salary_max cannot be negative"})
	}
	if r.EmploymentType != nil && !ValidEmploymentType(*r.EmploymentType) {
		errors = append(errors, FieldError{Field: "employment_type", Message: "employment_type must be one of full-time, part-time, contract, internship"})
	}
	if r.Location != nil && *r.Location == "" {
		errors = append(errors, FieldError{Field: "location", Message: "location cannot be empty"})
	}
	if r.Status != nil && !ValidJobStatus(*r.Status) {
		errors = append(errors, FieldError{Field: "status", Message: "status must be one of draft, published, closed"})
	}
	if r.Category != nil && *r.Category == "" {
		errors = append(errors, FieldError{Field: "category", Message: "category cannot be empty"})
	}
	if r.ExperienceLevel != nil && !ValidExperienceLevel(*r.ExperienceLevel) {
		errors = append(errors, FieldError{Field: "experience_level", Message: "experience_level must be one of junior, middle, senior, lead"})
	}

	return errors
}

// JobFilters narrows the public job listing
type JobFilters struct {
	Category        *string
	EmploymentType  *string
	ExperienceLevel *string
	Location        *string // Case-insensitive substring match
	Remote          *bool
	SalaryMin       *float64 // Jobs whose range reaches this floor
	Skills          []string // Jobs tagged with any of these
	Search          *string  // Case-insensitive match on title or description
	Limit           int
	Offset          int
}

// Validate checks the enum-valued filters
func (f *JobFilters) Validate() []FieldError {
	var errors []FieldError

	if f.EmploymentType != nil && !ValidEmploymentType(*f.EmploymentType) {
		errors = append(errors, FieldError{Field: "employment_type", Message: "employment_type must be one of full-time, part-time, contract, internship"})
	}
	if f.ExperienceLevel != nil && !ValidExperienceLevel(*f.ExperienceLevel) {
		errors = append(errors, FieldError{Field: "experience_level", Message: "experience_level must be one of junior, middle, senior, lead"})
	}
	if f.SalaryMin != nil && *f.SalaryMin < 0 {
		errors = append(errors, FieldError{Field: "salary_min", Message: "salary_min cannot be negative"})
	}

	return errors
}
