package model

import (
	"fmt"
	"time"
)

// CompanySize buckets a company by headcount
type CompanySize string

const (
	CompanySizeStartup    CompanySize = "startup"
	CompanySizeSmall      CompanySize = "small"
	CompanySizeMedium     CompanySize = "medium"
	CompanySizeLarge      CompanySize = "large"
	CompanySizeEnterprise CompanySize = "enterprise"
)

// ValidCompanySize reports whether s names a known size bucket.
func ValidCompanySize(s string) bool {
	switch CompanySize(s) {
	case CompanySizeStartup, CompanySizeSmall, CompanySizeMedium, CompanySizeLarge, CompanySizeEnterprise:
		return true
	}
	return false
}

// Company constraints
const (
	MinCompanyNameLength = 2
	MaxCompanyNameLength = 100
	MinCompanyDescLength = 50
	MaxCompanyDescLength = 2000
	MinFoundedYear       = 1800
)

// Company represents an employer-owned organization
type Company struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Website     *string     `json:"website,omitempty"`
	Logo        *string     `json:"logo,omitempty"`
	Industry    string      `json:"industry"`
	Size        CompanySize `json:"size"`
	Location    string      `json:"location"`
	FoundedYear *int        `json:"founded_year,omitempty"`
	OwnerID     string      `json:"owner_id"`
	Employees   []string    `json:"employees,omitempty"` // User IDs
	IsDeleted   bool        `json:"-"`
	CreatedOn   time.Time   `json:"created_on"`
	UpdatedOn   time.Time   `json:"updated_on"`
}

// CreateCompanyRequest represents a request to create a company
type CreateCompanyRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Website     *string `json:"website,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Industry    string  `json:"industry"`
	Size        string  `json:"size"` // startup, small, medium, large, enterprise
	Location    string  `json:"location"`
	FoundedYear *int    `json:"founded_year,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateCompanyRequest) Validate() []FieldError {
	var errors []FieldError

	if len(r.Name) < MinCompanyNameLength || len(r.Name) > MaxCompanyNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 2 to 100 characters"})
	}
	if len(r.Description) < MinCompanyDescLength || len(r.Description) > MaxCompanyDescLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 50 to 2000 characters"})
	}
	if r.Industry == "" {
		errors = append(errors, FieldError{Field: "industry", Message: "industry is required"})
	}
	if !ValidCompanySize(r.Size) {
		errors = append(errors, FieldError{Field: "size", Message: "size must be one of startup, small, medium, large, enterprise"})
	}
	if r.Location == "" {
		errors = append(errors, FieldError{Field: "location", Message: "location is required"})
	}
	if r.FoundedYear != nil {
		currentYear := time.Now().Year()
		if *r.FoundedYear < MinFoundedYear || *r.FoundedYear > currentYear {
			errors = append(errors, FieldError{Field: "founded_year", Message: fmt.Sprintf("founded_year must be between 1800 and %d", currentYear)})
		}
	}

	return errors
}

// UpdateCompanyRequest represents a partial update to a company
type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Size        *string `json:"size,omitempty"`
	Location    *string `json:"location,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty"`
}

// Validate checks the fields that are present
func (r *UpdateCompanyRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name != nil && (len(*r.Name) < MinCompanyNameLength || len(*r.Name) > MaxCompanyNameLength) {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 2 to 100 characters"})
	}
	if r.Description != nil && (len(*r.Description) < MinCompanyDescLength || len(*r.Description) > MaxCompanyDescLength) {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 50 to 2000 characters"})
	}
	if r.Industry != nil && *r.Industry == "" {
		errors = append(errors, FieldError{Field: "industry", Message: "industry cannot be empty"})
	}
	if r.Size != nil && !ValidCompanySize(*r.Size) {
		errors = append(errors, FieldError{Field: "size", Message: "size must be one of startup, small, medium, large, enterprise"})
	}
	if r.Location != nil && *r.Location == "" {
		errors = append(errors, FieldError{Field: "location", Message: "location cannot be empty"})
	}
	if r.FoundedYear != nil {
		currentYear := time.Now().Year()
		if *r.FoundedYear < MinFoundedYear || *r.FoundedYear > currentYear {
			errors = append(errors, FieldError{Field: "founded_year", Message: fmt.Sprintf("founded_year must be between 1800 and %d", currentYear)})
		}
	}

	return errors
}
