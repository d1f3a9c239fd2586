// Package model defines domain entities and data structures for the HireWire API.
//
// The model package contains all struct definitions for domain objects, request/response
// types, and error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Candidate or employer account with authentication credentials
//   - Company: Employer-owned organization that posts jobs
//   - Job: Position posted by a company, moving through draft/published/closed
//   - Application: A candidate's application to a published job
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Company struct {
//	    ID       string `json:"id"`
//	    Name     string `json:"name"`
//	    Industry string `json:"industry"`
//	}
//
// # Validation Constants
//
// The package defines validation constants:
//
//	const (
//	    MinPasswordLength = 6
//	    MaxJobTitleLength = 100
//	    MaxCoverLetterLength = 2000
//	)
//
// Request types carry a Validate() []FieldError method that enforces these
// constraints before any service logic runs.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
