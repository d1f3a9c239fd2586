// Package handler provides HTTP request handlers for the HireWire API.
//
// The handler package contains all HTTP endpoint implementations organized
// by domain. Each handler struct encapsulates the service it serves requests
// for (auth, users, companies, jobs, applications, events), declared as a
// small interface so handlers can be tested against mocks.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependency
//   - Methods handle specific HTTP endpoints
//   - Request bodies validate via the model package's Validate methods
//   - Service errors are mapped centrally by MapServiceError
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: single resource wrapped in a data envelope
//   - WriteCollection: paginated list of resources
//   - WriteJSON: raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Protected handlers read the caller from the request context populated by
// the auth middleware:
//
//	userID := middleware.GetUserID(r.Context())
//	role := middleware.GetUserRole(r.Context())
//
// # Example Usage
//
//	jobs := NewJobHandler(jobService)
//	mux.HandleFunc("GET /v1/jobs", jobs.List)
//	mux.HandleFunc("POST /v1/jobs", jobs.Create)
package handler
