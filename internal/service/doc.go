// Package service implements the business logic layer for the HireWire API.
//
// The service package contains all domain logic, authorization rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Authorization
//
// Role and ownership checks live here, not in handlers. A candidate can only
// see their own applications; an employer only reaches an application through
// the job it targets and the company that owns that job.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrJobNotFound    = errors.New("job not found")
//	    ErrAlreadyApplied = errors.New("you have already applied to this job")
//	)
//
// # Example Usage
//
//	service := NewJobService(JobServiceConfig{
//	    JobRepo:     jobRepository,
//	    CompanyRepo: companyRepository,
//	    Events:      eventHub,
//	})
//	job, err := service.Create(ctx, userID, role, &model.CreateJobRequest{...})
package service
