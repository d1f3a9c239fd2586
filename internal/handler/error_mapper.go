package handler

import (
	"errors"

	"github.com/hirewire/api/internal/model"
	"github.com/hirewire/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrOnlyEmployersOwnCompany),
		errors.Is(err, service.ErrOnlyEmployersPost),
		errors.Is(err, service.ErrOnlyEmployersReview),
		errors.Is(err, service.ErrOnlyCandidatesApply),
		errors.Is(err, service.ErrNotCompanyOwner),
		errors.Is(err, service.ErrNotJobOwner),
		errors.Is(err, service.ErrNotApplicationParty):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrCompanyNotFound):
		return model.NewNotFoundError("company")
	case errors.Is(err, service.ErrJobNotFound):
		return model.NewNotFoundError("job")
	case errors.Is(err, service.ErrApplicationNotFound):
		return model.NewNotFoundError("application")
	// Applying to a draft, closed, or deleted job looks exactly like
	// applying to a job that never existed.
	case errors.Is(err, service.ErrJobNotAvailable):
		return model.NewNotFoundError("job")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrCompanyExists),
		errors.Is(err, service.ErrAlreadyApplied):
		return model.NewConflictError(err.Error())

	// ===== Precondition Errors → 422 =====
	case errors.Is(err, service.ErrCompanyRequired):
		return model.NewValidationError([]model.FieldError{{Field: "company", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails
// response with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
