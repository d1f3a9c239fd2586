package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// ===== Company Errors =====
var (
	ErrCompanyNotFound         = errors.New("company not found")
	ErrCompanyExists           = errors.New("you already have a company")
	ErrNotCompanyOwner         = errors.New("you can only manage your own company")
	ErrOnlyEmployersOwnCompany = errors.New("only employers can create a company")
)

// ===== Job Errors =====
var (
	ErrJobNotFound       = errors.New("job not found")
	ErrJobNotAvailable   = errors.New("job not found or not available")
	ErrOnlyEmployersPost = errors.New("only employers can manage jobs")
	ErrNotJobOwner       = errors.New("you can only manage jobs from your company")
	ErrCompanyRequired   = errors.New("you need to create a company first")
)

// ===== Application Errors =====
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied to this job")
	ErrOnlyCandidatesApply = errors.New("only candidates can create applications")
	ErrOnlyEmployersReview = errors.New("only employers can update applications")
	ErrNotApplicationParty = errors.New("not authorized to access this application")
)
