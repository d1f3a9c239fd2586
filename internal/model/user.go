package model

import (
	"net/mail"
	"time"
)

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleCandidate UserRole = "candidate" // Applies to jobs
	UserRoleEmployer  UserRole = "employer"  // Owns a company, posts jobs
)

// ValidUserRole reports whether s names a known role.
func ValidUserRole(s string) bool {
	return s == string(UserRoleCandidate) || s == string(UserRoleEmployer)
}

// User account constraints
const (
	MinPasswordLength  = 6
	MinNameLength      = 2
	MaxNameLength      = 50
	MaxBioLength       = 1000
	MaxExperienceYears = 50
)

// User represents a user account
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Hash       *string   `json:"-"` // Never expose password hash
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       UserRole  `json:"role"`
	Phone      *string   `json:"phone,omitempty"`
	Avatar     *string   `json:"avatar,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	Skills     []string  `json:"skills"`
	Experience *int      `json:"experience,omitempty"` // Years
	Location   *string   `json:"location,omitempty"`
	IsDeleted  bool      `json:"-"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}

// IsCandidate returns true if the user has the candidate role
func (u *User) IsCandidate() bool {
	return u.Role == UserRoleCandidate
}

// IsEmployer returns true if the user has the employer role
func (u *User) IsEmployer() bool {
	return u.Role == UserRoleEmployer
}

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"` // candidate or employer
	Phone     *string `json:"phone,omitempty"`
}

// Validate checks if the register request is valid
func (r *RegisterRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Email == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errors = append(errors, FieldError{Field: "email", Message: "email must be a valid address"})
	}
	if len(r.Password) < MinPasswordLength {
		errors = append(errors, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(r.FirstName) < MinNameLength || len(r.FirstName) > MaxNameLength {
		errors = append(errors, FieldError{Field: "first_name", Message: "first_name must be 2 to 50 characters"})
	}
	if len(r.LastName) < MinNameLength || len(r.LastName) > MaxNameLength {
		errors = append(errors, FieldError{Field: "last_name", Message: "last_name must be 2 to 50 characters"})
	}
	if !ValidUserRole(r.Role) {
		errors = append(errors, FieldError{Field: "role", Message: "role must be 'candidate' or 'employer'"})
	}

	return errors
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid
func (r *LoginRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Email == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	}
	if r.Password == "" {
		errors = append(errors, FieldError{Field: "password", Message: "password is required"})
	}

	return errors
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // Seconds
	User      *User  `json:"user"`
}
