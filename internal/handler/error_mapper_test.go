package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/hirewire/api/internal/service"
)

func TestMapServiceError_StatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not company owner", service.ErrNotCompanyOwner, http.StatusForbidden},
		{"not job owner", service.ErrNotJobOwner, http.StatusForbidden},
		{"not application party", service.ErrNotApplicationParty, http.StatusForbidden},
		{"candidates only", service.ErrOnlyCandidatesApply, http.StatusForbidden},
		{"employers only", service.ErrOnlyEmployersPost, http.StatusForbidden},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound},
		{"job not found", service.ErrJobNotFound, http.StatusNotFound},
		{"job not available", service.ErrJobNotAvailable, http.StatusNotFound},
		{"email exists", service.ErrEmailAlreadyExists, http.StatusConflict},
		{"company exists", service.ErrCompanyExists, http.StatusConflict},
		{"already applied", service.ErrAlreadyApplied, http.StatusConflict},
		{"company required", service.ErrCompanyRequired, http.StatusUnprocessableEntity},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pd := MapServiceError(tt.err)
			if pd.Status != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, pd.Status)
			}
		})
	}
}

func TestMapServiceError_Nil_ReturnsNil(t *testing.T) {
	t.Parallel()
	if pd := MapServiceError(nil); pd != nil {
		t.Errorf("expected nil, got %+v", pd)
	}
}

func TestMapServiceError_UnavailableJob_LooksLikeMissingJob(t *testing.T) {
	t.Parallel()
	unavailable := MapServiceError(service.ErrJobNotAvailable)
	missing := MapServiceError(service.ErrJobNotFound)
	if unavailable.Detail != missing.Detail || unavailable.Status != missing.Status {
		t.Errorf("unavailable job must be indistinguishable from a missing one: %+v vs %+v", unavailable, missing)
	}
}

func TestMapServiceErrorWithContext_InternalGetsOperation(t *testing.T) {
	t.Parallel()
	pd := MapServiceErrorWithContext(errors.New("boom"), "create job")
	if pd.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", pd.Status)
	}
	if pd.Detail != "create job: an unexpected error occurred" {
		t.Errorf("expected operation in detail, got %q", pd.Detail)
	}
}
