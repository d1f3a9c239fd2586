package service

import (
	"context"

	"github.com/hirewire/api/internal/model"
)

// UserService handles user directory operations
type UserService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID retrieves a live user. A soft-deleted account is indistinguishable
// from one that never existed.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List retrieves live users, optionally filtered by role
func (s *UserService) List(ctx context.Context, role *model.UserRole, limit, offset int) ([]*model.User, error) {
	limit, offset = model.NormalizeListParams(limit, offset)
	return s.userRepo.List(ctx, role, limit, offset)
}
