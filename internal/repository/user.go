package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirewire/api/internal/database"
	"github.com/hirewire/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. The unique index on (email, is_deleted) rejects
// a second live account with the same email.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			email: $email,
			hash: $hash,
			first_name: $first_name,
			last_name: $last_name,
			role: $role,
			phone: IF $phone IS NOT NULL THEN $phone ELSE NONE END,
			avatar: IF $avatar IS NOT NULL THEN $avatar ELSE NONE END,
			bio: IF $bio IS NOT NULL THEN $bio ELSE NONE END,
			skills: $skills,
			experience: IF $experience IS NOT NULL THEN $experience ELSE NONE END,
			location: IF $location IS NOT NULL THEN $location ELSE NONE END,
			is_deleted: false,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}

	vars := map[string]interface{}{
		"email":      user.Email,
		"hash":       ptrToNone(user.Hash),
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"role":       user.Role,
		"phone":      ptrToNone(user.Phone),
		"avatar":     ptrToNone(user.Avatar),
		"bio":        ptrToNone(user.Bio),
		"skills":     skills,
		"experience": user.Experience,
		"location":   ptrToNone(user.Location),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	user.ID = created.ID
	user.CreatedOn = created.CreatedOn
	user.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a live user by ID. Returns nil when the user does not
// exist or has been soft-deleted.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id) WHERE is_deleted = false`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, ok := unwrapRow(result)
	if !ok {
		return nil, nil
	}
	return parseUserRow(row), nil
}

// GetByEmail retrieves a live user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email AND is_deleted = false LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, ok := unwrapRow(result)
	if !ok {
		return nil, nil
	}
	return parseUserRow(row), nil
}

// List retrieves live users, optionally filtered by role
func (r *UserRepository) List(ctx context.Context, role *model.UserRole, limit, offset int) ([]*model.User, error) {
	query := `SELECT * FROM user WHERE is_deleted = false`
	vars := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	if role != nil {
		query += ` AND role = $role`
		vars["role"] = *role
	}

	query += ` ORDER BY created_on DESC LIMIT $limit START $offset`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0)
	for _, row := range unwrapRows(result) {
		users = append(users, parseUserRow(row))
	}
	return users, nil
}

// SoftDelete marks a user as deleted
func (r *UserRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET is_deleted = true, updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

func parseUserRow(row map[string]interface{}) *model.User {
	skills := getStringSlice(row, "skills")
	if skills == nil {
		skills = []string{}
	}

	return &model.User{
		ID:         getIDString(row, "id"),
		Email:      getString(row, "email"),
		Hash:       getStringPtr(row, "hash"),
		FirstName:  getString(row, "first_name"),
		LastName:   getString(row, "last_name"),
		Role:       model.UserRole(getString(row, "role")),
		Phone:      getStringPtr(row, "phone"),
		Avatar:     getStringPtr(row, "avatar"),
		Bio:        getStringPtr(row, "bio"),
		Skills:     skills,
		Experience: getIntPtr(row, "experience"),
		Location:   getStringPtr(row, "location"),
		IsDeleted:  getBool(row, "is_deleted"),
		CreatedOn:  getTimeValue(row, "created_on"),
		UpdatedOn:  getTimeValue(row, "updated_on"),
	}
}
