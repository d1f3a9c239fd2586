package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/hirewire/api/internal/model"
	"github.com/hirewire/api/pkg/jwt"
)

// ============================================================================
// Mock Repository
// ============================================================================

type mockUserRepo struct {
	createFunc     func(ctx context.Context, user *model.User) error
	getByIDFunc    func(ctx context.Context, id string) (*model.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	listFunc       func(ctx context.Context, role *model.UserRole, limit, offset int) ([]*model.User, error)
	softDeleteFunc func(ctx context.Context, id string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	user.ID = "user:1"
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context, role *model.UserRole, limit, offset int) ([]*model.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, role, limit, offset)
	}
	return nil, nil
}

func (m *mockUserRepo) SoftDelete(ctx context.Context, id string) error {
	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(ctx, id)
	}
	return nil
}

// ============================================================================
// Test Helpers
// ============================================================================

func newTestJWTService(t *testing.T) *jwt.Service {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return jwt.NewTestService(key, "test-issuer", 15*time.Minute)
}

func newAuthService(repo UserRepository, jwtSvc *jwt.Service) *AuthService {
	return NewAuthService(AuthServiceConfig{
		UserRepo:   repo,
		JWTService: jwtSvc,
	})
}

func registerRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "secret1",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      "candidate",
	}
}

// ============================================================================
// Register Tests
// ============================================================================

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	svc := newAuthService(&mockUserRepo{}, newTestJWTService(t))

	result, err := svc.Register(context.Background(), registerRequest())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Token == "" {
		t.Error("expected a token")
	}
	if result.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("expected expires_in 900, got %d", result.ExpiresIn)
	}
	if result.User.ID != "user:1" {
		t.Errorf("expected created user ID, got %q", result.User.ID)
	}
	if result.User.Role != model.UserRoleCandidate {
		t.Errorf("expected candidate role, got %q", result.User.Role)
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	t.Parallel()
	var createdEmail string
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			createdEmail = user.Email
			user.ID = "user:1"
			return nil
		},
	}
	svc := newAuthService(repo, newTestJWTService(t))

	req := registerRequest()
	req.Email = "  Jane@Example.COM "

	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if createdEmail != "jane@example.com" {
		t.Errorf("expected lowercased trimmed email, got %q", createdEmail)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()
	var createdHash *string
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			createdHash = user.Hash
			user.ID = "user:1"
			return nil
		},
	}
	svc := newAuthService(repo, newTestJWTService(t))

	if _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if createdHash == nil || *createdHash == "secret1" {
		t.Error("password must be stored hashed, not in plaintext")
	}
	if !checkPassword("secret1", *createdHash) {
		t.Error("stored hash should verify against the original password")
	}
}

func TestRegister_DuplicateEmail_ReturnsErrEmailAlreadyExists(t *testing.T) {
	t.Parallel()
	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user:1", Email: email}, nil
		},
	}
	svc := newAuthService(repo, newTestJWTService(t))

	_, err := svc.Register(context.Background(), registerRequest())

	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	hash, _ := hashPassword("secret1")
	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user:1", Email: email, Hash: &hash, Role: model.UserRoleEmployer}, nil
		},
	}
	svc := newAuthService(repo, newTestJWTService(t))

	result, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret1",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Token == "" {
		t.Error("expected a token")
	}
}

func TestLogin_UnknownEmail_ReturnsErrInvalidCredentials(t *testing.T) {
	t.Parallel()
	svc := newAuthService(&mockUserRepo{}, newTestJWTService(t))

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret1",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword_ReturnsSameErrorAsUnknownEmail(t *testing.T) {
	t.Parallel()
	hash, _ := hashPassword("secret1")
	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user:1", Email: email, Hash: &hash}, nil
		},
	}
	svc := newAuthService(repo, newTestJWTService(t))

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_DeactivatedAccount_ReturnsErrInvalidCredentials(t *testing.T) {
	t.Parallel()
	// A soft-deleted account is invisible to GetByEmail, so login must fail
	// exactly like an unknown email
	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return nil, nil
		},
	}
	svc := newAuthService(repo, newTestJWTService(t))

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "deleted@example.com",
		Password: "secret1",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ============================================================================
// Deactivate Tests
// ============================================================================

func TestDeactivate_SoftDeletesUser(t *testing.T) {
	t.Parallel()
	deleted := ""
	repo := &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id}, nil
		},
		softDeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := newAuthService(repo, newTestJWTService(t))

	if err := svc.Deactivate(context.Background(), "user:1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleted != "user:1" {
		t.Errorf("expected SoftDelete(user:1), got %q", deleted)
	}
}

func TestDeactivate_UnknownUser_ReturnsErrUserNotFound(t *testing.T) {
	t.Parallel()
	svc := newAuthService(&mockUserRepo{}, newTestJWTService(t))

	err := svc.Deactivate(context.Background(), "user:missing")

	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

// ============================================================================
// GetUserByID Tests
// ============================================================================

func TestGetUserByID_NotFound(t *testing.T) {
	t.Parallel()
	svc := newAuthService(&mockUserRepo{}, newTestJWTService(t))

	_, err := svc.GetUserByID(context.Background(), "user:missing")

	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
