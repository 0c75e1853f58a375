package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/user"
)

// UserService manages firm members. The auth middleware resolves JWT subjects
// through it on every request.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// GetByID returns a user by ID regardless of active flag. The middleware
// decides what an inactive account means (403, not 401).
func (s *UserService) GetByID(ctx context.Context, id string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(user.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetByEmail returns a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// Create adds a member to a firm. Password is stored as a bcrypt hash.
func (s *UserService) Create(ctx context.Context, firmID, email, password, fullName string, role user.Role) (*ent.User, error) {
	if email == "" {
		return nil, NewValidationError("email", "required")
	}
	if len(password) < 8 {
		return nil, NewValidationError("password", "must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetFirmID(firmID).
		SetEmail(email).
		SetPasswordHash(string(hash)).
		SetFullName(fullName).
		SetRole(role).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// CheckPassword verifies a candidate password against the stored hash.
func (s *UserService) CheckPassword(u *ent.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
