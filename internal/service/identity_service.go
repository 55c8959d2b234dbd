// Package service provides application business logic over the repositories.
package service

import (
	"context"
	"strings"

	"apt/internal/models"
	"apt/internal/repository"
	"apt/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// IdentityService owns user records, credential verification and the loom
// preference.
type IdentityService struct {
	userRepo repository.UserRepository
}

// RegisterInput is the input for creating an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// UpdateProfileInput is the input for a profile mutation. TargetUsername must
// match the acting principal.
type UpdateProfileInput struct {
	TargetUsername string
	Bio            string
	Loom           string
}

// NewIdentityService returns a new IdentityService.
func NewIdentityService(userRepo repository.UserRepository) *IdentityService {
	return &IdentityService{userRepo: userRepo}
}

// Register creates a new account and returns the principal for it. Username
// and email uniqueness is enforced by the database, so a concurrent duplicate
// registration resolves to exactly one winner; the loser gets ConflictError.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (*models.Principal, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" || email == "" || in.Password == "" {
		return nil, models.NewValidationError("Please fill all fields")
	}
	if in.Password != in.Confirm {
		return nil, models.NewValidationError("Passwords do not match")
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Loom:         models.LoomNone,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &models.Principal{UserID: user.ID, Username: user.Username, Loom: user.Loom}, nil
}

// Authenticate verifies credentials. The login identifier may be either a
// username or an email address.
func (s *IdentityService) Authenticate(ctx context.Context, loginID, password string) (*models.Principal, error) {
	user, err := s.userRepo.GetByLogin(ctx, strings.TrimSpace(loginID))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewAuthError("Invalid username/email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.NewAuthError("Invalid username/email or password")
	}

	return &models.Principal{UserID: user.ID, Username: user.Username, Loom: user.Loom}, nil
}

// GetProfile returns the stored profile for username. Withholding the email
// from non-owners is a presentation concern; the store exposes it.
func (s *IdentityService) GetProfile(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// UpdateProfile mutates bio and loom. Only the owner may edit; an invalid
// loom value is coerced to "none" rather than rejected.
func (s *IdentityService) UpdateProfile(ctx context.Context, principal models.Principal, in UpdateProfileInput) (*models.User, error) {
	if principal.Username != in.TargetUsername {
		return nil, models.NewAuthzError("You can only edit your own profile")
	}

	user, err := s.userRepo.GetByUsername(ctx, in.TargetUsername)
	if err != nil {
		return nil, err
	}

	user.Bio = strings.TrimSpace(in.Bio)
	user.Loom = models.NormalizeLoom(in.Loom)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns every user except the caller, for the directory surface.
func (s *IdentityService) ListUsers(ctx context.Context, principal models.Principal) ([]models.User, error) {
	return s.userRepo.List(ctx, principal.Username)
}
