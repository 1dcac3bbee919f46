package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portsrepo "github.com/gstbooks/gstbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
	"github.com/gstbooks/gstbooks_backend/internal/utils"
)

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// userService manages user accounts. Registration seeds the default chart so
// a fresh tenant can post vouchers immediately.
type userService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	accountSvc portssvc.AccountSvcFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		accountSvc: accountSvc,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a password-based account and seeds its chart.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		AuthProvider: ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if err := s.accountSvc.SeedDefaultChart(ctx, userID, userID); err != nil {
		// The user exists; a missing chart is recoverable on next login.
		s.LogError(ctx, err, "Failed to seed default chart for new user", slog.String("user_id", userID))
	}

	s.LogInfo(ctx, "User registered successfully", slog.String("user_id", userID))
	return &user, nil
}

// GetUserByID retrieves a user profile.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// UpdateUser changes profile fields.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name == nil {
		return user, nil
	}
	user.Name = *req.Name

	now := time.Now().UTC()
	user.LastUpdatedAt = now
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to save user update", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save user update: %w", err)
	}

	s.LogInfo(ctx, "User updated successfully", slog.String("user_id", userID))
	return user, nil
}

// AuthenticateUser verifies email/password. Any mismatch surfaces as
// ErrUnauthorized so callers cannot distinguish unknown emails from wrong
// passwords.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user during authentication")
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Authentication failed", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// FindOrCreateOAuthUser resolves a federated identity, creating and seeding
// a local user on first sign-in. An existing local user with the same email
// is linked to the provider instead of duplicated.
func (s *userService) FindOrCreateOAuthUser(ctx context.Context, provider, providerUserID, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by provider ID")
		return nil, fmt.Errorf("failed to resolve federated user: %w", err)
	}

	now := time.Now().UTC()

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		existing.AuthProvider = provider
		existing.ProviderUserID = &providerUserID
		existing.LastUpdatedAt = now
		existing.LastUpdatedBy = existing.UserID
		if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
			s.LogError(ctx, err, "Failed to link provider to existing user", slog.String("user_id", existing.UserID))
			return nil, fmt.Errorf("failed to link federated identity: %w", err)
		}
		s.LogInfo(ctx, "Linked federated identity to existing user", slog.String("user_id", existing.UserID), slog.String("provider", provider))
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by email during federated sign-in")
		return nil, fmt.Errorf("failed to resolve federated user: %w", err)
	}

	userID := uuid.NewString()
	newUser := domain.User{
		UserID:         userID,
		Email:          email,
		Name:           name,
		AuthProvider:   provider,
		ProviderUserID: &providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to save federated user")
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if err := s.accountSvc.SeedDefaultChart(ctx, userID, userID); err != nil {
		s.LogError(ctx, err, "Failed to seed default chart for federated user", slog.String("user_id", userID))
	}

	s.LogInfo(ctx, "Federated user created successfully", slog.String("user_id", userID), slog.String("provider", provider))
	return &newUser, nil
}
