package services

import (
	"context"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

// UserSvcFacade manages user accounts. Registration seeds the default chart
// of accounts for the new tenant.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// AuthenticateUser verifies email/password and returns the user, or
	// ErrUnauthorized on any mismatch.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateOAuthUser resolves a federated identity to a local user,
	// creating (and seeding) one on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, provider, providerUserID, email, name string) (*domain.User, error)
}

// TokenSvcFacade issues and rotates JWT access/refresh token pairs. Refresh
// tokens are single use: each refresh invalidates the presented token.
type TokenSvcFacade interface {
	IssueTokenPair(ctx context.Context, user *domain.User) (*dto.AuthResponse, error)
	RefreshTokenPair(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	RevokeRefreshToken(ctx context.Context, userID string) error
}

// GoogleOAuthSvcFacade drives the Google sign-in code exchange.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL returns the Google consent page URL for the given CSRF state.
	AuthCodeURL(state string) string
	// ExchangeCode swaps the authorization code for the Google profile and
	// resolves it to a local user with a fresh token pair.
	ExchangeCode(ctx context.Context, code string) (*dto.AuthResponse, error)
}
