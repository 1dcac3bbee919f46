package repositories

import (
	"context"
	"time"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
)

// UserRepositoryFacade persists users (tenants).
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderID(ctx context.Context, provider, providerUserID string) (*domain.User, error)
	FindUserByRefreshTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hash and expiry of the active refresh
	// token; nil values clear it (logout / rotation).
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error
}
