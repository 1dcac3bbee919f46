package repositories

import (
	"context"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
)

// AccountRepositoryFacade persists the per-tenant chart of accounts.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccounts inserts many accounts at once (default chart seeding).
	SaveAccounts(ctx context.Context, accounts []domain.Account) error

	// FindAccountByCode returns apperrors.ErrNotFound when the code does not
	// exist for the tenant.
	FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error)

	ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error)

	// UpdateAccount persists name/description/active changes. Category is
	// immutable and must not be written.
	UpdateAccount(ctx context.Context, account domain.Account) error
}
