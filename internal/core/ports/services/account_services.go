package services

import (
	"context"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

// AccountSvcFacade manages the per-tenant chart of accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, tenantID, code string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error)

	// SeedDefaultChart installs the standard Indian chart of accounts for a
	// fresh tenant. No-op when the tenant already has accounts.
	SeedDefaultChart(ctx context.Context, tenantID, creatorUserID string) error
}
