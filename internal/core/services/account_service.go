package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portsrepo "github.com/gstbooks/gstbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

// defaultChartEntry seeds one account of the standard chart.
type defaultChartEntry struct {
	code     string
	name     string
	category domain.AccountCategory
}

// defaultChart is the standard chart installed for every fresh tenant,
// following the usual Indian small-business layout: 1xxx assets, 2xxx
// liabilities, 3xxx equity, 4xxx revenue, 5xxx expenses.
var defaultChart = []defaultChartEntry{
	{"1010", "Cash", domain.Asset},
	{"1020", "Bank", domain.Asset},
	{"1100", "Accounts Receivable", domain.Asset},
	{"1200", "Inventory", domain.Asset},
	{"1300", "GST Input Credit", domain.Asset},
	{"2010", "Accounts Payable", domain.Liability},
	{"2100", "GST Output Payable", domain.Liability},
	{"2200", "TDS Payable", domain.Liability},
	{"3010", "Owner's Capital", domain.Equity},
	{"3020", "Retained Earnings", domain.Equity},
	{"4010", "Sales", domain.Revenue},
	{"4020", "Service Income", domain.Revenue},
	{"4900", "Other Income", domain.Revenue},
	{"5010", "Purchases", domain.Expense},
	{"5100", "Rent", domain.Expense},
	{"5200", "Salaries", domain.Expense},
	{"5300", "Utilities", domain.Expense},
	{"5900", "Miscellaneous Expenses", domain.Expense},
}

// accountService manages the per-tenant chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount adds one account to the tenant's chart.
func (s *accountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if !req.Category.IsValid() {
		return nil, fmt.Errorf("%w: invalid account category %s", apperrors.ErrValidation, req.Category)
	}

	existing, err := s.accountRepo.FindAccountByCode(ctx, tenantID, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing account", slog.String("account_code", req.Code))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
	}

	now := time.Now().UTC()
	account := domain.Account{
		Code:        req.Code,
		TenantID:    tenantID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("account_code", req.Code))
	return &account, nil
}

// GetAccountByCode retrieves one account from the tenant's chart.
func (s *accountService) GetAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("account_code", code))
		}
		return nil, fmt.Errorf("failed to find account %s: %w", code, err)
	}
	return account, nil
}

// ListAccounts retrieves the tenant's full chart of accounts.
func (s *accountService) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to retrieve accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount changes mutable account fields. Category stays immutable so
// historic vouchers keep their aggregation semantics.
func (s *accountService) UpdateAccount(ctx context.Context, tenantID, code string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		return account, nil
	}

	now := time.Now().UTC()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = updaterUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to save account update", slog.String("account_code", code))
		return nil, fmt.Errorf("failed to save account update: %w", err)
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_code", code))
	return account, nil
}

// SeedDefaultChart installs the standard chart for a fresh tenant. Skipped
// when any accounts already exist.
func (s *accountService) SeedDefaultChart(ctx context.Context, tenantID, creatorUserID string) error {
	existing, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check existing chart before seeding")
		return fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if len(existing) > 0 {
		s.LogDebug(ctx, "Chart already present, skipping default seed", slog.Int("account_count", len(existing)))
		return nil
	}

	now := time.Now().UTC()
	accounts := make([]domain.Account, len(defaultChart))
	for i, entry := range defaultChart {
		accounts[i] = domain.Account{
			Code:     entry.code,
			TenantID: tenantID,
			Name:     entry.name,
			Category: entry.category,
			IsActive: true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		s.LogError(ctx, err, "Failed to seed default chart")
		return fmt.Errorf("failed to seed default chart: %w", err)
	}

	s.LogInfo(ctx, "Default chart of accounts seeded", slog.Int("account_count", len(accounts)))
	return nil
}
