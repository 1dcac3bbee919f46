package dto

import "github.com/gstbooks/gstbooks_backend/internal/core/domain"

// CreateAccountRequest adds one account to the tenant's chart.
type CreateAccountRequest struct {
	Code        string                 `json:"code" binding:"required,max=20"`
	Name        string                 `json:"name" binding:"required,max=100"`
	Category    domain.AccountCategory `json:"category" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description string                 `json:"description,omitempty" binding:"max=255"`
}

// UpdateAccountRequest changes mutable account fields. Category and code are
// immutable once vouchers may reference them.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// AccountResponse mirrors a chart-of-accounts entry.
type AccountResponse struct {
	Code        string                 `json:"code"`
	Name        string                 `json:"name"`
	Category    domain.AccountCategory `json:"category"`
	Description string                 `json:"description,omitempty"`
	IsActive    bool                   `json:"isActive"`
}

// AccountBalanceResponse pairs an account with its aggregated balance.
type AccountBalanceResponse struct {
	Account AccountResponse `json:"account"`
	Balance string          `json:"balance"`
}
