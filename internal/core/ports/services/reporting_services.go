package services

import (
	"context"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

// ReportingSvcFacade computes reports by folding the tenant's full voucher
// snapshot through the ledger engine. Nothing is cached; every call
// recomputes from storage.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, tenantID string, params dto.ReportRangeParams) (*domain.TrialBalanceReport, error)
	CostCentreSummary(ctx context.Context, tenantID string, params dto.ReportRangeParams) ([]domain.CostCentreSummaryRow, error)
	ProfitAndLoss(ctx context.Context, tenantID string, params dto.ReportRangeParams) (*domain.PAndLReport, error)

	// SalesTurnover sums invoices gross, nets off credit notes.
	SalesTurnover(ctx context.Context, tenantID string, params dto.ReportRangeParams) (*domain.TurnoverAnalysis, error)
	// PurchaseTurnover sums bills gross, nets off debit notes.
	PurchaseTurnover(ctx context.Context, tenantID string, params dto.ReportRangeParams) (*domain.TurnoverAnalysis, error)
}
