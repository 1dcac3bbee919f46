package repositories

import (
	"context"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
)

// CostCentreRepositoryFacade persists per-tenant cost centres.
type CostCentreRepositoryFacade interface {
	SaveCostCentre(ctx context.Context, cc domain.CostCentre) error
	FindCostCentreByID(ctx context.Context, tenantID, costCentreID string) (*domain.CostCentre, error)
	ListCostCentres(ctx context.Context, tenantID string) ([]domain.CostCentre, error)
	UpdateCostCentre(ctx context.Context, cc domain.CostCentre) error
}
