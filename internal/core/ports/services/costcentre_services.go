package services

import (
	"context"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

// CostCentreSvcFacade manages per-tenant cost centres.
type CostCentreSvcFacade interface {
	CreateCostCentre(ctx context.Context, tenantID string, req dto.CreateCostCentreRequest, creatorUserID string) (*domain.CostCentre, error)
	GetCostCentreByID(ctx context.Context, tenantID, costCentreID string) (*domain.CostCentre, error)
	ListCostCentres(ctx context.Context, tenantID string) ([]domain.CostCentre, error)
	UpdateCostCentre(ctx context.Context, tenantID, costCentreID string, req dto.UpdateCostCentreRequest, updaterUserID string) (*domain.CostCentre, error)
}
