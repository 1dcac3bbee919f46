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
)

// costCentreService manages per-tenant cost centres.
type costCentreService struct {
	BaseService
	costCentreRepo portsrepo.CostCentreRepositoryFacade
}

// NewCostCentreService creates a new CostCentreService.
func NewCostCentreService(costCentreRepo portsrepo.CostCentreRepositoryFacade) portssvc.CostCentreSvcFacade {
	return &costCentreService{costCentreRepo: costCentreRepo}
}

var _ portssvc.CostCentreSvcFacade = (*costCentreService)(nil)

// CreateCostCentre adds a new cost centre.
func (s *costCentreService) CreateCostCentre(ctx context.Context, tenantID string, req dto.CreateCostCentreRequest, creatorUserID string) (*domain.CostCentre, error) {
	now := time.Now().UTC()
	cc := domain.CostCentre{
		CostCentreID: uuid.NewString(),
		TenantID:     tenantID,
		Name:         req.Name,
		Description:  req.Description,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.costCentreRepo.SaveCostCentre(ctx, cc); err != nil {
		s.LogError(ctx, err, "Failed to save cost centre", slog.String("cost_centre_name", req.Name))
		return nil, fmt.Errorf("failed to save cost centre: %w", err)
	}

	s.LogInfo(ctx, "Cost centre created successfully", slog.String("cost_centre_id", cc.CostCentreID))
	return &cc, nil
}

// GetCostCentreByID retrieves one cost centre.
func (s *costCentreService) GetCostCentreByID(ctx context.Context, tenantID, costCentreID string) (*domain.CostCentre, error) {
	cc, err := s.costCentreRepo.FindCostCentreByID(ctx, tenantID, costCentreID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cost centre by ID", slog.String("cost_centre_id", costCentreID))
		}
		return nil, fmt.Errorf("failed to find cost centre %s: %w", costCentreID, err)
	}
	return cc, nil
}

// ListCostCentres retrieves all cost centres for the tenant.
func (s *costCentreService) ListCostCentres(ctx context.Context, tenantID string) ([]domain.CostCentre, error) {
	centres, err := s.costCentreRepo.ListCostCentres(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cost centres")
		return nil, fmt.Errorf("failed to retrieve cost centres: %w", err)
	}
	return centres, nil
}

// UpdateCostCentre changes mutable cost centre fields.
func (s *costCentreService) UpdateCostCentre(ctx context.Context, tenantID, costCentreID string, req dto.UpdateCostCentreRequest, updaterUserID string) (*domain.CostCentre, error) {
	cc, err := s.costCentreRepo.FindCostCentreByID(ctx, tenantID, costCentreID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		cc.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		cc.Description = *req.Description
		updated = true
	}
	if req.IsActive != nil {
		cc.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		return cc, nil
	}

	now := time.Now().UTC()
	cc.LastUpdatedAt = now
	cc.LastUpdatedBy = updaterUserID

	if err := s.costCentreRepo.UpdateCostCentre(ctx, *cc); err != nil {
		s.LogError(ctx, err, "Failed to save cost centre update", slog.String("cost_centre_id", costCentreID))
		return nil, fmt.Errorf("failed to save cost centre update: %w", err)
	}

	s.LogInfo(ctx, "Cost centre updated successfully", slog.String("cost_centre_id", costCentreID))
	return cc, nil
}
