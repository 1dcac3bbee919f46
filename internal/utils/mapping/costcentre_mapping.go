package mapping

import (
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/models"
)

// ToModelCostCentre converts a domain CostCentre to a model CostCentre
func ToModelCostCentre(d domain.CostCentre) models.CostCentre {
	return models.CostCentre{
		CostCentreID: d.CostCentreID,
		TenantID:     d.TenantID,
		Name:         d.Name,
		Description:  d.Description,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCostCentre converts a model CostCentre to a domain CostCentre
func ToDomainCostCentre(m models.CostCentre) domain.CostCentre {
	return domain.CostCentre{
		CostCentreID: m.CostCentreID,
		TenantID:     m.TenantID,
		Name:         m.Name,
		Description:  m.Description,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCostCentreSlice converts a slice of model CostCentres to domain CostCentres
func ToDomainCostCentreSlice(ms []models.CostCentre) []domain.CostCentre {
	ds := make([]domain.CostCentre, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCostCentre(m)
	}
	return ds
}
