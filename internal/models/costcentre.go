package models

// CostCentre is a persisted departmental tag.
type CostCentre struct {
	CostCentreID string `json:"costCentreID"`
	TenantID     string `json:"tenantID"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
