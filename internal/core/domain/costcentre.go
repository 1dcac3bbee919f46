package domain

// CostCentre is a tag used to attribute income and expense to a department
// or project, independent of the chart of accounts.
type CostCentre struct {
	CostCentreID string `json:"costCentreID"`
	TenantID     string `json:"tenantID"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
