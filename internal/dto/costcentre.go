package dto

// CreateCostCentreRequest adds a cost centre for departmental tagging.
type CreateCostCentreRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"max=255"`
}

// UpdateCostCentreRequest changes mutable cost centre fields.
type UpdateCostCentreRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// CostCentreResponse mirrors a persisted cost centre.
type CostCentreResponse struct {
	CostCentreID string `json:"costCentreID"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"isActive"`
}
