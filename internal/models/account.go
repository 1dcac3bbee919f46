package models

// AccountCategory is one of the five fundamental account classifications.
type AccountCategory string

// Account represents one entry of a tenant's chart of accounts.
type Account struct {
	Code        string          `json:"code"`     // PK together with TenantID
	TenantID    string          `json:"tenantID"` // Owning user
	Name        string          `json:"name"`
	Category    AccountCategory `json:"category"` // Immutable after creation
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
