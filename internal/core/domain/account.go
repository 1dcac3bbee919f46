package domain

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Revenue   AccountCategory = "REVENUE"
	Expense   AccountCategory = "EXPENSE"
)

// IsValid reports whether the category is one of the five known categories.
func (c AccountCategory) IsValid() bool {
	switch c {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether a debit increases the account's natural balance.
// Asset and Expense accounts are debit-normal; Liability, Equity and Revenue
// accounts are credit-normal.
func (c AccountCategory) IsDebitNormal() bool {
	return c == Asset || c == Expense
}

// Account represents one entry in a tenant's chart of accounts.
// The account code (e.g. "4010") is the primary key within a tenant and is
// what voucher lines reference. Category never changes after creation.
type Account struct {
	Code        string          `json:"code"`     // Unique within the tenant (e.g. "4010")
	TenantID    string          `json:"tenantID"` // Owning user
	Name        string          `json:"name"`     // Display label
	Category    AccountCategory `json:"category"` // ASSET, LIABILITY, etc. Immutable.
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"` // Soft delete flag
	AuditFields
}
