package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account row in a trial balance report.
// Exactly one of Debit/Credit is nonzero for an account with activity.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"` // "" for orphan codes outside the chart
	Category    AccountCategory `json:"category"`    // "" for orphan codes
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResult is the platform-wide double-entry consistency check.
// A false Balanced is a data-integrity warning, never an error: reports
// still render and nothing is silently corrected.
type TrialBalanceResult struct {
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Difference   decimal.Decimal `json:"difference"` // TotalDebits - TotalCredits
	Balanced     bool            `json:"balanced"`
}

// TrialBalanceReport combines per-account rows with the advisory totals check.
type TrialBalanceReport struct {
	Rows   []TrialBalanceRow  `json:"rows"`
	Result TrialBalanceResult `json:"result"`
}

// CostCentreSummaryRow aggregates income and expense for one cost centre.
type CostCentreSummaryRow struct {
	CostCentreID string          `json:"costCentreID"`
	Name         string          `json:"name"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Net          decimal.Decimal `json:"net"` // Income - Expense
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// PAndLReport represents a profit and loss report.
type PAndLReport struct {
	Revenue   []AccountAmount `json:"revenue"`
	Expenses  []AccountAmount `json:"expenses"`
	NetProfit decimal.Decimal `json:"netProfit"` // Total revenue minus total expenses
}

// TurnoverAnalysis summarises voucher activity for one side of the books:
// sales (invoices net of credit notes) or purchases (bills net of debit notes).
type TurnoverAnalysis struct {
	Gross        decimal.Decimal `json:"gross"`
	Notes        decimal.Decimal `json:"notes"` // Credit notes for sales, debit notes for purchases
	Net          decimal.Decimal `json:"net"`
	VoucherCount int             `json:"voucherCount"`
}
