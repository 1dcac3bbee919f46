package dto

import "time"

// ReportRangeParams bounds a report to an inclusive date window. Either side
// may be omitted.
type ReportRangeParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// TrialBalanceRowResponse is one account row of the trial balance, with the
// balance shown in whichever column matches its sign.
type TrialBalanceRowResponse struct {
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName,omitempty"`
	Category    string `json:"category,omitempty"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

// TrialBalanceResponse is the full trial balance with its equality check.
type TrialBalanceResponse struct {
	Rows         []TrialBalanceRowResponse `json:"rows"`
	TotalDebits  string                    `json:"totalDebits"`
	TotalCredits string                    `json:"totalCredits"`
	Difference   string                    `json:"difference"`
	Balanced     bool                      `json:"balanced"`
}

// CostCentreSummaryRowResponse is one cost centre's income/expense rollup.
type CostCentreSummaryRowResponse struct {
	CostCentreID string `json:"costCentreID"`
	Name         string `json:"name"`
	Income       string `json:"income"`
	Expense      string `json:"expense"`
	Net          string `json:"net"`
}

// CostCentreSummaryResponse lists every active cost centre's rollup.
type CostCentreSummaryResponse struct {
	Rows []CostCentreSummaryRowResponse `json:"rows"`
}

// AccountAmountResponse pairs an account with an aggregated amount.
type AccountAmountResponse struct {
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName,omitempty"`
	Amount      string `json:"amount"`
}

// ProfitAndLossResponse reports revenue, expenses and their difference for a
// date window.
type ProfitAndLossResponse struct {
	Revenue   []AccountAmountResponse `json:"revenue"`
	Expenses  []AccountAmountResponse `json:"expenses"`
	NetProfit string                  `json:"netProfit"`
}

// TurnoverResponse reports gross/net turnover for sales or purchases.
type TurnoverResponse struct {
	Gross        string `json:"gross"`
	Notes        string `json:"notes"`
	Net          string `json:"net"`
	VoucherCount int    `json:"voucherCount"`
}
