package ledger

import (
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChartOfAccounts is an explicit code -> Account lookup, built once from the
// account table and passed to the aggregation functions. Lookups for codes
// outside the chart simply miss; the engine tolerates orphan references.
type ChartOfAccounts map[string]domain.Account

// NewChartOfAccounts builds a chart from a slice of accounts. Later
// duplicates of the same code win, matching last-write semantics of the
// underlying store.
func NewChartOfAccounts(accounts []domain.Account) ChartOfAccounts {
	chart := make(ChartOfAccounts, len(accounts))
	for _, acc := range accounts {
		chart[acc.Code] = acc
	}
	return chart
}

// Category returns the category for an account code, reporting whether the
// code exists in the chart.
func (c ChartOfAccounts) Category(code string) (domain.AccountCategory, bool) {
	acc, ok := c[code]
	if !ok {
		return "", false
	}
	return acc.Category, true
}

// NaturalBalance converts a debit-positive balance into the account's
// conventional sign: credit-normal categories (Liability, Equity, Revenue)
// are negated so that their usual credit balances read positive.
func NaturalBalance(category domain.AccountCategory, debitPositive decimal.Decimal) decimal.Decimal {
	if category.IsDebitNormal() {
		return debitPositive
	}
	return debitPositive.Neg()
}
