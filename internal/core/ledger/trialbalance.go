package ledger

import (
	"sort"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceCheck verifies the fundamental double-entry invariant across
// the whole snapshot: total debits equal total credits, within currency
// precision. The check is advisory. A false Balanced signals either that an
// unbalanced voucher was persisted or that an aggregation bug exists; it
// must be surfaced to the user but never blocks report rendering and never
// gets silently corrected.
func TrialBalanceCheck(vouchers []domain.Voucher) domain.TrialBalanceResult {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for _, v := range vouchers {
		for _, line := range v.Lines {
			totalDebits = totalDebits.Add(ParseAmount(line.Debit))
			totalCredits = totalCredits.Add(ParseAmount(line.Credit))
		}
	}

	diff := totalDebits.Sub(totalCredits)
	return domain.TrialBalanceResult{
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Difference:   diff,
		Balanced:     diff.Abs().LessThan(noiseFloor),
	}
}

// TrialBalanceRows converts aggregated balances into report rows: a positive
// (debit) balance fills the Debit column, a negative one the Credit column.
// Accounts outside the chart appear with an empty name and category. Rows
// are sorted by account code for deterministic output.
func TrialBalanceRows(balances Balances, chart ChartOfAccounts) []domain.TrialBalanceRow {
	rows := make([]domain.TrialBalanceRow, 0, len(balances))
	for code, bal := range balances {
		row := domain.TrialBalanceRow{
			AccountCode: code,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if acc, ok := chart[code]; ok {
			row.AccountName = acc.Name
			row.Category = acc.Category
		}
		if bal.IsNegative() {
			row.Credit = bal.Neg()
		} else {
			row.Debit = bal
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].AccountCode < rows[j].AccountCode
	})
	return rows
}
