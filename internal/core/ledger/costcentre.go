package ledger

import (
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CostCentreSummary groups voucher lines by cost-centre tag and account
// category to compute income, expense and net per centre.
//
// Revenue lines contribute credit-debit to income; Expense lines contribute
// debit-credit to expense. A tagged line on an account of any other category
// (or outside the chart) is ignored for this summary; that is not an error.
// Rows come back in the order of the costCentres argument, one per centre,
// including centres with no activity.
func CostCentreSummary(vouchers []domain.Voucher, costCentres []domain.CostCentre, chart ChartOfAccounts) []domain.CostCentreSummaryRow {
	type totals struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	byCentre := make(map[string]*totals, len(costCentres))
	for _, cc := range costCentres {
		byCentre[cc.CostCentreID] = &totals{income: decimal.Zero, expense: decimal.Zero}
	}

	for _, v := range vouchers {
		for _, line := range v.Lines {
			if line.CostCentre == "" {
				continue
			}
			t, ok := byCentre[line.CostCentre]
			if !ok {
				// Tag references a centre outside the provided list.
				continue
			}
			cat, ok := chart.Category(line.Account)
			if !ok {
				continue
			}
			switch cat {
			case domain.Revenue:
				t.income = t.income.Add(ParseAmount(line.Credit).Sub(ParseAmount(line.Debit)))
			case domain.Expense:
				t.expense = t.expense.Add(ParseAmount(line.Debit).Sub(ParseAmount(line.Credit)))
			}
		}
	}

	rows := make([]domain.CostCentreSummaryRow, 0, len(costCentres))
	for _, cc := range costCentres {
		t := byCentre[cc.CostCentreID]
		income := clampNoise(t.income)
		expense := clampNoise(t.expense)
		rows = append(rows, domain.CostCentreSummaryRow{
			CostCentreID: cc.CostCentreID,
			Name:         cc.Name,
			Income:       income,
			Expense:      expense,
			Net:          income.Sub(expense),
		})
	}
	return rows
}
