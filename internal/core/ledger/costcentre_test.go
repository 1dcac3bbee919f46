package ledger_test

import (
	"testing"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChart() ledger.ChartOfAccounts {
	return ledger.NewChartOfAccounts([]domain.Account{
		{Code: "1010", Name: "Cash", Category: domain.Asset},
		{Code: "4010", Name: "Sales", Category: domain.Revenue},
		{Code: "5010", Name: "Office Expenses", Category: domain.Expense},
		{Code: "3010", Name: "Capital", Category: domain.Equity},
	})
}

func TestCostCentreSummary_IncomeExpenseNet(t *testing.T) {
	centres := []domain.CostCentre{{CostCentreID: "CC1", Name: "Delhi Branch"}}

	vouchers := []domain.Voucher{
		voucher("INV-1",
			domain.VoucherLine{Account: "1010", Debit: "1000.00", Credit: "0"},
			domain.VoucherLine{Account: "4010", Debit: "0", Credit: "1000.00", CostCentre: "CC1"},
		),
		voucher("BILL-1",
			domain.VoucherLine{Account: "5010", Debit: "400.00", Credit: "0", CostCentre: "CC1"},
			domain.VoucherLine{Account: "1010", Debit: "0", Credit: "400.00"},
		),
	}

	rows := ledger.CostCentreSummary(vouchers, centres, testChart())

	require.Len(t, rows, 1)
	assert.Equal(t, "CC1", rows[0].CostCentreID)
	assert.True(t, rows[0].Income.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, rows[0].Expense.Equal(decimal.RequireFromString("400.00")))
	assert.True(t, rows[0].Net.Equal(decimal.RequireFromString("600.00")))
}

func TestCostCentreSummary_NonRevenueExpenseLinesIgnored(t *testing.T) {
	centres := []domain.CostCentre{{CostCentreID: "CC1", Name: "Delhi Branch"}}

	vouchers := []domain.Voucher{
		voucher("JV-1",
			// Equity and Asset lines tagged with a centre are neither income nor expense.
			domain.VoucherLine{Account: "3010", Debit: "0", Credit: "500.00", CostCentre: "CC1"},
			domain.VoucherLine{Account: "1010", Debit: "500.00", Credit: "0", CostCentre: "CC1"},
		),
	}

	rows := ledger.CostCentreSummary(vouchers, centres, testChart())

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Income.IsZero())
	assert.True(t, rows[0].Expense.IsZero())
	assert.True(t, rows[0].Net.IsZero())
}

func TestCostCentreSummary_UnknownTagAndUntaggedLinesSkipped(t *testing.T) {
	centres := []domain.CostCentre{{CostCentreID: "CC1", Name: "Delhi Branch"}}

	vouchers := []domain.Voucher{
		voucher("INV-1",
			domain.VoucherLine{Account: "4010", Debit: "0", Credit: "100.00", CostCentre: "CC-UNKNOWN"},
			domain.VoucherLine{Account: "4010", Debit: "0", Credit: "200.00"}, // untagged
			domain.VoucherLine{Account: "1010", Debit: "300.00", Credit: "0"},
		),
	}

	rows := ledger.CostCentreSummary(vouchers, centres, testChart())

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Income.IsZero())
}

func TestCostCentreSummary_EmptyCentresYieldZeroRows(t *testing.T) {
	centres := []domain.CostCentre{
		{CostCentreID: "CC1", Name: "Delhi Branch"},
		{CostCentreID: "CC2", Name: "Mumbai Branch"},
	}

	rows := ledger.CostCentreSummary(nil, centres, testChart())

	require.Len(t, rows, 2)
	assert.Equal(t, "CC1", rows[0].CostCentreID)
	assert.Equal(t, "CC2", rows[1].CostCentreID)
	for _, row := range rows {
		assert.True(t, row.Income.IsZero())
		assert.True(t, row.Expense.IsZero())
		assert.True(t, row.Net.IsZero())
	}
}
