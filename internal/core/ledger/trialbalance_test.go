package ledger_test

import (
	"math/rand"
	"testing"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialBalanceCheck_EmptyLedger(t *testing.T) {
	result := ledger.TrialBalanceCheck(nil)

	assert.True(t, result.TotalDebits.IsZero())
	assert.True(t, result.TotalCredits.IsZero())
	assert.True(t, result.Difference.IsZero())
	assert.True(t, result.Balanced)
}

func TestTrialBalanceCheck_BalancedRegardlessOfOrder(t *testing.T) {
	vouchers := []domain.Voucher{
		voucher("INV-1", line("1010", "118.00", "0"), line("4010", "0", "100.00"), line("2310", "0", "18.00")),
		voucher("BILL-1", line("5010", "60.00", "0"), line("2010", "0", "60.00")),
		voucher("JV-1", line("1020", "5.00", "0"), line("1010", "0", "5.00")),
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(vouchers), func(a, b int) { vouchers[a], vouchers[b] = vouchers[b], vouchers[a] })

		result := ledger.TrialBalanceCheck(vouchers)
		assert.True(t, result.Balanced)
		assert.True(t, result.TotalDebits.Equal(decimal.RequireFromString("183.00")))
		assert.True(t, result.TotalCredits.Equal(decimal.RequireFromString("183.00")))
	}
}

func TestTrialBalanceCheck_OnePaisaOff(t *testing.T) {
	vouchers := []domain.Voucher{
		voucher("JV-1", line("1010", "100.00", "0"), line("4010", "0", "99.99")),
	}

	result := ledger.TrialBalanceCheck(vouchers)

	assert.False(t, result.Balanced)
	assert.True(t, result.Difference.Equal(decimal.RequireFromString("0.01")), "got %s", result.Difference)
	assert.True(t, result.TotalDebits.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, result.TotalCredits.Equal(decimal.RequireFromString("99.99")))
}

func TestTrialBalanceCheck_SubPrecisionDifferenceIsBalanced(t *testing.T) {
	vouchers := []domain.Voucher{
		voucher("JV-1", line("1010", "100.000", "0"), line("4010", "0", "99.995")),
	}

	result := ledger.TrialBalanceCheck(vouchers)

	// Below the 0.01 epsilon the ledger counts as balanced.
	assert.True(t, result.Balanced)
}

func TestTrialBalanceCheck_MalformedAmountsCountAsZero(t *testing.T) {
	vouchers := []domain.Voucher{
		voucher("JV-1", line("1010", "oops", "0"), line("4010", "0", "50.00")),
	}

	result := ledger.TrialBalanceCheck(vouchers)

	assert.False(t, result.Balanced)
	assert.True(t, result.TotalDebits.IsZero())
	assert.True(t, result.TotalCredits.Equal(decimal.RequireFromString("50.00")))
}

func TestTrialBalanceRows(t *testing.T) {
	chart := ledger.NewChartOfAccounts([]domain.Account{
		{Code: "1010", Name: "Cash", Category: domain.Asset},
		{Code: "4010", Name: "Sales", Category: domain.Revenue},
	})
	balances := ledger.Balances{
		"1010": decimal.RequireFromString("100.00"),
		"4010": decimal.RequireFromString("-100.00"),
		"9999": decimal.RequireFromString("5.00"),
	}

	rows := ledger.TrialBalanceRows(balances, chart)

	require.Len(t, rows, 3)
	// Sorted by account code.
	assert.Equal(t, "1010", rows[0].AccountCode)
	assert.Equal(t, "Cash", rows[0].AccountName)
	assert.True(t, rows[0].Debit.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, rows[0].Credit.IsZero())

	assert.Equal(t, "4010", rows[1].AccountCode)
	assert.True(t, rows[1].Credit.Equal(decimal.RequireFromString("100.00")), "credit-side balance shows positive in the credit column")
	assert.True(t, rows[1].Debit.IsZero())

	// Orphan code keeps its balance but has no name or category.
	assert.Equal(t, "9999", rows[2].AccountCode)
	assert.Empty(t, rows[2].AccountName)
	assert.Empty(t, string(rows[2].Category))
}
