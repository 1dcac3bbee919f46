package ledger_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voucher(id string, lines ...domain.VoucherLine) domain.Voucher {
	return domain.Voucher{
		VoucherID: id,
		TenantID:  "tenant-1",
		Date:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:    domain.Posted,
		Lines:     lines,
	}
}

func line(account, debit, credit string) domain.VoucherLine {
	return domain.VoucherLine{Account: account, Debit: debit, Credit: credit}
}

func TestAggregate_SingleVoucher(t *testing.T) {
	vouchers := []domain.Voucher{
		voucher("JV-1",
			line("1010", "100.00", "0"),
			line("4010", "0", "100.00"),
		),
	}

	balances := ledger.Aggregate(vouchers, nil)

	require.Len(t, balances, 2)
	assert.True(t, balances["1010"].Equal(decimal.RequireFromString("100.00")), "got %s", balances["1010"])
	assert.True(t, balances["4010"].Equal(decimal.RequireFromString("-100.00")), "got %s", balances["4010"])
}

func TestAggregate_RepeatedVouchersAccumulate(t *testing.T) {
	v := voucher("JV-1",
		line("5010", "50.00", "0"),
		line("1020", "0", "50.00"),
	)
	v2 := v
	v2.VoucherID = "JV-2"

	balances := ledger.Aggregate([]domain.Voucher{v, v2}, nil)

	assert.True(t, balances["5010"].Equal(decimal.RequireFromString("100.00")))
	assert.True(t, balances["1020"].Equal(decimal.RequireFromString("-100.00")))
}

func TestAggregate_Commutative(t *testing.T) {
	vouchers := []domain.Voucher{
		voucher("INV-1", line("1010", "118.00", "0"), line("4010", "0", "100.00"), line("2310", "0", "18.00")),
		voucher("BILL-1", line("5010", "40.00", "0"), line("2010", "0", "40.00")),
		voucher("JV-1", line("1020", "7.25", "0"), line("4020", "0", "7.25")),
		voucher("CN-1", line("4010", "10.00", "0"), line("1010", "0", "10.00")),
	}

	want := ledger.Aggregate(vouchers, nil)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.Voucher, len(vouchers))
		copy(shuffled, vouchers)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := ledger.Aggregate(shuffled, nil)
		require.Len(t, got, len(want))
		for code, bal := range want {
			assert.True(t, got[code].Equal(bal), "account %s: want %s got %s", code, bal, got[code])
		}
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	balances := ledger.Aggregate(nil, nil)
	assert.Empty(t, balances)

	balances = ledger.Aggregate([]domain.Voucher{}, &ledger.Filter{ExcludeReversals: true})
	assert.Empty(t, balances)
}

func TestAggregate_ReversalCancels(t *testing.T) {
	origID := "INV-1"
	original := voucher(origID,
		line("1010", "250.00", "0"),
		line("4010", "0", "250.00"),
	)
	reversal := voucher("JV-2",
		line("1010", "0", "250.00"),
		line("4010", "250.00", "0"),
	)
	reversal.Reverses = &origID

	balances := ledger.Aggregate([]domain.Voucher{original, reversal}, nil)

	// Mirror lines cancel to zero for every touched account.
	for code, bal := range balances {
		assert.True(t, bal.IsZero(), "account %s: got %s", code, bal)
	}
}

func TestAggregate_ExcludeReversalsDropsBothSides(t *testing.T) {
	origID := "INV-1"
	original := voucher(origID, line("1010", "250.00", "0"), line("4010", "0", "250.00"))
	reversal := voucher("JV-2", line("1010", "0", "250.00"), line("4010", "250.00", "0"))
	reversal.Reverses = &origID
	unrelated := voucher("INV-3", line("1010", "99.00", "0"), line("4010", "0", "99.00"))

	balances := ledger.Aggregate([]domain.Voucher{original, reversal, unrelated}, &ledger.Filter{ExcludeReversals: true})

	require.Len(t, balances, 2)
	assert.True(t, balances["1010"].Equal(decimal.RequireFromString("99.00")))
	assert.True(t, balances["4010"].Equal(decimal.RequireFromString("-99.00")))
}

func TestAggregate_UnknownAccountProducesOrphanEntry(t *testing.T) {
	vouchers := []domain.Voucher{
		voucher("JV-1", line("9999", "10.00", "0"), line("1010", "0", "10.00")),
	}

	balances := ledger.Aggregate(vouchers, nil)

	// The orphan code still accumulates; silent acceptance, not an error.
	assert.True(t, balances["9999"].Equal(decimal.RequireFromString("10.00")))
}

func TestAggregate_MalformedAmountsTreatedAsZero(t *testing.T) {
	vouchers := []domain.Voucher{
		voucher("JV-1",
			line("1010", "abc", "0"),
			line("4010", "", "not-a-number"),
			line("5010", "25.00", "0"),
			line("2010", "0", "25.00"),
		),
	}

	balances := ledger.Aggregate(vouchers, nil)

	assert.True(t, balances["1010"].IsZero())
	assert.True(t, balances["4010"].IsZero())
	assert.True(t, balances["5010"].Equal(decimal.RequireFromString("25.00")))
}

func TestAggregate_ClampsNearZeroNoise(t *testing.T) {
	vouchers := []domain.Voucher{
		voucher("JV-1", line("1010", "0.004", "0"), line("4010", "0", "0.004")),
	}

	balances := ledger.Aggregate(vouchers, nil)

	assert.True(t, balances["1010"].IsZero(), "sub-paisa noise must clamp to zero, got %s", balances["1010"])
	assert.True(t, balances["4010"].IsZero())
}

func TestAggregate_PrefixFilter(t *testing.T) {
	vouchers := []domain.Voucher{
		voucher("INV-1", line("1010", "100.00", "0"), line("4010", "0", "100.00")),
		voucher("BILL-1", line("5010", "60.00", "0"), line("2010", "0", "60.00")),
	}

	balances := ledger.Aggregate(vouchers, &ledger.Filter{IDPrefixes: []string{domain.PrefixInvoice}})

	require.Len(t, balances, 2)
	assert.True(t, balances["1010"].Equal(decimal.RequireFromString("100.00")))
	_, touched := balances["5010"]
	assert.False(t, touched)
}

func TestAggregate_DateRangeFilter(t *testing.T) {
	early := voucher("JV-1", line("1010", "10.00", "0"), line("4010", "0", "10.00"))
	early.Date = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	late := voucher("JV-2", line("1010", "20.00", "0"), line("4010", "0", "20.00"))
	late.Date = time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	balances := ledger.Aggregate([]domain.Voucher{early, late}, &ledger.Filter{From: &from, To: &to})

	assert.True(t, balances["1010"].Equal(decimal.RequireFromString("20.00")))
}

func TestAggregate_CostCentreFilter(t *testing.T) {
	v := voucher("JV-1",
		domain.VoucherLine{Account: "5010", Debit: "30.00", Credit: "0", CostCentre: "CC1"},
		domain.VoucherLine{Account: "5010", Debit: "70.00", Credit: "0", CostCentre: "CC2"},
		line("1010", "0", "100.00"),
	)

	balances := ledger.Aggregate([]domain.Voucher{v}, &ledger.Filter{CostCentre: "CC1"})

	assert.True(t, balances["5010"].Equal(decimal.RequireFromString("30.00")))
	_, touched := balances["1010"]
	assert.False(t, touched, "untagged line must not match a cost-centre filter")
}

func TestAggregate_CategoryFilter(t *testing.T) {
	chart := ledger.NewChartOfAccounts([]domain.Account{
		{Code: "1010", Category: domain.Asset},
		{Code: "4010", Category: domain.Revenue},
	})
	v := voucher("INV-1", line("1010", "100.00", "0"), line("4010", "0", "100.00"))

	balances := ledger.Aggregate([]domain.Voucher{v}, &ledger.Filter{Category: domain.Revenue, Chart: chart})

	require.Len(t, balances, 1)
	assert.True(t, balances["4010"].Equal(decimal.RequireFromString("-100.00")))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100.00", "100.00"},
		{" 42.5 ", "42.5"},
		{"-3.14", "-3.14"},
		{"", "0"},
		{"abc", "0"},
		{"12,000", "0"}, // grouped input is display formatting, not storage
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, ledger.ParseAmount(tt.in).Equal(decimal.RequireFromString(tt.want)))
		})
	}
}

func TestNaturalBalance(t *testing.T) {
	hundred := decimal.RequireFromString("100")

	assert.True(t, ledger.NaturalBalance(domain.Asset, hundred).Equal(hundred))
	assert.True(t, ledger.NaturalBalance(domain.Expense, hundred).Equal(hundred))
	assert.True(t, ledger.NaturalBalance(domain.Revenue, hundred.Neg()).Equal(hundred))
	assert.True(t, ledger.NaturalBalance(domain.Liability, hundred.Neg()).Equal(hundred))
	assert.True(t, ledger.NaturalBalance(domain.Equity, hundred.Neg()).Equal(hundred))
}
