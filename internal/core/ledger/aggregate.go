// Package ledger turns a flat snapshot of journal vouchers into account
// balances, trial-balance totals and cost-centre summaries.
//
// Everything here is a pure fold over an immutable voucher slice: no hidden
// state, no I/O, deterministic for any input order. Callers re-run the fold
// whenever they observe a new snapshot; a stale result is simply discarded.
package ledger

import (
	"strings"
	"time"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// noiseFloor is the currency precision threshold. Balances and differences
// smaller than this are accounting noise from decimal string parsing and are
// clamped to exactly zero before display.
var noiseFloor = decimal.RequireFromString("0.01")

// Balances maps account codes to signed, debit-positive balances.
// Credit-normal accounts (Revenue, Liability, Equity) will typically carry
// negative values here; consumers apply NaturalBalance for display.
type Balances map[string]decimal.Decimal

// Filter narrows the voucher set before aggregation. The zero value filters
// nothing. All criteria are conjunctive.
type Filter struct {
	IDPrefixes       []string                // Keep vouchers whose ID starts with any of these
	CostCentre       string                  // Keep only lines tagged with this cost centre
	From, To         *time.Time              // Inclusive voucher-date range
	Category         domain.AccountCategory  // Keep only lines on accounts of this category; needs Chart
	Chart            ChartOfAccounts         // Required for Category filtering
	ExcludeReversals bool                    // Drop reversing vouchers and the vouchers they reverse
}

// ParseAmount parses a monetary string leniently: malformed or empty values
// are treated as zero. This mirrors the store's tolerance for dirty data;
// strict validation belongs at the write boundary, not in report folds.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// clampNoise zeroes values whose magnitude is below the currency precision.
func clampNoise(d decimal.Decimal) decimal.Decimal {
	if d.Abs().LessThan(noiseFloor) {
		return decimal.Zero
	}
	return d
}

// LineDelta is the debit-positive contribution of a single line.
func LineDelta(line domain.VoucherLine) decimal.Decimal {
	return ParseAmount(line.Debit).Sub(ParseAmount(line.Credit))
}

// Aggregate folds voucher lines into per-account signed balances
// (debit-positive for every account regardless of category). Aggregation is
// commutative, so voucher order never matters. A line referencing an account
// code outside the chart still produces a balance entry under that code.
func Aggregate(vouchers []domain.Voucher, f *Filter) Balances {
	balances := make(Balances)

	var reversalPair map[string]bool
	if f != nil && f.ExcludeReversals {
		reversalPair = reversedSet(vouchers)
	}

	for _, v := range vouchers {
		if !voucherMatches(v, f, reversalPair) {
			continue
		}
		for _, line := range v.Lines {
			if !lineMatches(line, f) {
				continue
			}
			balances[line.Account] = balances[line.Account].Add(LineDelta(line))
		}
	}

	for code, bal := range balances {
		balances[code] = clampNoise(bal)
	}
	return balances
}

// reversedSet collects the IDs of reversing vouchers and of the vouchers
// they reverse, so both sides of a cancellation pair can be dropped.
func reversedSet(vouchers []domain.Voucher) map[string]bool {
	set := make(map[string]bool)
	for _, v := range vouchers {
		if v.IsReversal() {
			set[v.VoucherID] = true
			set[*v.Reverses] = true
		}
	}
	return set
}

func voucherMatches(v domain.Voucher, f *Filter, reversalPair map[string]bool) bool {
	if f == nil {
		return true
	}
	if reversalPair != nil && reversalPair[v.VoucherID] {
		return false
	}
	if len(f.IDPrefixes) > 0 {
		matched := false
		for _, p := range f.IDPrefixes {
			if strings.HasPrefix(v.VoucherID, p) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if f.From != nil && v.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && v.Date.After(*f.To) {
		return false
	}
	return true
}

func lineMatches(line domain.VoucherLine, f *Filter) bool {
	if f == nil {
		return true
	}
	if f.CostCentre != "" && line.CostCentre != f.CostCentre {
		return false
	}
	if f.Category != "" {
		cat, ok := f.Chart.Category(line.Account)
		if !ok || cat != f.Category {
			return false
		}
	}
	return true
}
