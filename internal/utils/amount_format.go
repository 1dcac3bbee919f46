package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPaise rounds an amount to two decimal places (paise precision) and
// returns its plain string form. All report amounts go through this before
// hitting the wire.
func FormatPaise(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}

// FormatINR renders an amount with Indian digit grouping, e.g.
// 12345678.50 -> "1,23,45,678.50". The last three integer digits form one
// group, every pair before that forms another.
func FormatINR(amount decimal.Decimal) string {
	s := amount.Round(2).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(append(groups, tail), ",")
	}

	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
