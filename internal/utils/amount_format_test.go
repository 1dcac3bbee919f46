package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gstbooks/gstbooks_backend/internal/utils"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"100000", "1,00,000.00"},
		{"12345678.5", "1,23,45,678.50"},
		{"-1234567.89", "-12,34,567.89"},
	}
	for _, tc := range cases {
		got := utils.FormatINR(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "input %s", tc.in)
	}
}

func TestFormatPaise(t *testing.T) {
	assert.Equal(t, "12.35", utils.FormatPaise(decimal.RequireFromString("12.345")))
	assert.Equal(t, "5.00", utils.FormatPaise(decimal.RequireFromString("5")))
}
