package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus indicates the state of a voucher row.
type VoucherStatus string

// Voucher is the persisted header of a double-entry voucher.
type Voucher struct {
	VoucherID  string          `json:"voucherID"` // Kind prefix + UUID
	TenantID   string          `json:"tenantID"`
	Date       time.Time       `json:"date"`
	Narration  string          `json:"narration"`
	Amount     decimal.Decimal `json:"amount"` // Denormalized sum of debits
	CustomerID *string         `json:"customerID"`
	VendorID   *string         `json:"vendorID"`
	Reverses   *string         `json:"reverses"`
	ReversedBy *string         `json:"reversedBy"`
	Status     VoucherStatus   `json:"status"`
	AuditFields
}

// VoucherLine is one persisted debit or credit leg. Amounts stay as text in
// storage; NUMERIC columns are read back as strings.
type VoucherLine struct {
	LineID     string `json:"lineID"`
	VoucherID  string `json:"voucherID"`
	Account    string `json:"account"`
	Debit      string `json:"debit"`
	Credit     string `json:"credit"`
	CostCentre string `json:"costCentre"`
	Narration  string `json:"narration"`
	AuditFields
}
