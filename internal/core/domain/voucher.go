package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus indicates the state of a journal voucher.
type VoucherStatus string

const (
	Posted   VoucherStatus = "POSTED"
	Reversed VoucherStatus = "REVERSED"
)

// Voucher ID prefixes, one per transaction kind. The prefix is part of the
// voucher ID itself so report consumers can filter by kind without a join.
const (
	PrefixInvoice    = "INV-"  // sales invoice
	PrefixBill       = "BILL-" // purchase bill
	PrefixCreditNote = "CN-"
	PrefixDebitNote  = "DN-"
	PrefixJournal    = "JV-" // manual journal voucher
)

// KnownPrefixes lists every voucher kind prefix the system issues.
var KnownPrefixes = []string{PrefixInvoice, PrefixBill, PrefixCreditNote, PrefixDebitNote, PrefixJournal}

// Voucher kinds as accepted on the API surface.
const (
	KindInvoice    = "INVOICE"
	KindBill       = "BILL"
	KindCreditNote = "CREDIT_NOTE"
	KindDebitNote  = "DEBIT_NOTE"
	KindJournal    = "JOURNAL"
)

var kindPrefixes = map[string]string{
	KindInvoice:    PrefixInvoice,
	KindBill:       PrefixBill,
	KindCreditNote: PrefixCreditNote,
	KindDebitNote:  PrefixDebitNote,
	KindJournal:    PrefixJournal,
}

// PrefixForKind maps an API voucher kind to its ID prefix.
func PrefixForKind(kind string) (string, bool) {
	p, ok := kindPrefixes[kind]
	return p, ok
}

// Voucher represents a single double-entry transaction composed of at least
// two lines. A voucher belongs to exactly one tenant and is never deleted;
// cancellation is modelled by posting a mirror voucher that points back at
// the original via Reverses.
type Voucher struct {
	VoucherID  string          `json:"voucherID"`  // Kind prefix + UUID (e.g. "INV-...")
	TenantID   string          `json:"tenantID"`   // Owning user (NON-NULL)
	Date       time.Time       `json:"date"`       // Calendar date of the transaction
	Narration  string          `json:"narration"`  // Free-text description
	Lines      []VoucherLine   `json:"lines"`      // len >= 2; often loaded separately
	Amount     decimal.Decimal `json:"amount"`     // Denormalized total (sum of debits), display only
	CustomerID *string         `json:"customerID"` // Optional party reference
	VendorID   *string         `json:"vendorID"`   // Optional party reference
	Reverses   *string         `json:"reverses"`   // VoucherID this voucher cancels
	ReversedBy *string         `json:"reversedBy"` // VoucherID of the voucher that cancelled this one
	Status     VoucherStatus   `json:"status"`     // Default: POSTED
	AuditFields
}

// Kind returns the ID prefix of the voucher, including the trailing dash,
// or "" when the ID carries no known prefix.
func (v Voucher) Kind() string {
	for _, p := range KnownPrefixes {
		if strings.HasPrefix(v.VoucherID, p) {
			return p
		}
	}
	return ""
}

// IsReversal reports whether this voucher cancels another voucher.
func (v Voucher) IsReversal() bool {
	return v.Reverses != nil && *v.Reverses != ""
}

// VoucherLine is a single debit or credit within a voucher, affecting one
// account. Debit and Credit keep the store's string representation; the
// ledger engine owns decimal parsing so that malformed values degrade to
// zero instead of failing a whole report.
type VoucherLine struct {
	LineID     string `json:"lineID"`
	VoucherID  string `json:"voucherID"`  // FK -> Voucher.voucherID
	Account    string `json:"account"`    // References Account.code; orphans tolerated
	Debit      string `json:"debit"`      // Decimal string, "0" when the line credits
	Credit     string `json:"credit"`     // Decimal string, "0" when the line debits
	CostCentre string `json:"costCentre"` // Optional departmental tag
	Narration  string `json:"narration"`
	AuditFields
}
