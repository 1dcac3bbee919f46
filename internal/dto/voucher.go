package dto

import (
	"time"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
)

// CreateVoucherLineRequest is one debit or credit leg of a new voucher.
// Amounts travel as decimal strings; exactly one of Debit/Credit must be
// a positive amount.
type CreateVoucherLineRequest struct {
	AccountCode string `json:"accountCode" binding:"required"`
	Debit       string `json:"debit,omitempty"`
	Credit      string `json:"credit,omitempty"`
	CostCentre  string `json:"costCentre,omitempty"`
	Narration   string `json:"narration,omitempty" binding:"max=255"`
}

// CreateVoucherRequest posts a new balanced voucher.
type CreateVoucherRequest struct {
	Kind       string                     `json:"kind" binding:"required,oneof=INVOICE BILL CREDIT_NOTE DEBIT_NOTE JOURNAL"`
	Date       time.Time                  `json:"date" binding:"required"`
	Narration  string                     `json:"narration" binding:"max=255"`
	CustomerID *string                    `json:"customerID,omitempty"`
	VendorID   *string                    `json:"vendorID,omitempty"`
	Lines      []CreateVoucherLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateVoucherRequest changes header fields of a posted voucher. Lines are
// immutable; corrections go through reversal.
type UpdateVoucherRequest struct {
	Date      *time.Time `json:"date,omitempty"`
	Narration *string    `json:"narration,omitempty" binding:"omitempty,max=255"`
}

// ReverseVoucherRequest posts a mirror voucher cancelling the original.
type ReverseVoucherRequest struct {
	Date      time.Time `json:"date" binding:"required"`
	Narration string    `json:"narration,omitempty" binding:"max=255"`
}

// ListVouchersParams carries pagination and filters for voucher listing.
type ListVouchersParams struct {
	Limit            int        `form:"limit"`
	NextToken        *string    `form:"nextToken"`
	IncludeReversals bool       `form:"includeReversals"`
	Kind             string     `form:"kind" binding:"omitempty,oneof=INVOICE BILL CREDIT_NOTE DEBIT_NOTE JOURNAL"`
	From             *time.Time `form:"from" time_format:"2006-01-02"`
	To               *time.Time `form:"to" time_format:"2006-01-02"`
}

// VoucherLineResponse mirrors a persisted voucher line.
type VoucherLineResponse struct {
	LineID     string `json:"lineID"`
	Account    string `json:"account"`
	Debit      string `json:"debit"`
	Credit     string `json:"credit"`
	CostCentre string `json:"costCentre,omitempty"`
	Narration  string `json:"narration,omitempty"`
}

// VoucherResponse mirrors a persisted voucher with its lines.
type VoucherResponse struct {
	VoucherID  string                `json:"voucherID"`
	Kind       string                `json:"kind"`
	Date       time.Time             `json:"date"`
	Narration  string                `json:"narration"`
	Amount     string                `json:"amount"`
	CustomerID *string               `json:"customerID,omitempty"`
	VendorID   *string               `json:"vendorID,omitempty"`
	Reverses   *string               `json:"reverses,omitempty"`
	ReversedBy *string               `json:"reversedBy,omitempty"`
	Status     domain.VoucherStatus  `json:"status"`
	Lines      []VoucherLineResponse `json:"lines"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// ListVouchersResponse is one page of vouchers.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}
