package repositories

import (
	"context"
	"time"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
)

// ListVouchersQuery bounds one page of a voucher listing. KindPrefix filters
// by voucher ID prefix (e.g. "INV-"); From/To bound the voucher date
// inclusively. Zero values leave the dimension unfiltered.
type ListVouchersQuery struct {
	Limit            int
	NextToken        *string
	IncludeReversals bool
	KindPrefix       string
	From             *time.Time
	To               *time.Time
}

// VoucherRepositoryFacade persists journal vouchers and their lines.
// SaveVoucher and SaveReversal must be atomic per voucher: all lines are
// written or none are.
type VoucherRepositoryFacade interface {
	// SaveVoucher inserts a voucher together with its lines in one transaction.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error

	// SaveReversal inserts the reversing voucher (with lines) and marks the
	// original voucher REVERSED with its ReversedBy link, atomically.
	SaveReversal(ctx context.Context, reversal domain.Voucher, originalVoucherID string, updatedBy string, updatedAt time.Time) error

	// FindVoucherByID returns the voucher with its lines populated.
	// Returns apperrors.ErrNotFound when absent or owned by another tenant.
	FindVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.Voucher, error)

	// ListVouchers returns a page of vouchers (lines populated) ordered by
	// date desc, created_at desc, plus a next-page token when more remain.
	ListVouchers(ctx context.Context, tenantID string, q ListVouchersQuery) ([]domain.Voucher, *string, error)

	// ListAllVouchers returns the tenant's full voucher snapshot with lines,
	// for report recomputation.
	ListAllVouchers(ctx context.Context, tenantID string) ([]domain.Voucher, error)

	// UpdateVoucher persists narration/date changes to a voucher header.
	UpdateVoucher(ctx context.Context, voucher domain.Voucher) error
}
