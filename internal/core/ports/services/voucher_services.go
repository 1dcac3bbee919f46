package services

import (
	"context"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

// VoucherSvcFacade owns the voucher lifecycle. Every operation is scoped to
// the calling user's tenant; cross-tenant reads surface as ErrNotFound.
type VoucherSvcFacade interface {
	// CreateVoucher validates (>= 2 lines, one-sided positive amounts,
	// debits == credits within one paisa) and persists a new voucher.
	CreateVoucher(ctx context.Context, tenantID string, req dto.CreateVoucherRequest, creatorUserID string) (*domain.Voucher, error)

	GetVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.Voucher, error)

	ListVouchers(ctx context.Context, tenantID string, params dto.ListVouchersParams) ([]domain.Voucher, *string, error)

	// UpdateVoucher changes header fields only; rejected once reversed.
	UpdateVoucher(ctx context.Context, tenantID, voucherID string, req dto.UpdateVoucherRequest, updaterUserID string) (*domain.Voucher, error)

	// ReverseVoucher posts a mirror voucher cancelling the original and links
	// the two. A voucher can be reversed at most once.
	ReverseVoucher(ctx context.Context, tenantID, voucherID string, req dto.ReverseVoucherRequest, creatorUserID string) (*domain.Voucher, error)
}
