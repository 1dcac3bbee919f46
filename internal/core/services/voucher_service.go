package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portsrepo "github.com/gstbooks/gstbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

var (
	ErrVoucherUnbalanced  = errors.New("voucher lines do not balance: debits must equal credits")
	ErrVoucherMinLines    = errors.New("voucher must have at least two lines")
	ErrVoucherMinAccounts = errors.New("voucher must affect at least two different accounts")
	ErrLineAmountInvalid  = errors.New("voucher line must carry a positive amount on exactly one side")
	ErrUnknownKind        = errors.New("unknown voucher kind")
	ErrNotPosted          = errors.New("voucher must be in POSTED status")
	ErrAlreadyReversed    = errors.New("voucher has already been reversed")
	ErrReverseOfReversal  = errors.New("cannot reverse a voucher that is itself a reversal")
	ErrNarrationMissing   = errors.New("voucher narration is required")
)

// balanceEpsilon is one paisa. Writes are rejected when the debit and credit
// totals differ by this much or more.
var balanceEpsilon = decimal.RequireFromString("0.01")

// voucherService owns the voucher lifecycle.
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo: voucherRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// parseLineAmounts validates that exactly one side of a line carries a
// positive amount and returns (debit, credit). Write-side parsing is strict;
// the lenient parsing in the ledger engine only applies to data at rest.
func parseLineAmounts(line dto.CreateVoucherLineRequest) (decimal.Decimal, decimal.Decimal, error) {
	parse := func(s string) (decimal.Decimal, error) {
		if s == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(s)
	}

	debit, err := parse(line.Debit)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: invalid debit %q for account %s", apperrors.ErrValidation, line.Debit, line.AccountCode)
	}
	credit, err := parse(line.Credit)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: invalid credit %q for account %s", apperrors.ErrValidation, line.Credit, line.AccountCode)
	}

	debitSet := debit.IsPositive()
	creditSet := credit.IsPositive()
	if debit.IsNegative() || credit.IsNegative() || debitSet == creditSet {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: account %s", ErrLineAmountInvalid, line.AccountCode)
	}
	return debit, credit, nil
}

// CreateVoucher validates and persists a new balanced voucher.
func (s *voucherService) CreateVoucher(ctx context.Context, tenantID string, req dto.CreateVoucherRequest, creatorUserID string) (*domain.Voucher, error) {
	prefix, ok := domain.PrefixForKind(req.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, req.Kind)
	}

	if len(req.Lines) < 2 {
		return nil, ErrVoucherMinLines
	}
	if req.Narration == "" {
		return nil, ErrNarrationMissing
	}

	accountSet := make(map[string]bool)
	for _, line := range req.Lines {
		accountSet[line.AccountCode] = true
	}
	if len(accountSet) < 2 {
		return nil, ErrVoucherMinAccounts
	}

	now := time.Now().UTC()
	voucherID := prefix + uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	debitsSum := decimal.Zero
	creditsSum := decimal.Zero
	lines := make([]domain.VoucherLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		debit, credit, err := parseLineAmounts(lineReq)
		if err != nil {
			return nil, err
		}
		debitsSum = debitsSum.Add(debit)
		creditsSum = creditsSum.Add(credit)

		lines[i] = domain.VoucherLine{
			LineID:      uuid.NewString(),
			VoucherID:   voucherID,
			Account:     lineReq.AccountCode,
			Debit:       debit.String(),
			Credit:      credit.String(),
			CostCentre:  lineReq.CostCentre,
			Narration:   lineReq.Narration,
			AuditFields: audit,
		}
	}

	if debitsSum.Sub(creditsSum).Abs().GreaterThanOrEqual(balanceEpsilon) {
		return nil, fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			ErrVoucherUnbalanced, debitsSum.String(), creditsSum.String())
	}

	// Unknown account codes are accepted with a warning; reports tolerate
	// orphans. Known but inactive accounts are rejected.
	for code := range accountSet {
		account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogWarn(ctx, "Voucher references unknown account code", slog.String("account_code", code), slog.String("voucher_id", voucherID))
				continue
			}
			s.LogError(ctx, err, "Failed to look up account for voucher creation", slog.String("account_code", code))
			return nil, fmt.Errorf("failed to fetch account %s: %w", code, err)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, code)
		}
	}

	voucher := domain.Voucher{
		VoucherID:   voucherID,
		TenantID:    tenantID,
		Date:        req.Date,
		Narration:   req.Narration,
		Lines:       lines,
		Amount:      debitsSum,
		CustomerID:  req.CustomerID,
		VendorID:    req.VendorID,
		Status:      domain.Posted,
		AuditFields: audit,
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		s.LogError(ctx, err, "Failed to save voucher", slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	s.LogInfo(ctx, "Voucher created successfully", slog.String("voucher_id", voucherID), slog.String("kind", req.Kind))
	return &voucher, nil
}

// GetVoucherByID retrieves a voucher with its lines.
func (s *voucherService) GetVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, tenantID, voucherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find voucher by ID", slog.String("voucher_id", voucherID))
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	return voucher, nil
}

// ListVouchers retrieves a keyset-paginated page of vouchers, optionally
// filtered by kind and date window.
func (s *voucherService) ListVouchers(ctx context.Context, tenantID string, params dto.ListVouchersParams) ([]domain.Voucher, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	query := portsrepo.ListVouchersQuery{
		Limit:            limit,
		NextToken:        params.NextToken,
		IncludeReversals: params.IncludeReversals,
		From:             params.From,
		To:               params.To,
	}
	if params.Kind != "" {
		prefix, ok := domain.PrefixForKind(params.Kind)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownKind, params.Kind)
		}
		query.KindPrefix = prefix
	}

	vouchers, nextToken, err := s.voucherRepo.ListVouchers(ctx, tenantID, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers from repository")
		return nil, nil, fmt.Errorf("failed to retrieve vouchers: %w", err)
	}

	return vouchers, nextToken, nil
}

// UpdateVoucher changes the narration and/or date of a posted voucher.
func (s *voucherService) UpdateVoucher(ctx context.Context, tenantID, voucherID string, req dto.UpdateVoucherRequest, updaterUserID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, tenantID, voucherID)
	if err != nil {
		return nil, err
	}

	if voucher.Status != domain.Posted {
		return nil, fmt.Errorf("%w: status is %s", ErrNotPosted, voucher.Status)
	}

	updated := false
	if req.Date != nil {
		voucher.Date = *req.Date
		updated = true
	}
	if req.Narration != nil {
		voucher.Narration = *req.Narration
		updated = true
	}
	if !updated {
		return voucher, nil
	}

	now := time.Now().UTC()
	voucher.LastUpdatedAt = now
	voucher.LastUpdatedBy = updaterUserID

	if err := s.voucherRepo.UpdateVoucher(ctx, *voucher); err != nil {
		s.LogError(ctx, err, "Failed to save voucher update", slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to save voucher update: %w", err)
	}

	s.LogInfo(ctx, "Voucher updated successfully", slog.String("voucher_id", voucherID))
	return voucher, nil
}

// ReverseVoucher posts a mirror voucher that cancels the original. The two
// vouchers are linked and the original moves to REVERSED, atomically.
func (s *voucherService) ReverseVoucher(ctx context.Context, tenantID, voucherID string, req dto.ReverseVoucherRequest, creatorUserID string) (*domain.Voucher, error) {
	original, err := s.voucherRepo.FindVoucherByID(ctx, tenantID, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to fetch original voucher for reversal", slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to retrieve original voucher: %w", err)
	}

	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: voucher status is %s, expected POSTED", apperrors.ErrConflict, original.Status)
	}
	if original.IsReversal() {
		return nil, fmt.Errorf("%w: %s", ErrReverseOfReversal, voucherID)
	}
	if original.ReversedBy != nil {
		return nil, fmt.Errorf("%w: reversed by %s", ErrAlreadyReversed, *original.ReversedBy)
	}

	now := time.Now().UTC()
	reversalID := domain.PrefixJournal + uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	narration := req.Narration
	if narration == "" {
		narration = "Reversal of " + original.VoucherID
	}

	// Mirror every line by swapping its debit and credit sides.
	lines := make([]domain.VoucherLine, len(original.Lines))
	for i, line := range original.Lines {
		lines[i] = domain.VoucherLine{
			LineID:      uuid.NewString(),
			VoucherID:   reversalID,
			Account:     line.Account,
			Debit:       line.Credit,
			Credit:      line.Debit,
			CostCentre:  line.CostCentre,
			Narration:   line.Narration,
			AuditFields: audit,
		}
	}

	originalID := original.VoucherID
	reversal := domain.Voucher{
		VoucherID:   reversalID,
		TenantID:    tenantID,
		Date:        req.Date,
		Narration:   narration,
		Lines:       lines,
		Amount:      original.Amount,
		CustomerID:  original.CustomerID,
		VendorID:    original.VendorID,
		Reverses:    &originalID,
		Status:      domain.Posted,
		AuditFields: audit,
	}

	if err := s.voucherRepo.SaveReversal(ctx, reversal, originalID, creatorUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to save reversal voucher", slog.String("voucher_id", voucherID), slog.String("reversal_id", reversalID))
		return nil, fmt.Errorf("failed to save reversal: %w", err)
	}

	s.LogInfo(ctx, "Voucher reversed successfully", slog.String("voucher_id", voucherID), slog.String("reversal_id", reversalID))
	return &reversal, nil
}
