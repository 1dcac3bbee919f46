package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/core/ledger"
	portsrepo "github.com/gstbooks/gstbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

// reportingService computes every report by folding the tenant's full
// voucher snapshot through the ledger engine. There is no incremental
// balance table to drift out of sync; correctness comes from recomputation.
type reportingService struct {
	BaseService
	voucherRepo    portsrepo.VoucherRepositoryFacade
	accountRepo    portsrepo.AccountRepositoryFacade
	costCentreRepo portsrepo.CostCentreRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(voucherRepo portsrepo.VoucherRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, costCentreRepo portsrepo.CostCentreRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		voucherRepo:    voucherRepo,
		accountRepo:    accountRepo,
		costCentreRepo: costCentreRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// loadSnapshot fetches the tenant's vouchers (optionally date-bounded) and
// chart of accounts.
func (s *reportingService) loadSnapshot(ctx context.Context, tenantID string, params dto.ReportRangeParams) ([]domain.Voucher, ledger.ChartOfAccounts, error) {
	vouchers, err := s.voucherRepo.ListAllVouchers(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load voucher snapshot for reporting")
		return nil, nil, fmt.Errorf("failed to load vouchers: %w", err)
	}
	vouchers = filterByDate(vouchers, params)

	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts for reporting")
		return nil, nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	return vouchers, ledger.NewChartOfAccounts(accounts), nil
}

// filterByDate keeps vouchers inside the inclusive [From, To] window.
func filterByDate(vouchers []domain.Voucher, params dto.ReportRangeParams) []domain.Voucher {
	if params.From == nil && params.To == nil {
		return vouchers
	}
	out := make([]domain.Voucher, 0, len(vouchers))
	for _, v := range vouchers {
		if params.From != nil && v.Date.Before(*params.From) {
			continue
		}
		if params.To != nil && v.Date.After(*params.To) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// TrialBalance recomputes per-account balances and the advisory equality
// check over the tenant's snapshot.
func (s *reportingService) TrialBalance(ctx context.Context, tenantID string, params dto.ReportRangeParams) (*domain.TrialBalanceReport, error) {
	vouchers, chart, err := s.loadSnapshot(ctx, tenantID, params)
	if err != nil {
		return nil, err
	}

	balances := ledger.Aggregate(vouchers, nil)
	report := &domain.TrialBalanceReport{
		Rows:   ledger.TrialBalanceRows(balances, chart),
		Result: ledger.TrialBalanceCheck(vouchers),
	}

	if !report.Result.Balanced {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("difference", report.Result.Difference.String()),
			slog.Int("voucher_count", len(vouchers)))
	}

	s.LogInfo(ctx, "Trial balance computed", slog.Int("row_count", len(report.Rows)), slog.Bool("balanced", report.Result.Balanced))
	return report, nil
}

// CostCentreSummary rolls income and expense up per cost centre.
func (s *reportingService) CostCentreSummary(ctx context.Context, tenantID string, params dto.ReportRangeParams) ([]domain.CostCentreSummaryRow, error) {
	vouchers, chart, err := s.loadSnapshot(ctx, tenantID, params)
	if err != nil {
		return nil, err
	}

	centres, err := s.costCentreRepo.ListCostCentres(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cost centres for summary")
		return nil, fmt.Errorf("failed to load cost centres: %w", err)
	}

	rows := ledger.CostCentreSummary(vouchers, centres, chart)
	s.LogInfo(ctx, "Cost centre summary computed", slog.Int("row_count", len(rows)))
	return rows, nil
}

// ProfitAndLoss nets revenue against expenses for the window. Amounts are in
// each side's natural balance, so both lists read as positive in the common
// case.
func (s *reportingService) ProfitAndLoss(ctx context.Context, tenantID string, params dto.ReportRangeParams) (*domain.PAndLReport, error) {
	vouchers, chart, err := s.loadSnapshot(ctx, tenantID, params)
	if err != nil {
		return nil, err
	}

	revenue := categoryAmounts(vouchers, chart, domain.Revenue)
	expenses := categoryAmounts(vouchers, chart, domain.Expense)

	totalRevenue := decimal.Zero
	for _, r := range revenue {
		totalRevenue = totalRevenue.Add(r.NetAmount)
	}
	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.NetAmount)
	}

	report := &domain.PAndLReport{
		Revenue:   revenue,
		Expenses:  expenses,
		NetProfit: totalRevenue.Sub(totalExpenses),
	}

	s.LogInfo(ctx, "Profit and loss computed", slog.String("net_profit", report.NetProfit.String()))
	return report, nil
}

// categoryAmounts aggregates one category's accounts into natural-balance
// amounts, sorted by account code.
func categoryAmounts(vouchers []domain.Voucher, chart ledger.ChartOfAccounts, category domain.AccountCategory) []domain.AccountAmount {
	balances := ledger.Aggregate(vouchers, &ledger.Filter{
		Category: category,
		Chart:    chart,
	})

	codes := make([]string, 0, len(balances))
	for code := range balances {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	amounts := make([]domain.AccountAmount, 0, len(codes))
	for _, code := range codes {
		account := chart[code]
		amounts = append(amounts, domain.AccountAmount{
			AccountCode: code,
			Name:        account.Name,
			NetAmount:   ledger.NaturalBalance(category, balances[code]),
		})
	}
	return amounts
}

// SalesTurnover sums invoice amounts gross and nets off credit notes.
func (s *reportingService) SalesTurnover(ctx context.Context, tenantID string, params dto.ReportRangeParams) (*domain.TurnoverAnalysis, error) {
	return s.turnover(ctx, tenantID, params, domain.PrefixInvoice, domain.PrefixCreditNote)
}

// PurchaseTurnover sums bill amounts gross and nets off debit notes.
func (s *reportingService) PurchaseTurnover(ctx context.Context, tenantID string, params dto.ReportRangeParams) (*domain.TurnoverAnalysis, error) {
	return s.turnover(ctx, tenantID, params, domain.PrefixBill, domain.PrefixDebitNote)
}

func (s *reportingService) turnover(ctx context.Context, tenantID string, params dto.ReportRangeParams, grossPrefix, notePrefix string) (*domain.TurnoverAnalysis, error) {
	vouchers, err := s.voucherRepo.ListAllVouchers(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load vouchers for turnover analysis")
		return nil, fmt.Errorf("failed to load vouchers: %w", err)
	}
	vouchers = filterByDate(vouchers, params)

	analysis := &domain.TurnoverAnalysis{
		Gross: decimal.Zero,
		Notes: decimal.Zero,
	}
	for _, v := range vouchers {
		// Reversal pairs cancel economically, so neither side counts.
		if v.IsReversal() || v.ReversedBy != nil {
			continue
		}
		switch v.Kind() {
		case grossPrefix:
			analysis.Gross = analysis.Gross.Add(v.Amount)
			analysis.VoucherCount++
		case notePrefix:
			analysis.Notes = analysis.Notes.Add(v.Amount)
		}
	}
	analysis.Net = analysis.Gross.Sub(analysis.Notes)

	s.LogInfo(ctx, "Turnover analysis computed",
		slog.String("gross", analysis.Gross.String()),
		slog.String("net", analysis.Net.String()),
		slog.Int("voucher_count", analysis.VoucherCount))
	return analysis, nil
}
