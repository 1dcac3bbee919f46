package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/core/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	voucherRepo    *MockVoucherRepository
	accountRepo    *MockAccountRepository
	costCentreRepo *MockCostCentreRepository
	service        portssvc.ReportingSvcFacade
	ctx            context.Context
	tenantID       string
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.voucherRepo = new(MockVoucherRepository)
	s.accountRepo = new(MockAccountRepository)
	s.costCentreRepo = new(MockCostCentreRepository)
	s.service = services.NewReportingService(s.voucherRepo, s.accountRepo, s.costCentreRepo)
	s.ctx = context.Background()
	s.tenantID = "tenant-1"
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) chart() []domain.Account {
	return []domain.Account{
		{Code: "1100", TenantID: s.tenantID, Name: "Accounts Receivable", Category: domain.Asset, IsActive: true},
		{Code: "4010", TenantID: s.tenantID, Name: "Sales", Category: domain.Revenue, IsActive: true},
		{Code: "5100", TenantID: s.tenantID, Name: "Rent", Category: domain.Expense, IsActive: true},
		{Code: "1010", TenantID: s.tenantID, Name: "Cash", Category: domain.Asset, IsActive: true},
	}
}

func (s *ReportingServiceTestSuite) snapshot() []domain.Voucher {
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	return []domain.Voucher{
		{
			VoucherID: "INV-1", TenantID: s.tenantID, Date: date, Status: domain.Posted,
			Amount: decimal.RequireFromString("100.00"),
			Lines: []domain.VoucherLine{
				{LineID: "a", VoucherID: "INV-1", Account: "1100", Debit: "100.00", Credit: "0"},
				{LineID: "b", VoucherID: "INV-1", Account: "4010", Debit: "0", Credit: "100.00"},
			},
		},
		{
			VoucherID: "BILL-1", TenantID: s.tenantID, Date: date, Status: domain.Posted,
			Amount: decimal.RequireFromString("40.00"),
			Lines: []domain.VoucherLine{
				{LineID: "c", VoucherID: "BILL-1", Account: "5100", Debit: "40.00", Credit: "0", CostCentre: "CC1"},
				{LineID: "d", VoucherID: "BILL-1", Account: "1010", Debit: "0", Credit: "40.00"},
			},
		},
	}
}

func (s *ReportingServiceTestSuite) TestTrialBalanceBalancedSnapshot() {
	s.voucherRepo.On("ListAllVouchers", mock.Anything, s.tenantID).Return(s.snapshot(), nil)
	s.accountRepo.On("ListAccounts", mock.Anything, s.tenantID).Return(s.chart(), nil)

	report, err := s.service.TrialBalance(s.ctx, s.tenantID, dto.ReportRangeParams{})

	s.NoError(err)
	s.True(report.Result.Balanced)
	s.Equal("140", report.Result.TotalDebits.String())
	s.Equal("140", report.Result.TotalCredits.String())
	s.Len(report.Rows, 4)

	// Rows are sorted by account code.
	s.Equal("1010", report.Rows[0].AccountCode)
	s.Equal("40", report.Rows[0].Credit.String())
	s.Equal("1100", report.Rows[1].AccountCode)
	s.Equal("100", report.Rows[1].Debit.String())
	s.Equal("4010", report.Rows[2].AccountCode)
	s.Equal("Sales", report.Rows[2].AccountName)
	s.Equal("100", report.Rows[2].Credit.String())
}

func (s *ReportingServiceTestSuite) TestTrialBalanceDateWindow() {
	s.voucherRepo.On("ListAllVouchers", mock.Anything, s.tenantID).Return(s.snapshot(), nil)
	s.accountRepo.On("ListAccounts", mock.Anything, s.tenantID).Return(s.chart(), nil)

	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	report, err := s.service.TrialBalance(s.ctx, s.tenantID, dto.ReportRangeParams{From: &from})

	s.NoError(err)
	s.Empty(report.Rows)
	s.True(report.Result.Balanced)
}

func (s *ReportingServiceTestSuite) TestProfitAndLoss() {
	s.voucherRepo.On("ListAllVouchers", mock.Anything, s.tenantID).Return(s.snapshot(), nil)
	s.accountRepo.On("ListAccounts", mock.Anything, s.tenantID).Return(s.chart(), nil)

	report, err := s.service.ProfitAndLoss(s.ctx, s.tenantID, dto.ReportRangeParams{})

	s.NoError(err)
	s.Len(report.Revenue, 1)
	s.Equal("4010", report.Revenue[0].AccountCode)
	s.Equal("100", report.Revenue[0].NetAmount.String())
	s.Len(report.Expenses, 1)
	s.Equal("40", report.Expenses[0].NetAmount.String())
	s.Equal("60", report.NetProfit.String())
}

func (s *ReportingServiceTestSuite) TestCostCentreSummary() {
	centres := []domain.CostCentre{
		{CostCentreID: "CC1", TenantID: s.tenantID, Name: "Factory", IsActive: true},
	}
	s.voucherRepo.On("ListAllVouchers", mock.Anything, s.tenantID).Return(s.snapshot(), nil)
	s.accountRepo.On("ListAccounts", mock.Anything, s.tenantID).Return(s.chart(), nil)
	s.costCentreRepo.On("ListCostCentres", mock.Anything, s.tenantID).Return(centres, nil)

	rows, err := s.service.CostCentreSummary(s.ctx, s.tenantID, dto.ReportRangeParams{})

	s.NoError(err)
	s.Len(rows, 1)
	s.Equal("Factory", rows[0].Name)
	s.Equal("40", rows[0].Expense.String())
	s.Equal("-40", rows[0].Net.String())
}

func (s *ReportingServiceTestSuite) TestSalesTurnoverNetsCreditNotes() {
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	reversedBy := "JV-r"
	reverses := "INV-2"
	vouchers := []domain.Voucher{
		{VoucherID: "INV-1", TenantID: s.tenantID, Date: date, Status: domain.Posted, Amount: decimal.RequireFromString("118.00")},
		{VoucherID: "CN-1", TenantID: s.tenantID, Date: date, Status: domain.Posted, Amount: decimal.RequireFromString("18.00")},
		// Reversal pair: neither side counts.
		{VoucherID: "INV-2", TenantID: s.tenantID, Date: date, Status: domain.Reversed, Amount: decimal.RequireFromString("50.00"), ReversedBy: &reversedBy},
		{VoucherID: "JV-r", TenantID: s.tenantID, Date: date, Status: domain.Posted, Amount: decimal.RequireFromString("50.00"), Reverses: &reverses},
		// Purchases are invisible to the sales analysis.
		{VoucherID: "BILL-1", TenantID: s.tenantID, Date: date, Status: domain.Posted, Amount: decimal.RequireFromString("500.00")},
	}
	s.voucherRepo.On("ListAllVouchers", mock.Anything, s.tenantID).Return(vouchers, nil)

	analysis, err := s.service.SalesTurnover(s.ctx, s.tenantID, dto.ReportRangeParams{})

	s.NoError(err)
	s.Equal("118", analysis.Gross.String())
	s.Equal("18", analysis.Notes.String())
	s.Equal("100", analysis.Net.String())
	s.Equal(1, analysis.VoucherCount)
}

func (s *ReportingServiceTestSuite) TestPurchaseTurnoverNetsDebitNotes() {
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	vouchers := []domain.Voucher{
		{VoucherID: "BILL-1", TenantID: s.tenantID, Date: date, Status: domain.Posted, Amount: decimal.RequireFromString("500.00")},
		{VoucherID: "BILL-2", TenantID: s.tenantID, Date: date, Status: domain.Posted, Amount: decimal.RequireFromString("250.00")},
		{VoucherID: "DN-1", TenantID: s.tenantID, Date: date, Status: domain.Posted, Amount: decimal.RequireFromString("50.00")},
	}
	s.voucherRepo.On("ListAllVouchers", mock.Anything, s.tenantID).Return(vouchers, nil)

	analysis, err := s.service.PurchaseTurnover(s.ctx, s.tenantID, dto.ReportRangeParams{})

	s.NoError(err)
	s.Equal("750", analysis.Gross.String())
	s.Equal("700", analysis.Net.String())
	s.Equal(2, analysis.VoucherCount)
}
