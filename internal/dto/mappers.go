package dto

import (
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/utils"
)

// kindNames maps voucher ID prefixes back to API kind names.
var kindNames = map[string]string{
	domain.PrefixInvoice:    domain.KindInvoice,
	domain.PrefixBill:       domain.KindBill,
	domain.PrefixCreditNote: domain.KindCreditNote,
	domain.PrefixDebitNote:  domain.KindDebitNote,
	domain.PrefixJournal:    domain.KindJournal,
}

// ToVoucherResponse converts a domain Voucher to its API shape.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	lines := make([]VoucherLineResponse, len(v.Lines))
	for i, line := range v.Lines {
		lines[i] = VoucherLineResponse{
			LineID:     line.LineID,
			Account:    line.Account,
			Debit:      line.Debit,
			Credit:     line.Credit,
			CostCentre: line.CostCentre,
			Narration:  line.Narration,
		}
	}

	return VoucherResponse{
		VoucherID:  v.VoucherID,
		Kind:       kindNames[v.Kind()],
		Date:       v.Date,
		Narration:  v.Narration,
		Amount:     utils.FormatPaise(v.Amount),
		CustomerID: v.CustomerID,
		VendorID:   v.VendorID,
		Reverses:   v.Reverses,
		ReversedBy: v.ReversedBy,
		Status:     v.Status,
		Lines:      lines,
		CreatedAt:  v.CreatedAt,
	}
}

// ToVoucherResponses converts a slice of domain Vouchers.
func ToVoucherResponses(vouchers []domain.Voucher) []VoucherResponse {
	out := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		out[i] = ToVoucherResponse(&vouchers[i])
	}
	return out
}

// ToAccountResponse converts a domain Account to its API shape.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		Code:        a.Code,
		Name:        a.Name,
		Category:    a.Category,
		Description: a.Description,
		IsActive:    a.IsActive,
	}
}

// ToAccountResponses converts a slice of domain Accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}

// ToCostCentreResponse converts a domain CostCentre to its API shape.
func ToCostCentreResponse(cc *domain.CostCentre) CostCentreResponse {
	return CostCentreResponse{
		CostCentreID: cc.CostCentreID,
		Name:         cc.Name,
		Description:  cc.Description,
		IsActive:     cc.IsActive,
	}
}

// ToCostCentreResponses converts a slice of domain CostCentres.
func ToCostCentreResponses(centres []domain.CostCentre) []CostCentreResponse {
	out := make([]CostCentreResponse, len(centres))
	for i := range centres {
		out[i] = ToCostCentreResponse(&centres[i])
	}
	return out
}

// ToUserResponse converts a domain User to its API shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Email:        u.Email,
		Name:         u.Name,
		AuthProvider: u.AuthProvider,
	}
}

// ToTrialBalanceResponse converts the domain report, formatting every amount
// to paise precision.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Category:    string(row.Category),
			Debit:       utils.FormatPaise(row.Debit),
			Credit:      utils.FormatPaise(row.Credit),
		}
	}
	return TrialBalanceResponse{
		Rows:         rows,
		TotalDebits:  utils.FormatPaise(report.Result.TotalDebits),
		TotalCredits: utils.FormatPaise(report.Result.TotalCredits),
		Difference:   utils.FormatPaise(report.Result.Difference),
		Balanced:     report.Result.Balanced,
	}
}

// ToCostCentreSummaryResponse converts summary rows to the API shape.
func ToCostCentreSummaryResponse(rows []domain.CostCentreSummaryRow) CostCentreSummaryResponse {
	out := make([]CostCentreSummaryRowResponse, len(rows))
	for i, row := range rows {
		out[i] = CostCentreSummaryRowResponse{
			CostCentreID: row.CostCentreID,
			Name:         row.Name,
			Income:       utils.FormatPaise(row.Income),
			Expense:      utils.FormatPaise(row.Expense),
			Net:          utils.FormatPaise(row.Net),
		}
	}
	return CostCentreSummaryResponse{Rows: out}
}

// ToProfitAndLossResponse converts the domain P&L to the API shape.
func ToProfitAndLossResponse(report *domain.PAndLReport) ProfitAndLossResponse {
	toAmounts := func(in []domain.AccountAmount) []AccountAmountResponse {
		out := make([]AccountAmountResponse, len(in))
		for i, a := range in {
			out[i] = AccountAmountResponse{
				AccountCode: a.AccountCode,
				AccountName: a.Name,
				Amount:      utils.FormatPaise(a.NetAmount),
			}
		}
		return out
	}
	return ProfitAndLossResponse{
		Revenue:   toAmounts(report.Revenue),
		Expenses:  toAmounts(report.Expenses),
		NetProfit: utils.FormatPaise(report.NetProfit),
	}
}

// ToTurnoverResponse converts a turnover analysis to the API shape.
func ToTurnoverResponse(analysis *domain.TurnoverAnalysis) TurnoverResponse {
	return TurnoverResponse{
		Gross:        utils.FormatPaise(analysis.Gross),
		Notes:        utils.FormatPaise(analysis.Notes),
		Net:          utils.FormatPaise(analysis.Net),
		VoucherCount: analysis.VoucherCount,
	}
}
