package mapping

import (
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/models"
)

// ToModelVoucher converts a domain Voucher header to a model Voucher
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:   d.VoucherID,
		TenantID:    d.TenantID,
		Date:        d.Date,
		Narration:   d.Narration,
		Amount:      d.Amount,
		CustomerID:  d.CustomerID,
		VendorID:    d.VendorID,
		Reverses:    d.Reverses,
		ReversedBy:  d.ReversedBy,
		Status:      models.VoucherStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher (lines empty)
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:   m.VoucherID,
		TenantID:    m.TenantID,
		Date:        m.Date,
		Narration:   m.Narration,
		Amount:      m.Amount,
		CustomerID:  m.CustomerID,
		VendorID:    m.VendorID,
		Reverses:    m.Reverses,
		ReversedBy:  m.ReversedBy,
		Status:      domain.VoucherStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVoucherLine converts a domain VoucherLine to a model VoucherLine
func ToModelVoucherLine(d domain.VoucherLine) models.VoucherLine {
	return models.VoucherLine{
		LineID:      d.LineID,
		VoucherID:   d.VoucherID,
		Account:     d.Account,
		Debit:       d.Debit,
		Credit:      d.Credit,
		CostCentre:  d.CostCentre,
		Narration:   d.Narration,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucherLine converts a model VoucherLine to a domain VoucherLine
func ToDomainVoucherLine(m models.VoucherLine) domain.VoucherLine {
	return domain.VoucherLine{
		LineID:      m.LineID,
		VoucherID:   m.VoucherID,
		Account:     m.Account,
		Debit:       m.Debit,
		Credit:      m.Credit,
		CostCentre:  m.CostCentre,
		Narration:   m.Narration,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVoucherLineSlice converts a slice of model VoucherLines to domain VoucherLines
func ToDomainVoucherLineSlice(ms []models.VoucherLine) []domain.VoucherLine {
	ds := make([]domain.VoucherLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucherLine(m)
	}
	return ds
}
