// Package importer converts Tally voucher exports into API create requests.
package importer

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

// tallyDateLayout is the compact date format Tally exports use.
const tallyDateLayout = "20060102"

// voucherKindByType maps Tally voucher type names to API voucher kinds.
var voucherKindByType = map[string]string{
	"sales":       domain.KindInvoice,
	"purchase":    domain.KindBill,
	"credit note": domain.KindCreditNote,
	"debit note":  domain.KindDebitNote,
	"journal":     domain.KindJournal,
}

type tallyEnvelope struct {
	XMLName xml.Name  `xml:"ENVELOPE"`
	Body    tallyBody `xml:"BODY"`
}

type tallyBody struct {
	ImportData tallyImportData `xml:"IMPORTDATA"`
}

type tallyImportData struct {
	RequestData tallyRequestData `xml:"REQUESTDATA"`
}

type tallyRequestData struct {
	Messages []tallyMessage `xml:"TALLYMESSAGE"`
}

type tallyMessage struct {
	Voucher *tallyVoucher `xml:"VOUCHER"`
}

type tallyVoucher struct {
	Date          string             `xml:"DATE"`
	VoucherType   string             `xml:"VOUCHERTYPENAME"`
	Narration     string             `xml:"NARRATION"`
	PartyName     string             `xml:"PARTYLEDGERNAME"`
	LedgerEntries []tallyLedgerEntry `xml:"ALLLEDGERENTRIES.LIST"`
}

type tallyLedgerEntry struct {
	LedgerName string `xml:"LEDGERNAME"`
	Amount     string `xml:"AMOUNT"`
	CostCentre string `xml:"COSTCENTRENAME"`
}

// AccountResolver maps a Tally ledger name to an account code. Returning
// false marks the ledger as unmapped.
type AccountResolver func(ledgerName string) (string, bool)

// ParseTally reads a Tally XML export and converts every voucher it contains
// into a create request. Ledger names resolve to account codes via resolve;
// when resolve is nil (or a name is unmapped) the ledger name itself is used
// as the code, which the write boundary then warn-accepts as unknown.
//
// Tally books amounts credit-positive: a negative AMOUNT is a debit.
func ParseTally(r io.Reader, resolve AccountResolver) ([]dto.CreateVoucherRequest, error) {
	var envelope tallyEnvelope
	if err := xml.NewDecoder(r).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode Tally XML: %w", err)
	}

	var requests []dto.CreateVoucherRequest
	for i, msg := range envelope.Body.ImportData.RequestData.Messages {
		if msg.Voucher == nil {
			continue
		}
		req, err := convertVoucher(msg.Voucher, resolve)
		if err != nil {
			return nil, fmt.Errorf("voucher %d: %w", i+1, err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func convertVoucher(v *tallyVoucher, resolve AccountResolver) (dto.CreateVoucherRequest, error) {
	var req dto.CreateVoucherRequest

	kind, ok := voucherKindByType[strings.ToLower(strings.TrimSpace(v.VoucherType))]
	if !ok {
		return req, fmt.Errorf("unsupported voucher type %q", v.VoucherType)
	}

	date, err := time.Parse(tallyDateLayout, strings.TrimSpace(v.Date))
	if err != nil {
		return req, fmt.Errorf("invalid date %q: %w", v.Date, err)
	}

	if len(v.LedgerEntries) < 2 {
		return req, fmt.Errorf("voucher has %d ledger entries, need at least 2", len(v.LedgerEntries))
	}

	lines := make([]dto.CreateVoucherLineRequest, 0, len(v.LedgerEntries))
	for _, entry := range v.LedgerEntries {
		amount, err := decimal.NewFromString(strings.TrimSpace(entry.Amount))
		if err != nil {
			return req, fmt.Errorf("invalid amount %q for ledger %q: %w", entry.Amount, entry.LedgerName, err)
		}

		code := strings.TrimSpace(entry.LedgerName)
		if resolve != nil {
			if mapped, ok := resolve(code); ok {
				code = mapped
			}
		}

		line := dto.CreateVoucherLineRequest{
			AccountCode: code,
			CostCentre:  strings.TrimSpace(entry.CostCentre),
		}
		if amount.IsNegative() {
			line.Debit = amount.Neg().String()
		} else {
			line.Credit = amount.String()
		}
		lines = append(lines, line)
	}

	narration := strings.TrimSpace(v.Narration)
	if narration == "" {
		narration = fmt.Sprintf("Imported from Tally (%s)", strings.TrimSpace(v.VoucherType))
	}

	req = dto.CreateVoucherRequest{
		Kind:      kind,
		Date:      date,
		Narration: narration,
		Lines:     lines,
	}
	return req, nil
}
