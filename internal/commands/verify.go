package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/core/ledger"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
	"github.com/gstbooks/gstbooks_backend/internal/importer"
	"github.com/gstbooks/gstbooks_backend/internal/utils"
)

func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <tally-export.xml>",
		Short: "Check that a Tally export balances without touching a server",
		Long: `Parses a Tally voucher export, aggregates every line into per-account
balances and checks that total debits equal total credits. Exits non-zero
when the export is out of balance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args[0])
		},
	}
	return cmd
}

func runVerify(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	requests, err := importer.ParseTally(f, nil)
	if err != nil {
		return err
	}

	vouchers := make([]domain.Voucher, len(requests))
	for i, req := range requests {
		vouchers[i] = toDomainVoucher(i+1, req)
	}

	balances := ledger.Aggregate(vouchers, nil)
	result := ledger.TrialBalanceCheck(vouchers)

	codes := make([]string, 0, len(balances))
	for code := range balances {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d vouchers parsed from %s\n\n", len(vouchers), path)
	for _, code := range codes {
		fmt.Fprintf(out, "  %-30s %15s\n", code, utils.FormatINR(balances[code]))
	}
	fmt.Fprintf(out, "\n  Total debits:  %s\n", utils.FormatINR(result.TotalDebits))
	fmt.Fprintf(out, "  Total credits: %s\n", utils.FormatINR(result.TotalCredits))

	if !result.Balanced {
		return fmt.Errorf("export is out of balance by %s", utils.FormatINR(result.Difference))
	}
	fmt.Fprintln(out, "\n  Trial balance OK")
	return nil
}

// toDomainVoucher builds an in-memory voucher with a synthetic sequence ID
// so the aggregation sees the right kind prefix.
func toDomainVoucher(seq int, req dto.CreateVoucherRequest) domain.Voucher {
	prefix, _ := domain.PrefixForKind(req.Kind)
	lines := make([]domain.VoucherLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = domain.VoucherLine{
			Account:    line.AccountCode,
			Debit:      line.Debit,
			Credit:     line.Credit,
			CostCentre: line.CostCentre,
			Narration:  line.Narration,
		}
	}
	return domain.Voucher{
		VoucherID: fmt.Sprintf("%s%06d", prefix, seq),
		Date:      req.Date,
		Narration: req.Narration,
		Status:    domain.Posted,
		Lines:     lines,
	}
}
