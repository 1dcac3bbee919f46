package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gstbooks/gstbooks_backend/internal/dto"
	"github.com/gstbooks/gstbooks_backend/internal/importer"
)

func newImportCommand() *cobra.Command {
	var apiURL string
	var token string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <tally-export.xml>",
		Short: "Import a Tally voucher export through the API",
		Long: `Parses a Tally voucher export and posts each voucher to a running
server. Vouchers that fail write-boundary validation are reported and
skipped; the rest are posted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], apiURL, token, dryRun)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "http://localhost:8080", "base URL of the server")
	cmd.Flags().StringVar(&token, "token", "", "bearer access token (required unless --dry-run)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without posting")

	return cmd
}

func runImport(cmd *cobra.Command, path, apiURL, token string, dryRun bool) error {
	if !dryRun && token == "" {
		return fmt.Errorf("--token is required unless --dry-run is set")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	requests, err := importer.ParseTally(f, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d vouchers parsed from %s\n", len(requests), path)
	if dryRun {
		for i, req := range requests {
			fmt.Fprintf(out, "  [%d] %s %s (%d lines)\n", i+1, req.Kind, req.Date.Format("2006-01-02"), len(req.Lines))
		}
		return nil
	}

	client := &http.Client{Timeout: 30 * time.Second}
	endpoint := strings.TrimRight(apiURL, "/") + "/api/v1/vouchers"

	var failed int
	for i, req := range requests {
		if err := postVoucher(client, endpoint, token, req); err != nil {
			failed++
			fmt.Fprintf(out, "  [%d] FAILED: %v\n", i+1, err)
			continue
		}
		fmt.Fprintf(out, "  [%d] posted %s %s\n", i+1, req.Kind, req.Date.Format("2006-01-02"))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d vouchers failed to import", failed, len(requests))
	}
	fmt.Fprintf(out, "All %d vouchers imported\n", len(requests))
	return nil
}

func postVoucher(client *http.Client, endpoint, token string, req dto.CreateVoucherRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding voucher: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return nil
}
