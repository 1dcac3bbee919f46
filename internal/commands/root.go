// Package commands holds the gstbooksctl CLI commands.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gstbooksctl",
		Short: "Offline tooling for GST Books ledgers",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
