// Package commands defines the ledger-core CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finvera/ledger-core/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledger-core",
		Short:   "Double entry ledger with controlled posting and bank reconciliation",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSeedChartCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
