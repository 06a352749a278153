// Package cli provides the cees-dashboard command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.toml (default: config.toml next to the binary)")
}

var rootCmd = &cobra.Command{
	Use:   "cees-dashboard",
	Short: "Backend for the Ce-eS management consultancy dashboard",
	Long: `Backend for the Ce-eS Management Consultant dashboard.

Serves the client roster, creditor negotiations, deadlines, bookkeeping
mirrors and the AI assistant proxy for the Heilbronn office. All data
lives in a single SQLite file; the demo dataset is seeded on first run.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
