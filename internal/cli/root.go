// Package cli implements the sitelog CLI commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samueldoiron-bot/sitelog/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "sitelog",
	Short: "Write and summarize daily site logs",
	Long: `Sitelog turns rough site notes into a structured daily log.
Running it without arguments opens the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := EnsureDaemon(); err != nil {
			return fmt.Errorf("failed to start daemon: %w", err)
		}
		return tui.Run()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(versionCmd)
}
