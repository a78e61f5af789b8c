package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/samueldoiron-bot/sitelog/internal/buildinfo"
	"github.com/samueldoiron-bot/sitelog/internal/updater"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Sitelog %s\n", buildinfo.Version)
		fmt.Printf("  Commit:  %s\n", buildinfo.CommitHash)
		fmt.Printf("  Built:   %s\n", buildinfo.BuildDate)
		fmt.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  Go:      %s\n", runtime.Version())

		if !versionCheck {
			return nil
		}

		fmt.Println("\nChecking for updates...")
		result, err := updater.CheckForUpdate()
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if !result.Available {
			fmt.Printf("Already up to date (v%s).\n", result.CurrentVersion)
			return nil
		}

		fmt.Println(styleUpdate.Render(
			fmt.Sprintf("Update available: v%s → v%s", result.CurrentVersion, result.LatestVersion)))
		fmt.Printf("Release: %s\n", result.ReleaseURL)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check for a newer release")
}
