package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/samueldoiron-bot/sitelog/internal/client"
)

var (
	summarizeSite string
	summarizeCrew int
	summarizeJSON bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [notes...]",
	Short: "Summarize site notes from the command line",
	Long: `Summarize site notes without opening the TUI.

Notes are taken from the arguments, or from stdin when no
arguments are given:

  sitelog summarize "Crew reported a delivery delay today"
  cat notes.txt | sitelog summarize --site "NB Refinery" --crew 6`,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeSite, "site", "", "site name")
	summarizeCmd.Flags().IntVar(&summarizeCrew, "crew", 0, "crew size")
	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false, "print the raw JSON response")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		return fmt.Errorf("no notes given")
	}

	if err := EnsureDaemon(); err != nil {
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	c, err := client.Discover()
	if err != nil {
		return err
	}

	req := client.SummarizeRequest{
		Text:     text,
		SiteName: summarizeSite,
	}
	if summarizeCrew > 0 {
		crew := summarizeCrew
		req.CrewSize = &crew
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resp, err := c.Summarize(ctx, req)
	if err != nil {
		return err
	}

	if summarizeJSON {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(resp.Summary)
	if len(resp.Labels) > 0 {
		parts := make([]string, 0, len(resp.Labels))
		for _, l := range resp.Labels {
			parts = append(parts, styleLabelBadge.Render("["+l+"]"))
		}
		fmt.Println("\nLabels: " + strings.Join(parts, " "))
	}
	return nil
}
