package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samueldoiron-bot/sitelog/internal/client"
)

func connectDaemonCmd() tea.Cmd {
	return func() tea.Msg {
		c, err := client.Discover()
		if err != nil {
			return ErrorMsg{Err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.Health(ctx); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to reach daemon: %w", err)}
		}
		return DaemonConnectedMsg{Client: c}
	}
}

func summarizeCmd(c *client.Client, req client.SummarizeRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		resp, err := c.Summarize(ctx, req)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SummaryResultMsg{Summary: resp.Summary, Labels: resp.Labels}
	}
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearSavedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearSavedMsg{}
	})
}
