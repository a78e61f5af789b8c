// Package tui implements the interactive TUI for Sitelog.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samueldoiron-bot/sitelog/internal/config"
)

// Run launches the TUI.
func Run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	model := NewModel(settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
