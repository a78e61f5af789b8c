package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	// Error display
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	// Saved indicator
	if m.showSaved {
		return renderSavedBar(width)
	}

	// Context-sensitive key hints
	left := " " + getKeyHints(m)

	// Connection status
	right := ""
	if m.connected {
		right = lipgloss.NewStyle().Foreground(colorGreen).Render("Connected") + " "
	} else {
		right = lipgloss.NewStyle().Foreground(colorYellow).Bold(true).Render("⚠ Disconnected") + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.showHelp {
		return keyHint("Esc", "close")
	}

	base := keyHint("Ctrl+q", "quit") + "  " + keyHint("Ctrl+h", "help")

	switch m.activeView {
	case viewNewLog:
		hints := base + "  " + keyHint("Ctrl+g", "generate") + "  " +
			keyHint("Ctrl+s", "save") + "  " + keyHint("Tab", "next field") + "  " +
			keyHint("Esc", "back")
		if m.generating {
			hints = base + "  " + hintStyle.Render("generating...")
		}
		return hints
	case viewHistory:
		if m.historyList.IsViewing() {
			return base + "  " + keyHint("Esc", "back") + "  " + keyHint("PgUp/PgDn", "scroll")
		}
		return base + "  " + keyHint("1/2/3", "switch view") + "  " +
			keyHint("j/k", "navigate") + "  " + keyHint("Enter", "view")
	default:
		return base + "  " + keyHint("1/2/3", "switch view") + "  " + keyHint("n", "new log")
	}
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func renderSavedBar(width int) string {
	return statusBarStyle.
		Width(width).
		Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render("Saved"))
}
