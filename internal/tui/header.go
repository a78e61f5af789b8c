package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderHeader(activeView int, historyCount int, width int) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color("#e8a33d")).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Sitelog")

	tabs := renderTabs([]string{"Dashboard", "New Log", "History"}, activeView)

	left := fmt.Sprintf(" %s %s  %s", dot, name, tabs)
	right := ""
	if historyCount > 0 {
		right = dimTextStyle.Render(fmt.Sprintf("%d saved", historyCount)) + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTabs(tabs []string, active int) string {
	var parts []string
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}
