package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samueldoiron-bot/sitelog/internal/models"
)

func renderDashboard(history *models.History, connected bool, width int) string {
	var b strings.Builder

	b.WriteString(sectionHeaderStyle.Render("Today"))
	b.WriteString("\n\n")

	if history.Len() == 0 {
		b.WriteString(dimTextStyle.Render("No logs saved this session."))
		b.WriteString("\n")
		b.WriteString(dimTextStyle.Render("Press 2 or n to write today's log."))
	} else {
		b.WriteString(fmt.Sprintf("Logs saved: %s\n\n",
			lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", history.Len()))))

		latest := history.Entries()[0]
		site := latest.SiteName
		if site == "" {
			site = "Unknown"
		}
		b.WriteString(sectionHeaderStyle.Render("Latest entry"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %s\n", latest.Date, dimTextStyle.Render(site)))
		if latest.Generated != nil {
			if len(latest.Generated.Labels) > 0 {
				b.WriteString(renderLabels(latest.Generated.Labels))
				b.WriteString("\n")
			}
			b.WriteString("\n")
			b.WriteString(previewBoxStyle.Width(width - 6).Render(latest.Generated.Summary))
		}
	}

	if !connected {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(colorYellow).
			Render("Daemon unreachable. Generation is unavailable until it is back."))
	}

	return b.String()
}
