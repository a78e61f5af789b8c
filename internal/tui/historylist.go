package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/samueldoiron-bot/sitelog/internal/models"
)

// HistoryList displays saved log entries with list and detail views.
type HistoryList struct {
	entries       []*models.LogEntry
	selectedIndex int
	viewing       bool // true = showing entry detail, false = showing list
	viewport      viewport.Model
	width         int
	height        int
	scrollOffset  int
}

// NewHistoryList creates a new history list.
func NewHistoryList() *HistoryList {
	vp := viewport.New(80, 24)
	return &HistoryList{
		viewport: vp,
	}
}

// SetSize updates dimensions.
func (h *HistoryList) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.viewport.Width = width
	h.viewport.Height = height
}

// SetEntries updates the entry list, newest first.
func (h *HistoryList) SetEntries(entries []*models.LogEntry) {
	h.entries = entries
	if h.selectedIndex >= len(entries) {
		h.selectedIndex = len(entries) - 1
	}
	if h.selectedIndex < 0 {
		h.selectedIndex = 0
	}
}

// IsViewing returns whether we're in detail view.
func (h *HistoryList) IsViewing() bool {
	return h.viewing
}

// SelectedEntry returns the currently selected entry, or nil.
func (h *HistoryList) SelectedEntry() *models.LogEntry {
	if h.selectedIndex < 0 || h.selectedIndex >= len(h.entries) {
		return nil
	}
	return h.entries[h.selectedIndex]
}

// OpenSelected switches to detail view for the selected entry.
func (h *HistoryList) OpenSelected() {
	entry := h.SelectedEntry()
	if entry == nil {
		return
	}
	h.viewing = true
	h.viewport.SetContent(h.formatDetail(entry))
	h.viewport.GotoTop()
}

// GoBack returns to list view from detail view.
func (h *HistoryList) GoBack() {
	h.viewing = false
}

// MoveUp moves cursor up in list view, or scrolls in detail view.
func (h *HistoryList) MoveUp() {
	if h.viewing {
		h.viewport.LineUp(1)
		return
	}
	if h.selectedIndex > 0 {
		h.selectedIndex--
		h.ensureVisible()
	}
}

// MoveDown moves cursor down in list view, or scrolls in detail view.
func (h *HistoryList) MoveDown() {
	if h.viewing {
		h.viewport.LineDown(1)
		return
	}
	if h.selectedIndex < len(h.entries)-1 {
		h.selectedIndex++
		h.ensureVisible()
	}
}

// PageUp scrolls the detail viewport up.
func (h *HistoryList) PageUp() {
	if h.viewing {
		h.viewport.HalfViewUp()
	}
}

// PageDown scrolls the detail viewport down.
func (h *HistoryList) PageDown() {
	if h.viewing {
		h.viewport.HalfViewDown()
	}
}

func (h *HistoryList) ensureVisible() {
	if h.selectedIndex < h.scrollOffset {
		h.scrollOffset = h.selectedIndex
	}
	if h.selectedIndex >= h.scrollOffset+h.height {
		h.scrollOffset = h.selectedIndex - h.height + 1
	}
}

// View renders the history list or the selected entry's detail.
func (h *HistoryList) View() string {
	if h.viewing {
		return h.viewDetail()
	}
	return h.viewList()
}

func (h *HistoryList) viewList() string {
	if len(h.entries) == 0 {
		return dimTextStyle.Width(h.width).Align(lipgloss.Center).
			Render("\nNo saved logs yet. Press 2 to write one.")
	}

	var lines []string
	end := h.scrollOffset + h.height
	if end > len(h.entries) {
		end = len(h.entries)
	}

	for i := h.scrollOffset; i < end; i++ {
		line := h.formatEntryLine(h.entries[i])
		if i == h.selectedIndex {
			line = selectedItemStyle.Width(h.width).Render(line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	// Scroll indicators
	if h.scrollOffset > 0 {
		lines = append([]string{dimTextStyle.Render("  ▲ more")}, lines...)
	}
	if end < len(h.entries) {
		lines = append(lines, dimTextStyle.Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}

func (h *HistoryList) formatEntryLine(entry *models.LogEntry) string {
	site := entry.SiteName
	if site == "" {
		site = "Unknown"
	}

	labels := ""
	if entry.Generated != nil && len(entry.Generated.Labels) > 0 {
		labels = " " + renderLabels(entry.Generated.Labels)
	}

	return fmt.Sprintf("%s  %s%s",
		lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Render(entry.Date),
		dimTextStyle.Render(site),
		labels,
	)
}

func (h *HistoryList) formatDetail(entry *models.LogEntry) string {
	var b strings.Builder

	site := entry.SiteName
	if site == "" {
		site = "Unknown"
	}
	b.WriteString(sectionHeaderStyle.Render(fmt.Sprintf("%s — %s", entry.Date, site)))
	b.WriteString("\n")
	b.WriteString(dimTextStyle.Render(fmt.Sprintf("Saved %s", entry.SavedAt.Format("15:04:05"))))
	b.WriteString("\n\n")

	if entry.CrewSize > 0 {
		b.WriteString(fmt.Sprintf("Crew: %d\n\n", entry.CrewSize))
	}

	if entry.Generated != nil {
		b.WriteString(sectionHeaderStyle.Render("Summary"))
		b.WriteString("\n")
		b.WriteString(entry.Generated.Summary)
		b.WriteString("\n\n")
		if len(entry.Generated.Labels) > 0 {
			b.WriteString(sectionHeaderStyle.Render("Labels"))
			b.WriteString("\n")
			b.WriteString(renderLabels(entry.Generated.Labels))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(sectionHeaderStyle.Render("Notes"))
	b.WriteString("\n")
	b.WriteString(entry.Notes)

	return b.String()
}

func (h *HistoryList) viewDetail() string {
	backHint := dimTextStyle.Render("Esc back · PgUp/PgDn scroll")
	rule := dimTextStyle.Render(strings.Repeat("─", h.width))

	vpHeight := h.height - 2
	if vpHeight < 1 {
		vpHeight = 1
	}
	h.viewport.Height = vpHeight
	h.viewport.Width = h.width

	return backHint + "\n" + rule + "\n" + h.viewport.View()
}

// renderLabels renders label badges with per-label colors.
func renderLabels(labels []string) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		switch l {
		case "Delay":
			parts = append(parts, labelDelayStyle.Render("["+l+"]"))
		case "Safety":
			parts = append(parts, labelSafetyStyle.Render("["+l+"]"))
		case "Delivery":
			parts = append(parts, labelDeliveryStyle.Render("["+l+"]"))
		default:
			parts = append(parts, dimTextStyle.Render("["+l+"]"))
		}
	}
	return strings.Join(parts, " ")
}
