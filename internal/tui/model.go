package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/samueldoiron-bot/sitelog/internal/client"
	"github.com/samueldoiron-bot/sitelog/internal/models"
)

// Views.
const (
	viewDashboard = 0
	viewNewLog    = 1
	viewHistory   = 2
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	// Daemon connection
	client    *client.Client
	connected bool

	// Settings-derived defaults for the log form
	settings *models.Settings

	// UI state
	activeView int // viewDashboard, viewNewLog, viewHistory
	width      int
	height     int
	showHelp   bool

	// New-log state
	logForm    *LogForm
	generated  *models.Generated
	generating bool

	// Session history
	history     *models.History
	historyList *HistoryList

	// Status display
	err       error
	showSaved bool
}

// NewModel creates the initial TUI model.
func NewModel(settings *models.Settings) Model {
	return Model{
		settings:    settings,
		history:     &models.History{},
		historyList: NewHistoryList(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return connectDaemonCmd()
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	// ── Daemon connection ──────────────────────────────────────────
	case DaemonConnectedMsg:
		m.client = msg.Client
		m.connected = true
		return m, nil

	// ── Summarize round trip ───────────────────────────────────────
	case SummaryResultMsg:
		m.generating = false
		m.generated = &models.Generated{
			Summary: msg.Summary,
			Labels:  msg.Labels,
			Status:  models.GeneratedOK,
		}
		return m, nil

	// ── Error handling ─────────────────────────────────────────────
	case ErrorMsg:
		m.generating = false
		m.err = msg.Err
		cmds = append(cmds, clearErrorAfter(5*time.Second))
		return m, tea.Batch(cmds...)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearSavedMsg:
		m.showSaved = false
		return m, nil
	}

	return m, nil
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Help overlay captures everything except quit
	if m.showHelp {
		if key.Matches(msg, globalKeys.Quit) {
			return tea.Quit
		}
		if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
			m.showHelp = false
		}
		return nil
	}

	// Global shortcuts
	switch {
	case key.Matches(msg, globalKeys.Quit):
		return tea.Quit

	case key.Matches(msg, globalKeys.Help):
		m.showHelp = true
		return nil
	}

	// View switching keys only apply outside the form, where digits
	// and letters belong to the inputs.
	if m.activeView != viewNewLog {
		switch {
		case key.Matches(msg, viewSwitchKeys.Dashboard):
			m.switchToView(viewDashboard)
			return nil
		case key.Matches(msg, viewSwitchKeys.NewLog):
			m.switchToView(viewNewLog)
			return nil
		case key.Matches(msg, viewSwitchKeys.History):
			if !m.historyList.IsViewing() {
				m.switchToView(viewHistory)
				return nil
			}
		}
	}

	switch m.activeView {
	case viewNewLog:
		return m.handleFormKey(msg)
	case viewHistory:
		return m.handleHistoryKey(msg)
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.logForm == nil {
		return nil
	}

	switch {
	case key.Matches(msg, formKeys.Generate):
		return m.generate()

	case key.Matches(msg, formKeys.Save):
		return m.saveEntry()

	case key.Matches(msg, formKeys.Next):
		m.logForm.FocusNext()
		return nil

	case key.Matches(msg, formKeys.Prev):
		m.logForm.FocusPrev()
		return nil

	case key.Matches(msg, formKeys.Back):
		// Leaving the form discards the draft
		m.switchToView(viewDashboard)
		return nil
	}

	// Forward to active input
	switch m.logForm.FocusIndex() {
	case 0:
		ti := m.logForm.SiteInput()
		newTI, _ := ti.Update(msg)
		*ti = newTI
	case 1:
		ti := m.logForm.CrewInput()
		newTI, _ := ti.Update(msg)
		*ti = newTI
	case 2:
		ta := m.logForm.NotesArea()
		newTA, _ := ta.Update(msg)
		*ta = newTA
	}

	return nil
}

func (m *Model) handleHistoryKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, historyKeys.Up):
		m.historyList.MoveUp()
	case key.Matches(msg, historyKeys.Down):
		m.historyList.MoveDown()
	case key.Matches(msg, historyKeys.Enter):
		m.historyList.OpenSelected()
	case key.Matches(msg, historyKeys.Back):
		m.historyList.GoBack()
	}

	switch msg.Type {
	case tea.KeyPgUp:
		m.historyList.PageUp()
	case tea.KeyPgDown:
		m.historyList.PageDown()
	}
	return nil
}

// generate submits the current draft to the daemon. A request already
// in flight blocks further ones until it resolves.
func (m *Model) generate() tea.Cmd {
	if m.generating {
		return nil
	}

	draft, err := m.logForm.Draft()
	if err != nil {
		return m.setError(err)
	}
	if draft.Notes == "" {
		return m.setError(fmt.Errorf("notes are required to generate a summary"))
	}
	if !m.connected || m.client == nil {
		return m.setError(fmt.Errorf("daemon not connected"))
	}

	req := client.SummarizeRequest{
		Text:     draft.Notes,
		SiteName: draft.SiteName,
	}
	if draft.CrewSize > 0 {
		crew := draft.CrewSize
		req.CrewSize = &crew
	}

	m.generating = true
	return summarizeCmd(m.client, req)
}

// saveEntry appends the draft to history and resets the form.
func (m *Model) saveEntry() tea.Cmd {
	draft, err := m.logForm.Draft()
	if err != nil {
		return m.setError(err)
	}
	if draft.IsEmpty() {
		return m.setError(fmt.Errorf("nothing to save"))
	}

	m.history.Add(models.NewLogEntry(draft, m.generated))
	m.switchToView(viewHistory)
	m.showSaved = true
	return clearSavedAfter(3 * time.Second)
}

func (m *Model) setError(err error) tea.Cmd {
	m.err = err
	return clearErrorAfter(5 * time.Second)
}

// switchToView changes the active view. Leaving the new-log view
// drops the draft and any generated result.
func (m *Model) switchToView(view int) {
	if m.activeView == viewNewLog && view != viewNewLog {
		m.logForm = nil
		m.generated = nil
		m.generating = false
	}

	m.activeView = view

	switch view {
	case viewNewLog:
		if m.logForm == nil {
			m.logForm = NewLogForm(
				m.settings.Defaults.SiteName,
				m.settings.Defaults.CrewSize,
				m.contentWidth(),
			)
		}
	case viewHistory:
		m.historyList.SetEntries(m.history.Entries())
	}
}

// ── Dimension helpers ────────────────────────────────────────────

func (m *Model) contentWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func (m *Model) updateDimensions() {
	contentHeight := m.height - 4 // header, status bar, padding
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.historyList.SetSize(m.contentWidth(), contentHeight)
	if m.logForm != nil {
		m.logForm.SetSize(m.contentWidth())
	}
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	// Minimum size check
	if m.width < 60 || m.height < 16 {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				dimTextStyle.Render(
					"Need 60x16, have "+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	header := renderHeader(m.activeView, m.history.Len(), m.width)

	var content string
	switch m.activeView {
	case viewDashboard:
		content = renderDashboard(m.history, m.connected, m.contentWidth())
	case viewNewLog:
		content = m.renderNewLog()
	case viewHistory:
		content = m.historyList.View()
	}

	contentHeight := m.height - 2
	body := contentStyle.Width(m.width).Height(contentHeight).Render(content)

	statusBar := renderStatusBar(&m, m.width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)

	if m.showHelp {
		view = renderOverlay(view, renderHelp(m.width), m.width, m.height)
	}

	return view
}

func (m Model) renderNewLog() string {
	if m.logForm == nil {
		return ""
	}

	parts := []string{m.logForm.View()}

	if m.generating {
		parts = append(parts, "", dimTextStyle.Render("Generating summary..."))
	} else if m.generated != nil {
		preview := m.generated.Summary
		if len(m.generated.Labels) > 0 {
			preview += "\n\n" + renderLabels(m.generated.Labels)
		}
		parts = append(parts, "", sectionHeaderStyle.Render("Generated"),
			previewBoxStyle.Width(m.contentWidth()-4).Render(preview))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
