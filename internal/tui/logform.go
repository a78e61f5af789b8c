package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/samueldoiron-bot/sitelog/internal/models"
)

// LogForm is the new-log entry form: site name, crew size and notes.
type LogForm struct {
	siteInput textinput.Model
	crewInput textinput.Model
	notesArea textarea.Model

	focusIndex int // 0=site, 1=crew, 2=notes
	width      int
}

// NewLogForm creates the form, pre-filled from settings defaults.
func NewLogForm(defaultSite string, defaultCrew int, width int) *LogForm {
	si := textinput.New()
	si.Placeholder = "Site name (optional)"
	si.CharLimit = 120
	si.Width = width - 8
	if defaultSite != "" {
		si.SetValue(defaultSite)
	}

	ci := textinput.New()
	ci.Placeholder = "Crew size (optional)"
	ci.CharLimit = 4
	ci.Width = width - 8
	if defaultCrew > 0 {
		ci.SetValue(strconv.Itoa(defaultCrew))
	}

	na := textarea.New()
	na.Placeholder = "What happened on site today?"
	na.SetWidth(width - 8)
	na.SetHeight(6)

	f := &LogForm{
		siteInput: si,
		crewInput: ci,
		notesArea: na,
		width:     width,
	}

	// Notes is where typing starts
	f.focusIndex = 2
	f.notesArea.Focus()

	return f
}

// FocusNext moves to the next field.
func (f *LogForm) FocusNext() {
	f.blurAll()
	f.focusIndex = (f.focusIndex + 1) % 3
	f.focusCurrent()
}

// FocusPrev moves to the previous field.
func (f *LogForm) FocusPrev() {
	f.blurAll()
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = 2
	}
	f.focusCurrent()
}

func (f *LogForm) blurAll() {
	f.siteInput.Blur()
	f.crewInput.Blur()
	f.notesArea.Blur()
}

func (f *LogForm) focusCurrent() {
	switch f.focusIndex {
	case 0:
		f.siteInput.Focus()
	case 1:
		f.crewInput.Focus()
	case 2:
		f.notesArea.Focus()
	}
}

// FocusIndex returns the currently focused field index.
func (f *LogForm) FocusIndex() int {
	return f.focusIndex
}

// SiteInput returns the site input model for update forwarding.
func (f *LogForm) SiteInput() *textinput.Model {
	return &f.siteInput
}

// CrewInput returns the crew input model for update forwarding.
func (f *LogForm) CrewInput() *textinput.Model {
	return &f.crewInput
}

// NotesArea returns the notes textarea model for update forwarding.
func (f *LogForm) NotesArea() *textarea.Model {
	return &f.notesArea
}

// Draft builds a LogDraft from the current field values. A non-numeric
// crew size is an error; an empty one means not provided.
func (f *LogForm) Draft() (models.LogDraft, error) {
	draft := models.LogDraft{
		SiteName: strings.TrimSpace(f.siteInput.Value()),
		Notes:    f.notesArea.Value(),
	}

	crew := strings.TrimSpace(f.crewInput.Value())
	if crew != "" {
		n, err := strconv.Atoi(crew)
		if err != nil || n < 0 {
			return draft, fmt.Errorf("crew size must be a number")
		}
		draft.CrewSize = n
	}

	return draft, nil
}

// SetSize updates field widths after a terminal resize.
func (f *LogForm) SetSize(width int) {
	f.width = width
	f.siteInput.Width = width - 8
	f.crewInput.Width = width - 8
	f.notesArea.SetWidth(width - 8)
}

// View renders the form fields.
func (f *LogForm) View() string {
	parts := make([]string, 0, 10)

	parts = append(parts, formLabelStyle.Render("Site:"), f.siteInput.View(), "")
	parts = append(parts, formLabelStyle.Render("Crew Size:"), f.crewInput.View(), "")
	parts = append(parts, formLabelStyle.Render("Notes:"), f.notesArea.View())

	return strings.Join(parts, "\n")
}
