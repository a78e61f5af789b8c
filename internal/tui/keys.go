package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit key.Binding
	Help key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q", "ctrl+c"),
		key.WithHelp("Ctrl+q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("Ctrl+h", "help"),
	),
}

// ViewSwitchKeys switch between the three views. Only active outside
// the log form, where digits belong to the inputs.
type ViewSwitchKeys struct {
	Dashboard key.Binding
	NewLog    key.Binding
	History   key.Binding
	Left      key.Binding
	Right     key.Binding
}

var viewSwitchKeys = ViewSwitchKeys{
	Dashboard: key.NewBinding(
		key.WithKeys("1", "d"),
		key.WithHelp("1", "Dashboard"),
	),
	NewLog: key.NewBinding(
		key.WithKeys("2", "n"),
		key.WithHelp("2", "New Log"),
	),
	History: key.NewBinding(
		key.WithKeys("3", "h"),
		key.WithHelp("3", "History"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
	),
}

// FormKeys are active in the New Log view.
type FormKeys struct {
	Generate key.Binding
	Save     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Back     key.Binding
}

var formKeys = FormKeys{
	Generate: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("Ctrl+g", "generate"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("Ctrl+s", "save"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("Shift+Tab", "prev field"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
}

// HistoryKeys are active in the History view.
type HistoryKeys struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
}

var historyKeys = HistoryKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "view"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
}

// OverlayKeys are active when the help overlay is shown.
type OverlayKeys struct {
	Cancel key.Binding
}

var overlayKeys = OverlayKeys{
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
}
