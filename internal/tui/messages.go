package tui

import (
	"github.com/samueldoiron-bot/sitelog/internal/client"
)

// DaemonConnectedMsg signals a successful daemon health check.
type DaemonConnectedMsg struct {
	Client *client.Client
}

// SummaryResultMsg carries the daemon's response to a summarize request.
type SummaryResultMsg struct {
	Summary string
	Labels  []string
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearSavedMsg clears the "Saved" indicator.
type ClearSavedMsg struct{}
