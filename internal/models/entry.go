package models

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedStatus reports the outcome of a summarize round trip.
type GeneratedStatus string

const (
	GeneratedOK GeneratedStatus = "ok"
)

// Generated is the summary text and label set returned by the daemon
// for a given draft.
type Generated struct {
	Summary string          `json:"summary" yaml:"summary"`
	Labels  []string        `json:"labels" yaml:"labels"`
	Status  GeneratedStatus `json:"status" yaml:"status"`
}

// LogDraft is the in-progress, unsaved log entry being edited.
// It is owned by the new-log form and discarded on save or navigation.
type LogDraft struct {
	SiteName string
	CrewSize int
	Notes    string
}

// IsEmpty reports whether the draft carries no user input at all.
func (d *LogDraft) IsEmpty() bool {
	return d.SiteName == "" && d.CrewSize == 0 && d.Notes == ""
}

// LogEntry is a saved daily log. Entries live in the in-memory history
// list only; they are never updated or deleted and do not survive exit.
type LogEntry struct {
	ID        string
	Date      string // "2006-01-02"
	SiteName  string
	CrewSize  int
	Notes     string
	Generated *Generated // nil if the user saved without generating
	SavedAt   time.Time
}

// NewLogEntry creates an entry from a draft and the last generated result.
func NewLogEntry(draft LogDraft, generated *Generated) *LogEntry {
	now := time.Now()
	return &LogEntry{
		ID:        uuid.NewString(),
		Date:      now.Format("2006-01-02"),
		SiteName:  draft.SiteName,
		CrewSize:  draft.CrewSize,
		Notes:     draft.Notes,
		Generated: generated,
		SavedAt:   now,
	}
}

// History is the in-memory, most-recent-first sequence of saved logs.
type History struct {
	entries []*LogEntry
}

// Add prepends an entry so the most recent save is always first.
func (h *History) Add(e *LogEntry) {
	h.entries = append([]*LogEntry{e}, h.entries...)
}

// Entries returns the entries, newest first.
func (h *History) Entries() []*LogEntry {
	return h.entries
}

// Len returns the number of saved entries.
func (h *History) Len() int {
	return len(h.entries)
}
