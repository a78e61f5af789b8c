package tui

import (
	"errors"
	"testing"

	"github.com/samueldoiron-bot/sitelog/internal/models"
)

func newTestModel() Model {
	m := NewModel(models.NewSettings())
	m.width = 100
	m.height = 30
	return m
}

func TestGenerateRequiresNotes(t *testing.T) {
	m := newTestModel()
	m.switchToView(viewNewLog)

	cmd := m.generate()
	if cmd == nil {
		t.Fatal("expected an error command")
	}
	if m.err == nil {
		t.Fatal("expected an error for empty notes")
	}
	if m.generating {
		t.Error("generating should not be set on validation failure")
	}
}

func TestGenerateBlockedWhileInFlight(t *testing.T) {
	m := newTestModel()
	m.connected = true
	m.switchToView(viewNewLog)
	m.logForm.NotesArea().SetValue("delivery was late")

	m.generating = true
	if cmd := m.generate(); cmd != nil {
		t.Error("expected generate to be a no-op while a request is in flight")
	}
}

func TestGenerateRequiresConnection(t *testing.T) {
	m := newTestModel()
	m.switchToView(viewNewLog)
	m.logForm.NotesArea().SetValue("delivery was late")

	m.generate()
	if m.err == nil {
		t.Fatal("expected an error when the daemon is not connected")
	}
	if m.generating {
		t.Error("generating should not be set without a connection")
	}
}

func TestGenerateRejectsBadCrewSize(t *testing.T) {
	m := newTestModel()
	m.connected = true
	m.switchToView(viewNewLog)
	m.logForm.NotesArea().SetValue("all quiet")
	m.logForm.CrewInput().SetValue("six")

	m.generate()
	if m.err == nil {
		t.Fatal("expected an error for a non-numeric crew size")
	}
}

func TestSummaryResultStoresGenerated(t *testing.T) {
	m := newTestModel()
	m.generating = true

	updated, _ := m.Update(SummaryResultMsg{
		Summary: "Date: 2026-08-31\nSite: Unknown\nCrew: N/A\nSummary: all quiet...",
		Labels:  []string{"Delay"},
	})
	m = updated.(Model)

	if m.generating {
		t.Error("generating should clear when the result arrives")
	}
	if m.generated == nil {
		t.Fatal("expected generated result to be stored")
	}
	if m.generated.Status != models.GeneratedOK {
		t.Errorf("expected status ok, got %q", m.generated.Status)
	}
}

func TestErrorSurfacedAndClearsGenerating(t *testing.T) {
	m := newTestModel()
	m.generating = true

	updated, _ := m.Update(ErrorMsg{Err: errors.New("daemon unreachable")})
	m = updated.(Model)

	if m.err == nil {
		t.Fatal("expected the error to be surfaced")
	}
	if m.generating {
		t.Error("generating should clear on error")
	}
}

func TestSaveEmptyDraft(t *testing.T) {
	m := newTestModel()
	m.switchToView(viewNewLog)

	m.saveEntry()
	if m.err == nil {
		t.Fatal("expected an error saving an empty draft")
	}
	if m.history.Len() != 0 {
		t.Errorf("expected no history entries, got %d", m.history.Len())
	}
}

func TestSavePrependsAndResetsForm(t *testing.T) {
	m := newTestModel()
	m.switchToView(viewNewLog)
	m.logForm.SiteInput().SetValue("NB Refinery")
	m.logForm.NotesArea().SetValue("first entry")
	m.generated = &models.Generated{Summary: "s1", Labels: []string{}, Status: models.GeneratedOK}

	m.saveEntry()

	if m.history.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", m.history.Len())
	}
	if m.activeView != viewHistory {
		t.Errorf("expected to land on the history view, got %d", m.activeView)
	}
	if m.logForm != nil {
		t.Error("expected the form to reset after save")
	}
	if m.generated != nil {
		t.Error("expected the generated result to reset after save")
	}
	if !m.showSaved {
		t.Error("expected the saved indicator")
	}

	// Second save lands first in the list
	m.switchToView(viewNewLog)
	m.logForm.NotesArea().SetValue("second entry")
	m.saveEntry()

	entries := m.history.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Notes != "second entry" {
		t.Errorf("expected newest entry first, got %q", entries[0].Notes)
	}
	if entries[0].Generated != nil {
		t.Error("entry saved without generating should carry no summary")
	}
	if entries[1].Generated == nil || entries[1].Generated.Summary != "s1" {
		t.Error("first entry should keep its generated summary")
	}
}

func TestNavigationDiscardsDraft(t *testing.T) {
	m := newTestModel()
	m.switchToView(viewNewLog)
	m.logForm.NotesArea().SetValue("unsaved notes")
	m.generated = &models.Generated{Summary: "s", Status: models.GeneratedOK}

	m.switchToView(viewDashboard)

	if m.logForm != nil {
		t.Error("expected the draft to be discarded on navigation")
	}
	if m.generated != nil {
		t.Error("expected the generated result to be discarded on navigation")
	}
	if m.history.Len() != 0 {
		t.Errorf("navigation must not save entries, got %d", m.history.Len())
	}

	// Re-entering the form starts fresh
	m.switchToView(viewNewLog)
	if m.logForm.NotesArea().Value() != "" {
		t.Error("expected a fresh form after re-entering")
	}
}
