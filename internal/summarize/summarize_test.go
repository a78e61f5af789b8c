package summarize

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

// fixedSummarizer returns a PatternSummarizer pinned to a known date.
func fixedSummarizer() *PatternSummarizer {
	s := NewPatternSummarizer()
	s.now = func() time.Time {
		return time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	}
	return s
}

func TestSummarizeTemplate(t *testing.T) {
	s := fixedSummarizer()

	result, err := s.Summarize(context.Background(), Request{
		Text:     "Crew reported a safety incident and a delivery delay today",
		SiteName: "NB Refinery",
		CrewSize: 6,
	})
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	lines := strings.Split(result.Summary, "\n")
	if len(lines) != 4 {
		t.Fatalf("summary has %d lines, want 4:\n%s", len(lines), result.Summary)
	}
	if lines[0] != "Date: 2026-08-31" {
		t.Errorf("date line = %q", lines[0])
	}
	if lines[1] != "Site: NB Refinery" {
		t.Errorf("site line = %q", lines[1])
	}
	if lines[2] != "Crew: 6" {
		t.Errorf("crew line = %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "Summary: ") || !strings.HasSuffix(lines[3], "...") {
		t.Errorf("summary line = %q", lines[3])
	}

	expected := []string{"Delay", "Safety", "Delivery"}
	if !reflect.DeepEqual(result.Labels, expected) {
		t.Errorf("labels = %v, want %v", result.Labels, expected)
	}
}

func TestSummarizeDefaults(t *testing.T) {
	s := fixedSummarizer()

	result, err := s.Summarize(context.Background(), Request{
		Text: "Nothing notable",
	})
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if !strings.Contains(result.Summary, "Site: Unknown") {
		t.Errorf("missing site default in %q", result.Summary)
	}
	if !strings.Contains(result.Summary, "Crew: N/A") {
		t.Errorf("missing crew default in %q", result.Summary)
	}
	if len(result.Labels) != 0 {
		t.Errorf("labels = %v, want none", result.Labels)
	}
}

func TestSummarizeTruncation(t *testing.T) {
	s := fixedSummarizer()

	long := strings.Repeat("a", 450)
	result, err := s.Summarize(context.Background(), Request{Text: long})
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	lines := strings.Split(result.Summary, "\n")
	last := lines[len(lines)-1]
	want := "Summary: " + strings.Repeat("a", 200) + "..."
	if last != want {
		t.Errorf("truncated line length = %d, want %d", len(last), len(want))
	}
}

func TestSummarizeShortTextKeptWhole(t *testing.T) {
	s := fixedSummarizer()

	result, err := s.Summarize(context.Background(), Request{Text: "short note"})
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if !strings.Contains(result.Summary, "Summary: short note...") {
		t.Errorf("summary = %q", result.Summary)
	}
}

func TestSummarizeEmptyText(t *testing.T) {
	s := fixedSummarizer()

	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Summarize(context.Background(), Request{Text: tt.text})
			if !errors.Is(err, ErrEmptyText) {
				t.Errorf("Summarize(%q) error = %v, want ErrEmptyText", tt.text, err)
			}
		})
	}
}
