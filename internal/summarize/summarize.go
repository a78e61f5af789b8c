// Package summarize derives a formatted daily-log summary and a set of
// category labels from free-text site notes.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// maxSummaryRunes is how much of the notes text survives into the
// summary line. This is a truncation, not a summarization.
const maxSummaryRunes = 200

// ErrEmptyText is returned when the notes text is absent or whitespace.
var ErrEmptyText = errors.New("text is required")

// Request carries the notes text and its metadata.
type Request struct {
	Text     string
	SiteName string // "" = unknown site
	CrewSize int    // 0 = not reported
}

// Result is the derived summary and label set.
type Result struct {
	Summary string
	Labels  []string
}

// Summarizer turns a request into a summary and labels. The pattern
// implementation below is a mock; a model-backed implementation can
// replace it without touching the daemon's HTTP contract.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (Result, error)
}

// PatternSummarizer builds the summary from a fixed template and assigns
// labels by regex matching. It performs no inference.
type PatternSummarizer struct {
	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewPatternSummarizer creates the pattern-matching summarizer.
func NewPatternSummarizer() *PatternSummarizer {
	return &PatternSummarizer{now: time.Now}
}

// Summarize implements Summarizer. Empty or whitespace-only text is
// rejected with ErrEmptyText rather than producing a degenerate summary.
func (s *PatternSummarizer) Summarize(_ context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Result{}, ErrEmptyText
	}

	site := req.SiteName
	if site == "" {
		site = "Unknown"
	}

	crew := "N/A"
	if req.CrewSize > 0 {
		crew = fmt.Sprintf("%d", req.CrewSize)
	}

	summary := fmt.Sprintf("Date: %s\nSite: %s\nCrew: %s\nSummary: %s...",
		s.now().Format("2006-01-02"),
		site,
		crew,
		truncateRunes(req.Text, maxSummaryRunes),
	)

	return Result{
		Summary: summary,
		Labels:  DetectLabels(req.Text),
	}, nil
}

// truncateRunes returns at most n runes of s.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
