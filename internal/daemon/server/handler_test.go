package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/samueldoiron-bot/sitelog/internal/summarize"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return &Server{
		logger:     logger,
		summarizer: summarize.NewPatternSummarizer(),
	}
}

func postSummarize(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func TestSummarizeEndpoint(t *testing.T) {
	s := testServer(t)

	rec := postSummarize(t, s, `{"text":"Crew reported a safety incident and a delivery delay today","siteName":"NB Refinery","crewSize":6}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp SummarizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("status field = %q, want ok", resp.Status)
	}
	want := []string{"Delay", "Safety", "Delivery"}
	if len(resp.Labels) != len(want) {
		t.Fatalf("labels = %v, want %v", resp.Labels, want)
	}
	for i := range want {
		if resp.Labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, resp.Labels[i], want[i])
		}
	}
	if !strings.Contains(resp.Summary, "Site: NB Refinery") {
		t.Errorf("summary missing site: %q", resp.Summary)
	}
	if !strings.Contains(resp.Summary, "Crew: 6") {
		t.Errorf("summary missing crew: %q", resp.Summary)
	}
}

func TestSummarizeEndpointNoMatches(t *testing.T) {
	s := testServer(t)

	rec := postSummarize(t, s, `{"text":"Routine formwork on level 3"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// Empty label set must serialize as [], not null.
	if !strings.Contains(rec.Body.String(), `"labels":[]`) {
		t.Errorf("body = %s, want empty labels array", rec.Body.String())
	}
}

func TestSummarizeEndpointValidation(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"missing text", `{"siteName":"NB Refinery"}`, http.StatusBadRequest},
		{"empty text", `{"text":""}`, http.StatusBadRequest},
		{"whitespace text", `{"text":"   "}`, http.StatusBadRequest},
		{"malformed JSON", `{"text":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postSummarize(t, s, tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid error JSON: %v", err)
			}
			if resp.Error == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
