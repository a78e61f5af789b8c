package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/summarize" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req SummarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Text != "delivery arrived late" {
			t.Errorf("expected text to round-trip, got %q", req.Text)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SummarizeResponse{
			Summary: "Date: 2026-08-31\nSite: Unknown\nCrew: N/A\nSummary: delivery arrived late...",
			Labels:  []string{"Delay", "Delivery"},
			Status:  "ok",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Summarize(context.Background(), SummarizeRequest{Text: "delivery arrived late"})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	if len(resp.Labels) != 2 || resp.Labels[0] != "Delay" || resp.Labels[1] != "Delivery" {
		t.Errorf("unexpected labels: %v", resp.Labels)
	}
}

func TestSummarizeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "text is required"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Summarize(context.Background(), SummarizeRequest{})
	if err == nil {
		t.Fatal("expected an error for a 400 response")
	}
	if !strings.Contains(err.Error(), "text is required") {
		t.Errorf("expected the server message in the error, got %q", err.Error())
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := New(srv.URL).Health(context.Background()); err != nil {
		t.Errorf("Health failed: %v", err)
	}
}

func TestHealthUnhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if err := New(srv.URL).Health(context.Background()); err == nil {
		t.Error("expected an error for an unhealthy daemon")
	}
}
