package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/samueldoiron-bot/sitelog/internal/buildinfo"
	"github.com/samueldoiron-bot/sitelog/internal/summarize"
)

// SummarizeRequest is the POST /api/summarize request body.
type SummarizeRequest struct {
	Text     string `json:"text"`
	CrewSize *int   `json:"crewSize,omitempty"`
	SiteName string `json:"siteName,omitempty"`
}

// SummarizeResponse is the POST /api/summarize success body.
type SummarizeResponse struct {
	Summary string   `json:"summary"`
	Labels  []string `json:"labels"`
	Status  string   `json:"status"`
}

// errorResponse is the body for any non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleSummarize derives a formatted summary and category labels from
// the submitted notes. Missing or empty text is a validation error, not
// a server fault.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		summarizeRequests.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	crew := 0
	if req.CrewSize != nil {
		crew = *req.CrewSize
	}

	result, err := s.summarizer.Summarize(r.Context(), summarize.Request{
		Text:     req.Text,
		SiteName: req.SiteName,
		CrewSize: crew,
	})
	if err != nil {
		if errors.Is(err, summarize.ErrEmptyText) {
			summarizeRequests.WithLabelValues("bad_request").Inc()
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}
		s.logger.WithError(err).Error("summarize failed")
		summarizeRequests.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	summarizeRequests.WithLabelValues("ok").Inc()
	summarizeDuration.Observe(time.Since(start).Seconds())
	for _, label := range result.Labels {
		labelsMatched.WithLabelValues(label).Inc()
	}

	writeJSON(w, http.StatusOK, SummarizeResponse{
		Summary: result.Summary,
		Labels:  result.Labels,
		Status:  "ok",
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
