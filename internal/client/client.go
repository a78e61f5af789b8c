// Package client is the HTTP client for the sitelogd API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/samueldoiron-bot/sitelog/internal/config"
)

// Client talks to a running sitelogd instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the daemon at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Discover creates a client from ~/.sitelog/daemon.yaml.
// Returns an error if the daemon is not running.
func Discover() (*Client, error) {
	info, err := config.LoadDaemonInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to load daemon info: %w", err)
	}
	if info == nil {
		return nil, fmt.Errorf("daemon not running")
	}
	return New(fmt.Sprintf("http://%s:%d", info.Host, info.Port)), nil
}

// SummarizeRequest mirrors the daemon's POST /api/summarize body.
type SummarizeRequest struct {
	Text     string `json:"text"`
	CrewSize *int   `json:"crewSize,omitempty"`
	SiteName string `json:"siteName,omitempty"`
}

// SummarizeResponse mirrors the daemon's success body.
type SummarizeResponse struct {
	Summary string   `json:"summary"`
	Labels  []string `json:"labels"`
	Status  string   `json:"status"`
}

// apiError is the daemon's error body.
type apiError struct {
	Error string `json:"error"`
}

// Summarize submits notes text and metadata and returns the derived
// summary and labels.
func (c *Client) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/summarize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach daemon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("summarize failed: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("summarize failed: HTTP %d", resp.StatusCode)
	}

	var out SummarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// Health checks daemon liveness.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach daemon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("daemon unhealthy: HTTP %d", resp.StatusCode)
	}
	return nil
}
