// Package updater checks GitHub Releases for newer Sitelog versions.
package updater

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/samueldoiron-bot/sitelog/internal/buildinfo"
	"github.com/samueldoiron-bot/sitelog/internal/models"
)

// releasesURL is a var so tests can point it at a local server.
var releasesURL = "https://api.github.com/repos/samueldoiron-bot/sitelog/releases/latest"

// Release is the subset of the GitHub release payload we care about.
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Result is the outcome of an update check.
type Result struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
}

// CheckForUpdate queries the GitHub Releases API for a newer version.
func CheckForUpdate() (*Result, error) {
	req, err := http.NewRequest("GET", releasesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "sitelog/"+buildinfo.Version)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// No releases yet
		return &Result{CurrentVersion: buildinfo.Version}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	result := &Result{
		CurrentVersion: buildinfo.Version,
		LatestVersion:  latest,
		ReleaseURL:     release.HTMLURL,
	}

	cmp, err := CompareVersions(buildinfo.Version, latest)
	if err != nil {
		// Dev builds and unparseable versions always count as older
		result.Available = true
		return result, nil
	}
	result.Available = cmp < 0
	return result, nil
}

// ShouldCheck reports whether an automatic check is due per settings.
func ShouldCheck(s *models.Settings, now time.Time) bool {
	if !s.Updates.CheckOnStartup {
		return false
	}
	if s.Updates.CheckFrequency == "every_launch" {
		return true
	}
	if s.Updates.LastChecked == nil {
		return true
	}

	var interval time.Duration
	switch s.Updates.CheckFrequency {
	case "weekly":
		interval = 7 * 24 * time.Hour
	default: // daily
		interval = 24 * time.Hour
	}
	return now.Sub(*s.Updates.LastChecked) >= interval
}

// CompareVersions compares two "major.minor.patch" strings, returning
// -1, 0 or 1. A leading "v" is accepted.
func CompareVersions(a, b string) (int, error) {
	av, err := parseVersion(a)
	if err != nil {
		return 0, err
	}
	bv, err := parseVersion(b)
	if err != nil {
		return 0, err
	}

	for i := 0; i < 3; i++ {
		if av[i] != bv[i] {
			if av[i] < bv[i] {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, nil
}

func parseVersion(s string) ([3]int, error) {
	var v [3]int
	s = strings.TrimPrefix(s, "v")
	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return v, fmt.Errorf("invalid version: %q", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return v, fmt.Errorf("invalid version component %q: %w", p, err)
		}
		v[i] = n
	}
	return v, nil
}
