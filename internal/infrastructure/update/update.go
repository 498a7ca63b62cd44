// Package update checks the GitHub release feed for newer textact builds.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	githubRepo   = "textact/textact"
	githubAPIURL = "https://api.github.com/repos/" + githubRepo + "/releases/latest"
	checkTimeout = 10 * time.Second
)

// Release is the subset of the GitHub release payload the checker reads.
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker queries the release feed.
type Checker struct {
	apiURL string
	client *http.Client
}

// NewChecker builds a checker against the canonical release feed.
func NewChecker() *Checker {
	return NewCheckerAt(githubAPIURL)
}

// NewCheckerAt points the checker at an alternate feed URL.
func NewCheckerAt(apiURL string) *Checker {
	return &Checker{
		apiURL: apiURL,
		client: &http.Client{Timeout: checkTimeout},
	}
}

// Latest fetches the most recent release.
func (c *Checker) Latest(ctx context.Context) (Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return Release{}, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("check for updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("release feed returned status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Release{}, fmt.Errorf("parse release info: %w", err)
	}
	return release, nil
}

// NeedsUpdate compares version strings and reports whether latest is newer.
// Versions look like "vX.Y.Z" or "X.Y.Z"; dev builds always count as stale.
func NeedsUpdate(current, latest string) bool {
	current = strings.TrimPrefix(current, "v")
	latest = strings.TrimPrefix(latest, "v")

	if current == "dev" {
		return latest != "dev"
	}

	currentParts := parseVersion(current)
	latestParts := parseVersion(latest)

	for i := 0; i < 3; i++ {
		if latestParts[i] > currentParts[i] {
			return true
		}
		if latestParts[i] < currentParts[i] {
			return false
		}
	}
	return false
}

func parseVersion(v string) [3]int {
	var parts [3]int
	fmt.Sscanf(v, "%d.%d.%d", &parts[0], &parts[1], &parts[2])
	return parts
}
