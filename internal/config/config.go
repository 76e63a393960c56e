// Package config builds the run configuration from environment variables.
//
// All settings come from the environment (optionally seeded from a .env
// file by the CLI), are validated once at startup, and are passed down as
// an explicit struct; no package reads the environment after that.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dhenderson/gameday-events/internal/dedup"
	"github.com/dhenderson/gameday-events/internal/scoreboard"
)

const (
	// DefaultDedupTitle names the persisted record holding announced ids.
	DefaultDedupTitle = "Announced games"
	// DefaultTimezone is the zone kickoff times are rendered in.
	DefaultTimezone = "America/Chicago"
)

// defaultSources are the scoreboard endpoints checked when
// SCOREBOARD_URLS is not set. The label leads each announcement, so it
// carries the sport glyph.
var defaultSources = []scoreboard.Source{
	{
		Label: "🏀 Men's Basketball",
		URL:   "https://site.api.espn.com/apis/site/v2/sports/basketball/mens-college-basketball/scoreboard",
	},
	{
		Label: "🏈 Football",
		URL:   "https://site.api.espn.com/apis/site/v2/sports/football/college-football/scoreboard",
	},
}

// Config holds everything one run needs. Required fields are validated by
// FromEnv; zero-value optional fields carry their documented defaults.
type Config struct {
	WebhookURL   string
	GitHubToken  string
	GitHubRepo   string // "owner/repo" hosting the dedup issue
	GitHubAPIURL string
	DedupTitle   string
	Timezone     string
	RoleMentions map[int]string // org number -> chat role id
	Sources      []scoreboard.Source
}

// FromEnv reads and validates the configuration from the environment.
// Missing required settings produce an error listing every missing name,
// so a misconfigured scheduler job fails once with a complete diagnosis.
func FromEnv() (*Config, error) {
	cfg := &Config{
		WebhookURL:   os.Getenv("WEBHOOK_URL"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		GitHubRepo:   os.Getenv("GITHUB_REPO"),
		GitHubAPIURL: os.Getenv("GITHUB_API_URL"),
		DedupTitle:   os.Getenv("DEDUP_TITLE"),
		Timezone:     os.Getenv("TIMEZONE"),
	}

	var missing []string
	if cfg.WebhookURL == "" {
		missing = append(missing, "WEBHOOK_URL")
	}
	if cfg.GitHubToken == "" {
		missing = append(missing, "GITHUB_TOKEN")
	}
	if cfg.GitHubRepo == "" {
		missing = append(missing, "GITHUB_REPO")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s",
			strings.Join(missing, ", "))
	}

	if cfg.GitHubAPIURL == "" {
		cfg.GitHubAPIURL = dedup.DefaultAPIURL
	}
	if cfg.DedupTitle == "" {
		cfg.DedupTitle = DefaultDedupTitle
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}

	mentions, err := parseRoleMentions(os.Getenv("ROLE_MENTIONS"))
	if err != nil {
		return nil, err
	}
	cfg.RoleMentions = mentions

	sources, err := parseSources(os.Getenv("SCOREBOARD_URLS"))
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		sources = defaultSources
	}
	cfg.Sources = sources

	return cfg, nil
}

// parseRoleMentions decodes the optional ROLE_MENTIONS JSON map of
// org-number strings to chat role ids, e.g. {"100": "1234567890"}.
func parseRoleMentions(raw string) (map[int]string, error) {
	if raw == "" {
		return nil, nil
	}

	var byKey map[string]string
	if err := json.Unmarshal([]byte(raw), &byKey); err != nil {
		return nil, fmt.Errorf("parsing ROLE_MENTIONS: %w", err)
	}

	mentions := make(map[int]string, len(byKey))
	for key, mention := range byKey {
		org, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("parsing ROLE_MENTIONS key %q: %w", key, err)
		}
		mentions[org] = mention
	}
	return mentions, nil
}

// parseSources decodes the optional SCOREBOARD_URLS override: a
// comma-separated list of label=url pairs.
func parseSources(raw string) ([]scoreboard.Source, error) {
	if raw == "" {
		return nil, nil
	}

	var sources []scoreboard.Source
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		label, url, ok := strings.Cut(pair, "=")
		if !ok || label == "" || url == "" {
			return nil, fmt.Errorf("invalid SCOREBOARD_URLS entry %q (want label=url)", pair)
		}
		sources = append(sources, scoreboard.Source{
			Label: strings.TrimSpace(label),
			URL:   strings.TrimSpace(url),
		})
	}
	return sources, nil
}
