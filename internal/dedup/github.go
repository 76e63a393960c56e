package dedup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultAPIURL is the public GitHub API endpoint.
	DefaultAPIURL = "https://api.github.com"

	issueTimeout = 15 * time.Second
)

// IssueStore keeps the dedup set in the body of a GitHub issue. The issue
// is found by exact title match within the configured repository.
type IssueStore struct {
	apiURL string
	repo   string // "owner/repo"
	client *http.Client
}

// NewIssueStore creates an issue-backed store for the given repository.
// apiURL is normally DefaultAPIURL; tests point it at a fake server.
func NewIssueStore(apiURL, repo, token string) (*IssueStore, error) {
	if repo == "" {
		return nil, fmt.Errorf("repository is required")
	}
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := oauth2.NewClient(context.Background(), ts)
	client.Timeout = issueTimeout

	return &IssueStore{
		apiURL: apiURL,
		repo:   repo,
		client: client,
	}, nil
}

type issue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// FindOrCreate searches the repository's open issues for one with the
// given title, creating a fresh issue with an empty-set body when none
// exists. A manually closed record issue is retired, not reused.
func (s *IssueStore) FindOrCreate(title string) (*Record, error) {
	url := fmt.Sprintf("%s/repos/%s/issues?state=open&per_page=100", s.apiURL, s.repo)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API error (status %d)", resp.StatusCode)
	}

	var issues []issue
	if err := json.NewDecoder(resp.Body).Decode(&issues); err != nil {
		return nil, fmt.Errorf("decoding issue list: %w", err)
	}

	for _, is := range issues {
		if is.Title == title {
			return &Record{Number: is.Number, Body: is.Body}, nil
		}
	}

	return s.create(title)
}

// create opens a new issue holding an empty id set.
func (s *IssueStore) create(title string) (*Record, error) {
	payload, err := json.Marshal(map[string]string{
		"title": title,
		"body":  "[]",
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/issues", s.apiURL, s.repo)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("GitHub API error (status %d)", resp.StatusCode)
	}

	var created issue
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &Record{Number: created.Number, Body: created.Body}, nil
}

// Read parses the record body into a set of event ids.
func (s *IssueStore) Read(rec *Record) map[string]struct{} {
	return ParseIDs(rec.Body)
}

// Write replaces the issue body with the sorted, pretty-printed JSON
// array of ids.
func (s *IssueStore) Write(rec *Record, ids map[string]struct{}) error {
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	sort.Strings(list)

	body, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding id set: %w", err)
	}

	payload, err := json.Marshal(map[string]string{
		"body": string(body),
	})
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/issues/%d", s.apiURL, s.repo, rec.Number)

	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("updating issue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API error (status %d)", resp.StatusCode)
	}

	rec.Body = string(body)
	return nil
}
