package scoreboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func fixtureServer(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != UserAgent {
			t.Errorf("missing user agent, got %q", r.Header.Get("User-Agent"))
		}
		w.WriteHeader(status)
		w.Write(body) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/scoreboard_sample.json")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	srv := fixtureServer(t, http.StatusOK, data)

	c := NewClient()
	events, err := c.Fetch(context.Background(), Source{Label: "College Football (FCS)", URL: srv.URL})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	evt := events[0]
	if evt.ID != "401628943" {
		t.Errorf("ID = %q", evt.ID)
	}
	if evt.SportLabel != "College Football (FCS)" {
		t.Errorf("SportLabel = %q", evt.SportLabel)
	}
	if evt.Date != "2026-09-05T23:00Z" {
		t.Errorf("Date = %q", evt.Date)
	}
	if len(evt.Competitors) != 2 {
		t.Fatalf("expected 2 competitors, got %d", len(evt.Competitors))
	}
	if evt.Competitors[0].HomeAway != "home" || evt.Competitors[0].TeamID != "2296" {
		t.Errorf("home competitor = %+v", evt.Competitors[0])
	}
	if evt.Competitors[1].DisplayName != "Alcorn State Braves" {
		t.Errorf("away display name = %q", evt.Competitors[1].DisplayName)
	}
	if evt.Venue.Name != "Mississippi Veterans Memorial Stadium" || evt.Venue.City != "Jackson" || evt.Venue.State != "MS" {
		t.Errorf("venue = %+v", evt.Venue)
	}
	if len(evt.Broadcasts) != 1 || evt.Broadcasts[0] != "ESPN+" {
		t.Errorf("broadcasts = %v", evt.Broadcasts)
	}
	if evt.NeutralSite {
		t.Error("event 1 should not be neutral site")
	}

	// second event has no role tags and no broadcasts
	evt = events[1]
	if !evt.NeutralSite {
		t.Error("event 2 should be neutral site")
	}
	if evt.Competitors[0].HomeAway != "" {
		t.Errorf("expected empty homeAway, got %q", evt.Competitors[0].HomeAway)
	}
	if len(evt.Broadcasts) != 0 {
		t.Errorf("broadcasts = %v", evt.Broadcasts)
	}
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"not found", http.StatusNotFound, ""},
		{"malformed JSON", http.StatusOK, "{not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))
			defer srv.Close()

			c := NewClient()
			_, err := c.Fetch(context.Background(), Source{Label: "test", URL: srv.URL})
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient()
	_, err := c.Fetch(context.Background(), Source{Label: "test", URL: srv.URL})
	if err == nil {
		t.Error("expected error for unreachable server")
	}
}

func TestFlatten_SkipsIncompleteEvents(t *testing.T) {
	raw := `{"events": [
		{"id": "1", "date": "2026-09-05T23:00Z"},
		{"date": "2026-09-05T23:00Z", "competitions": [{"neutralSite": false}]}
	]}`

	var doc scoreboardResponse
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatal(err)
	}

	events := flatten(doc, "test")
	if len(events) != 0 {
		t.Errorf("expected 0 events, got %d", len(events))
	}
}
