package scoreboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	UserAgent = "gameday-events/1.0 (github.com/dhenderson/gameday-events)"
	Timeout   = 15 * time.Second
)

// Client fetches scoreboard documents over HTTP.
type Client struct {
	client *http.Client
}

// NewClient creates a scoreboard client with a bounded request timeout.
func NewClient() *Client {
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// scoreboardResponse mirrors the slice of the provider document we care
// about. Unknown fields are ignored.
type scoreboardResponse struct {
	Events []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Date         string `json:"date"`
		Competitions []struct {
			NeutralSite bool `json:"neutralSite"`
			Competitors []struct {
				ID       string `json:"id"`
				HomeAway string `json:"homeAway"`
				Team     struct {
					ID               string `json:"id"`
					Location         string `json:"location"`
					Name             string `json:"name"`
					DisplayName      string `json:"displayName"`
					ShortDisplayName string `json:"shortDisplayName"`
					Abbreviation     string `json:"abbreviation"`
				} `json:"team"`
			} `json:"competitors"`
			Venue struct {
				FullName string `json:"fullName"`
				Address  struct {
					City  string `json:"city"`
					State string `json:"state"`
				} `json:"address"`
			} `json:"venue"`
			Broadcasts []struct {
				Names []string `json:"names"`
			} `json:"broadcasts"`
		} `json:"competitions"`
	} `json:"events"`
}

// Fetch retrieves and parses one source's scoreboard. The returned events
// carry the source's sport label.
func (c *Client) Fetch(ctx context.Context, src Source) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var doc scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing scoreboard: %w", err)
	}

	return flatten(doc, src.Label), nil
}

// flatten converts the provider document into Event records. Only the
// first competition of each event is considered; provider documents for
// scheduled games carry exactly one.
func flatten(doc scoreboardResponse, label string) []Event {
	events := make([]Event, 0, len(doc.Events))

	for _, raw := range doc.Events {
		if raw.ID == "" || len(raw.Competitions) == 0 {
			continue
		}
		comp := raw.Competitions[0]

		evt := Event{
			ID:          raw.ID,
			SportLabel:  label,
			Name:        raw.Name,
			Date:        raw.Date,
			NeutralSite: comp.NeutralSite,
			Venue: Venue{
				Name:  comp.Venue.FullName,
				City:  comp.Venue.Address.City,
				State: comp.Venue.Address.State,
			},
		}

		for _, c := range comp.Competitors {
			teamID := c.Team.ID
			if teamID == "" {
				teamID = c.ID
			}
			evt.Competitors = append(evt.Competitors, Competitor{
				HomeAway:         c.HomeAway,
				TeamID:           teamID,
				DisplayName:      c.Team.DisplayName,
				ShortDisplayName: c.Team.ShortDisplayName,
				Location:         c.Team.Location,
				Name:             c.Team.Name,
				Abbreviation:     c.Team.Abbreviation,
			})
		}

		for _, b := range comp.Broadcasts {
			evt.Broadcasts = append(evt.Broadcasts, b.Names...)
		}

		events = append(events, evt)
	}

	return events
}
