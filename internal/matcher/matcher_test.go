package matcher

import (
	"testing"

	"github.com/dhenderson/gameday-events/internal/registry"
	"github.com/dhenderson/gameday-events/internal/scoreboard"
)

func testRegistry() registry.Registry {
	return registry.Registry{
		"alcorn-state": {
			Name:      "Alcorn State University",
			OrgNumber: 100,
			Aliases: map[string][]string{
				"common": {"Alcorn State", "Alcorn State Braves"},
			},
			TeamIDs: []string{"2016"},
		},
		"jackson-state": {
			Name:      "Jackson State University",
			OrgNumber: 200,
			Aliases: map[string][]string{
				"common": {"Jackson State", "Jackson State Tigers"},
			},
			TeamIDs: []string{"2296"},
		},
	}
}

func newTestMatcher() *Matcher {
	reg := testRegistry()
	return New(reg, registry.BuildLookup(reg))
}

func gameEvent(id string, home, away scoreboard.Competitor) scoreboard.Event {
	return scoreboard.Event{
		ID:          id,
		Competitors: []scoreboard.Competitor{home, away},
	}
}

func TestMatch_BothResolve(t *testing.T) {
	m := newTestMatcher()

	evt := gameEvent("1",
		scoreboard.Competitor{HomeAway: "home", TeamID: "2296", DisplayName: "Jackson State Tigers"},
		scoreboard.Competitor{HomeAway: "away", TeamID: "2016", DisplayName: "Alcorn State Braves"},
	)

	matches := m.Match([]scoreboard.Event{evt}, nil)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	got := matches[0]
	if got.HomeID != "jackson-state" || got.AwayID != "alcorn-state" {
		t.Errorf("match = home %q, away %q", got.HomeID, got.AwayID)
	}
	if got.Home.OrgNumber != 200 || got.Away.OrgNumber != 100 {
		t.Errorf("org numbers = %d, %d", got.Home.OrgNumber, got.Away.OrgNumber)
	}
}

func TestMatch_OneSideUnresolved(t *testing.T) {
	m := newTestMatcher()

	evt := gameEvent("1",
		scoreboard.Competitor{HomeAway: "home", TeamID: "2296", DisplayName: "Jackson State Tigers"},
		scoreboard.Competitor{HomeAway: "away", TeamID: "9999", DisplayName: "Delta State Statesmen"},
	)

	matches := m.Match([]scoreboard.Event{evt}, nil)
	if len(matches) != 0 {
		t.Fatalf("expected 0 matches when only one side resolves, got %d", len(matches))
	}
}

func TestMatch_SeenEventsSkipped(t *testing.T) {
	m := newTestMatcher()

	evt := gameEvent("401",
		scoreboard.Competitor{HomeAway: "home", TeamID: "2296"},
		scoreboard.Competitor{HomeAway: "away", TeamID: "2016"},
	)

	seen := map[string]struct{}{"401": {}}
	matches := m.Match([]scoreboard.Event{evt}, seen)
	if len(matches) != 0 {
		t.Fatalf("expected seen event to be skipped, got %d matches", len(matches))
	}
}

func TestMatch_ResolutionOrder(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		name       string
		competitor scoreboard.Competitor
		wantID     string
		wantOK     bool
	}{
		{
			name:       "team id wins over name",
			competitor: scoreboard.Competitor{TeamID: "2016", DisplayName: "Jackson State Tigers"},
			wantID:     "alcorn-state",
			wantOK:     true,
		},
		{
			name:       "display name when id unknown",
			competitor: scoreboard.Competitor{TeamID: "9999", DisplayName: "Alcorn State Braves"},
			wantID:     "alcorn-state",
			wantOK:     true,
		},
		{
			name: "nickname field checked before display name",
			competitor: scoreboard.Competitor{
				Name:        "Jackson State",
				DisplayName: "Alcorn State Braves",
			},
			wantID: "jackson-state",
			wantOK: true,
		},
		{
			name: "fallback name fields",
			competitor: scoreboard.Competitor{
				DisplayName:      "ALCN Braves",
				ShortDisplayName: "Alcorn State",
			},
			wantID: "alcorn-state",
			wantOK: true,
		},
		{
			name:       "nothing resolves",
			competitor: scoreboard.Competitor{DisplayName: "Valley Forge"},
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := m.resolve(tt.competitor)
			if ok != tt.wantOK {
				t.Fatalf("resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("resolve() = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestSplitHomeAway(t *testing.T) {
	tagged := []scoreboard.Competitor{
		{HomeAway: "away", TeamID: "a"},
		{HomeAway: "home", TeamID: "h"},
	}
	home, away := splitHomeAway(tagged)
	if home.TeamID != "h" || away.TeamID != "a" {
		t.Errorf("tagged split = home %q, away %q", home.TeamID, away.TeamID)
	}

	// no tags: positional fallback, first is home
	untagged := []scoreboard.Competitor{
		{TeamID: "first"},
		{TeamID: "second"},
	}
	home, away = splitHomeAway(untagged)
	if home.TeamID != "first" || away.TeamID != "second" {
		t.Errorf("positional split = home %q, away %q", home.TeamID, away.TeamID)
	}

	// ambiguous tags (two homes): positional fallback
	ambiguous := []scoreboard.Competitor{
		{HomeAway: "home", TeamID: "x"},
		{HomeAway: "home", TeamID: "y"},
	}
	home, away = splitHomeAway(ambiguous)
	if home.TeamID != "x" || away.TeamID != "y" {
		t.Errorf("ambiguous split = home %q, away %q", home.TeamID, away.TeamID)
	}
}
