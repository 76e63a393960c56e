package matcher

import (
	"github.com/dhenderson/gameday-events/internal/logger"
	"github.com/dhenderson/gameday-events/internal/registry"
	"github.com/dhenderson/gameday-events/internal/scoreboard"
)

// Match is a game where both competitors resolved to registry schools.
type Match struct {
	Event  scoreboard.Event
	HomeID string
	AwayID string
	Home   registry.Entry
	Away   registry.Entry
}

// Matcher resolves competitors against the registry lookup tables.
type Matcher struct {
	reg    registry.Registry
	lookup *registry.Lookup
}

// New creates a matcher over the given registry and its lookup tables.
func New(reg registry.Registry, lookup *registry.Lookup) *Matcher {
	return &Matcher{reg: reg, lookup: lookup}
}

// Match filters events down to announceable games. Events whose id is
// already in seen are skipped before resolution. An event qualifies only
// when both competitors resolve to a canonical id.
func (m *Matcher) Match(events []scoreboard.Event, seen map[string]struct{}) []Match {
	matches := make([]Match, 0)

	for _, evt := range events {
		if _, ok := seen[evt.ID]; ok {
			continue
		}
		if len(evt.Competitors) < 2 {
			continue
		}

		home, away := splitHomeAway(evt.Competitors)

		homeID, ok := m.resolve(home)
		if !ok {
			continue
		}
		awayID, ok := m.resolve(away)
		if !ok {
			continue
		}

		logger.Debug("Matched game", logger.Fields{
			"event_id": evt.ID,
			"home":     homeID,
			"away":     awayID,
		})

		matches = append(matches, Match{
			Event:  evt,
			HomeID: homeID,
			AwayID: awayID,
			Home:   m.reg[homeID],
			Away:   m.reg[awayID],
		})
	}

	return matches
}

// splitHomeAway picks the home and away competitors. Explicit homeAway
// tags win; when they are absent or ambiguous the positional order is
// used: first is home, second is away. The positional fallback can
// mis-assign roles on providers that list away first; kept as-is because
// the tags are present on every source we currently consume.
func splitHomeAway(competitors []scoreboard.Competitor) (home, away scoreboard.Competitor) {
	var haveHome, haveAway bool

	for _, c := range competitors {
		switch c.HomeAway {
		case "home":
			if !haveHome {
				home, haveHome = c, true
			}
		case "away":
			if !haveAway {
				away, haveAway = c, true
			}
		}
	}

	if haveHome && haveAway {
		return home, away
	}
	return competitors[0], competitors[1]
}

// resolve maps a competitor to a canonical id: provider team id first,
// then the name fields in fixed order. First hit wins; there is no
// scoring across candidate fields.
func (m *Matcher) resolve(c scoreboard.Competitor) (string, bool) {
	if c.TeamID != "" {
		if id, ok := m.lookup.ByTeamID(c.TeamID); ok {
			return id, true
		}
	}

	for _, name := range c.NameFields() {
		if name == "" {
			continue
		}
		if id, ok := m.lookup.ByAlias(name); ok {
			return id, true
		}
	}

	return "", false
}
