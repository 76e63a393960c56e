package announce

import (
	"fmt"
	"strings"
	"time"

	"github.com/dhenderson/gameday-events/internal/matcher"
	"github.com/dhenderson/gameday-events/internal/registry"
	"github.com/dhenderson/gameday-events/internal/scoreboard"
)

// kickoff layouts accepted from the provider. The scoreboard feed uses
// minute precision with a bare "Z" suffix; full RFC 3339 shows up on
// some endpoints.
var kickoffLayouts = []string{
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
}

// Formatter renders matched games as announcement messages.
type Formatter struct {
	loc      *time.Location
	mentions map[int]string // org number -> chat mention id
}

// New creates a formatter that localizes kickoff times to the named IANA
// time zone. mentions maps org numbers to chat role ids; schools without
// an entry are mentioned textually by council number and name.
func New(timezone string, mentions map[int]string) (*Formatter, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", timezone, err)
	}
	return &Formatter{loc: loc, mentions: mentions}, nil
}

// Format builds the announcement for one matched game.
func (f *Formatter) Format(m matcher.Match) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("%s\n", m.Event.SportLabel))
	msg.WriteString(fmt.Sprintf("🕒 %s\n", f.formatKickoff(m.Event.Date)))
	msg.WriteString(fmt.Sprintf("📺 %s\n", formatBroadcasts(m.Event.Broadcasts)))
	msg.WriteString(fmt.Sprintf("🏟️ %s\n", formatVenue(m.Event)))

	if m.Event.NeutralSite {
		msg.WriteString("⚔️ Neutral site matchup\n")
	} else {
		msg.WriteString(fmt.Sprintf("🏠 Home game for %s\n", m.Home.Name))
	}

	msg.WriteString(fmt.Sprintf("🎓 %s (No. %d) vs %s (No. %d)\n",
		m.Home.Name, m.Home.OrgNumber, m.Away.Name, m.Away.OrgNumber))

	msg.WriteString(fmt.Sprintf("🔔 %s\n", f.formatMentions(m)))

	return msg.String()
}

// formatKickoff parses the provider timestamp and renders it in the
// configured zone, e.g. "Sep 5, 2026 7:00 PM CDT". A missing timestamp
// renders as TBD; unparsable input is passed through unchanged.
func (f *Formatter) formatKickoff(raw string) string {
	if raw == "" {
		return "TBD"
	}
	for _, layout := range kickoffLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return t.In(f.loc).Format("Jan 2, 2006 3:04 PM MST")
	}
	return raw
}

func formatBroadcasts(broadcasts []string) string {
	if len(broadcasts) == 0 {
		return "TBD"
	}
	return strings.Join(broadcasts, ", ")
}

func formatVenue(evt scoreboard.Event) string {
	v := evt.Venue
	if v.Name == "" {
		return "TBD"
	}
	location := v.City
	if v.City != "" && v.State != "" {
		location = fmt.Sprintf("%s, %s", v.City, v.State)
	} else if v.State != "" {
		location = v.State
	}
	if location == "" {
		return v.Name
	}
	return fmt.Sprintf("%s (%s)", v.Name, location)
}

// formatMentions renders the mention for each school, home first: the
// configured chat role when one is mapped, otherwise a textual council
// reference so the line always names both sides. Duplicates collapse in
// case both schools map to the same role.
func (f *Formatter) formatMentions(m matcher.Match) string {
	mentions := make([]string, 0, 2)
	seen := make(map[string]struct{})

	for _, entry := range []registry.Entry{m.Home, m.Away} {
		var mention string
		if id, ok := f.mentions[entry.OrgNumber]; ok && id != "" {
			mention = fmt.Sprintf("<@&%s>", id)
		} else {
			mention = fmt.Sprintf("Council %d (%s)", entry.OrgNumber, entry.Name)
		}
		if _, dup := seen[mention]; dup {
			continue
		}
		seen[mention] = struct{}{}
		mentions = append(mentions, mention)
	}

	return strings.Join(mentions, " ")
}
