package scoreboard

// Source is one configured scoreboard endpoint.
type Source struct {
	// Label names the sport/division in announcements,
	// e.g. "College Football (FCS)".
	Label string
	URL   string
}

// Event is one scheduled or live game, flattened from the provider's
// scoreboard document. Events are fetched fresh each run and never mutated.
type Event struct {
	ID          string
	SportLabel  string
	Name        string
	Date        string // provider timestamp, ISO-8601 with bare "Z" accepted
	Competitors []Competitor
	Venue       Venue
	Broadcasts  []string
	NeutralSite bool
}

// Competitor is one side of a game with the name fields the provider
// exposes. HomeAway is "home", "away", or empty when the provider omits
// role tags.
type Competitor struct {
	HomeAway         string
	TeamID           string
	DisplayName      string
	ShortDisplayName string
	Location         string
	Name             string
	Abbreviation     string
}

// Venue describes where a game is played.
type Venue struct {
	Name  string
	City  string
	State string
}

// NameFields returns the competitor's name fields in resolution order:
// nickname, display name, short display name, location, abbreviation.
func (c Competitor) NameFields() []string {
	return []string{c.Name, c.DisplayName, c.ShortDisplayName, c.Location, c.Abbreviation}
}
