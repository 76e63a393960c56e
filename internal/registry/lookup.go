package registry

import "sort"

// Lookup holds the flattened tables derived from a Registry. It is rebuilt
// each run and never persisted.
type Lookup struct {
	byAlias  map[string]string // normalized alias -> canonical id
	byTeamID map[string]string // provider team id -> canonical id
}

// BuildLookup flattens a registry into its lookup tables. Every alias in
// every alias group, plus the official name, is normalized and registered;
// provider team ids are registered verbatim.
//
// Entries are processed in sorted canonical-id order so collisions are
// deterministic: the later entry overwrites the earlier one. Last-write-wins
// on duplicate aliases is long-standing behavior that existing registries
// depend on; do not "fix" it without auditing the registry files.
func BuildLookup(reg Registry) *Lookup {
	l := &Lookup{
		byAlias:  make(map[string]string),
		byTeamID: make(map[string]string),
	}

	ids := make([]string, 0, len(reg))
	for id := range reg {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := reg[id]

		if key := Normalize(entry.Name); key != "" {
			l.byAlias[key] = id
		}
		for _, group := range entry.Aliases {
			for _, alias := range group {
				if key := Normalize(alias); key != "" {
					l.byAlias[key] = id
				}
			}
		}
		for _, teamID := range entry.TeamIDs {
			if teamID != "" {
				l.byTeamID[teamID] = id
			}
		}
	}

	return l
}

// ByAlias resolves a free-text name to a canonical id. The name is
// normalized before lookup.
func (l *Lookup) ByAlias(name string) (string, bool) {
	id, ok := l.byAlias[Normalize(name)]
	return id, ok
}

// ByTeamID resolves a provider-assigned team id to a canonical id.
func (l *Lookup) ByTeamID(teamID string) (string, bool) {
	id, ok := l.byTeamID[teamID]
	return id, ok
}

// AliasCount returns the number of registered alias keys.
func (l *Lookup) AliasCount() int {
	return len(l.byAlias)
}
