package dedup

import "encoding/json"

// Record is a handle to one persisted dedup record plus the body text it
// held when fetched.
type Record struct {
	Number int
	Body   string
}

// Store persists announced event ids between runs.
type Store interface {
	// FindOrCreate locates the record with the given title, creating it
	// with an empty-set body when absent.
	FindOrCreate(title string) (*Record, error)

	// Read parses the record body as a JSON array of event ids. Malformed
	// or non-array bodies yield an empty set, never an error: losing
	// history re-announces games, which is preferable to a dead run.
	Read(rec *Record) map[string]struct{}

	// Write replaces the record body with the sorted JSON array of ids.
	// Full replacement; concurrent runs are last-writer-wins and the
	// external scheduler is expected to serialize runs.
	Write(rec *Record, ids map[string]struct{}) error
}

// ParseIDs decodes a JSON array of event ids into a set. Any parse
// failure returns an empty set.
func ParseIDs(body string) map[string]struct{} {
	ids := make(map[string]struct{})

	var list []string
	if err := json.Unmarshal([]byte(body), &list); err != nil {
		return ids
	}
	for _, id := range list {
		ids[id] = struct{}{}
	}
	return ids
}
