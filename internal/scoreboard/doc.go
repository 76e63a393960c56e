// Package scoreboard fetches and parses scoreboard JSON from the
// configured data sources.
//
// Each source is a read-only HTTP endpoint returning an ESPN-style
// scoreboard document (events with competitions, competitors, venue,
// broadcasts, and a neutral-site flag). Responses are flattened into
// plain Event records; a source that fails or returns malformed JSON
// contributes zero events for the run.
package scoreboard
