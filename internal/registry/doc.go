// Package registry loads the member-school registry and builds the lookup
// tables used to resolve scoreboard team names to canonical school ids.
//
// The registry is a static JSON or YAML document mapping canonical ids to
// school entries: official name, organization number, named alias groups,
// and the team ids assigned by the scoreboard provider. Each run rebuilds
// two flat lookup tables from it: normalized alias -> canonical id and
// provider team id -> canonical id.
package registry
