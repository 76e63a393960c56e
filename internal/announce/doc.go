// Package announce builds the chat announcement text for a matched game.
//
// Formatting is deterministic: given the same match and configuration the
// output is byte-identical, with a fixed field order of sport label, kickoff
// time, broadcasts, venue, site label, matchup, and role mentions.
package announce
