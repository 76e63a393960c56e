// Package cli wires the announcement job behind a cobra command.
//
// One invocation is one run: load configuration and registry, fetch the
// configured scoreboards, announce new matchups, persist the announced
// ids. Only configuration and registry problems are fatal; fetch, post,
// and persistence failures are logged and the run exits zero.
package cli
