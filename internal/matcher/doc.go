// Package matcher resolves scoreboard competitors to registry schools and
// selects the games worth announcing: those where both sides belong to
// the registry and the event has not been announced before.
package matcher
