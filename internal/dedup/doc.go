// Package dedup persists the set of already-announced event ids between
// runs so games are announced at most once per id under normal operation.
//
// The backing store is deliberately minimal (find-or-create a record by
// title, read its body as a JSON array of ids, replace the body on write)
// so the implementation is swappable. The default implementation keeps the
// set in the body of a GitHub issue.
package dedup
