// Package settings loads and aggregates everything the launcher menu
// needs: the user's action tree from ~/.xshuttle.json and the host list
// from ~/.ssh/config.
//
// # Snapshot model
//
// A [Settings] value is an immutable snapshot. Reloading never mutates a
// live snapshot; Load builds a complete new value which a front end swaps
// in wholesale, typically through a [Store]. Node ids handed out by one
// snapshot's containers are meaningless against any other snapshot.
//
// # Failure policy
//
// Absent files are a normal state: a missing config file yields defaults
// and a missing SSH config yields an empty host list. Files that exist
// but cannot be read or parsed are reported as typed errors and nothing
// is swallowed into a default here; callers that want to fall back to an
// empty menu do so explicitly at the call site.
package settings
