// Package store keeps named maps and the history of runs solved on them in
// a single bbolt file accessed through bolthold.
//
// Records are JSON encoded. Maps are keyed by name; runs get a sequence ID
// and are indexed by map name and creation time.
package store
