// Package sqlite provides the SQLite-backed probe result cache.
//
// The database lives at ~/.profilectl/data/probes.db by default and is
// migrated on open from the embedded SQL files in the migrations
// subpackage.
package sqlite
