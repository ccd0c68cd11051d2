// Package logtail reads the tail of dexview's log file for the diagnostics
// pane.
//
// Read keeps a ring buffer of the last N lines, so memory stays O(N)
// regardless of file size, and returns them in file order. A missing file is
// not an error.
//
// Format turns a zerolog JSON line into a compact single line:
//
//	{"level":"info","species":"ditto","time":"2026-01-02T15:04:05Z","message":"Name: ditto"}
//	15:04:05 INF Name: ditto species=ditto
//
// Lines that are not JSON objects are returned unchanged.
package logtail
