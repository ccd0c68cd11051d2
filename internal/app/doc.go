// Package app wires configuration, logging, metrics, the catalog client and
// the presenter together. It is the composition root for both front ends.
//
// Run loads ~/.config/dexview/config.toml, opens the log file, registers
// lookup metrics (optionally serving them on --metrics-addr), builds a
// presenter with the text renderer and starts the TUI. It blocks until the
// user quits or the context is cancelled.
//
// Show builds the same presenter with the renderer for the requested
// format, logs to stderr, performs one lookup and prints the output region.
// It returns ErrLookupFailed when the lookup ends in the failure state.
//
// Startup errors (bad config, unwritable log file, invalid base URL) are
// returned. Lookup errors never are; they surface as the failure state.
package app
