// Package ui implements the interactive terminal front end built on Bubble
// Tea.
//
// The screen has a species list on the left and an output panel on the
// right. Selecting a species (enter) forwards the name to the presenter
// through a Binding; clearing (x) forwards the empty value. Each forward
// runs as its own tea.Cmd, so a second selection can start while an earlier
// lookup is still in flight.
//
// The model never writes UI state. It reads presenter snapshots on a short
// tick and whenever a forwarded lookup settles, and renders the phase
// badge, the loading spinner and the output region from the snapshot.
//
// Key bindings:
//
//   - enter/space: look up the highlighted species
//   - x/backspace: clear the selection
//   - j/k: move up/down
//   - l: show the tail of the log file, r to reload it
//   - esc: return to the lookup view
//   - T: cycle theme
//   - ?: help
//   - q or ctrl+c: quit
package ui
