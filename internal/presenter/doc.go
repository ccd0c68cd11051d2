// Package presenter turns a species selection into output region content.
//
// A Presenter runs the lookup state machine
//
//	Empty ── name != "" ──> Loading ──> Success | Failure
//
// against a pokeapi.Fetcher and writes the result into a state.Store that
// only it can mutate. Renderers decide the content format: TextRenderer for
// terminals, HTMLRenderer for the fragment a web page embeds.
//
// Failures of every kind show the same generic message; the raw error goes
// to the diagnostic logger. The loading flag is always lowered when a lookup
// settles, including when rendering fails or panics.
//
// Overlapping lookups are not cancelled. With Options.DropStaleResults set,
// a result whose selection has been superseded is discarded; otherwise the
// lookup that settles last wins.
package presenter
