// Package selection provides the per-row selection model for the editor
// engine and the algorithms that keep it in sync with caret movement.
//
// A Range is one row's selected display-column interval, start-inclusive and
// end-exclusive. A Map holds at most one Range per row; a row without an
// entry has no selection, and an empty range is not representable (inserting
// one prunes the entry).
//
// The Reconcile functions update a Map incrementally from the caret's
// previous and current display positions instead of recomputing it from
// scratch, which keeps interactive shift-selection cheap. They carry no
// gesture state of their own: each call is fully determined by the
// (previous, current) pair, so reconciliation is idempotent and replayable.
// The caller decides whether a caret move extends the selection or clears
// the map.
package selection
