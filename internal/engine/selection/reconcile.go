package selection

// Point is a caret display position used by the reconciliation functions.
type Point struct {
	Col int // display column
	Row int // document row
}

// Document provides the per-row display widths the multi-line reconciliation
// needs. Implemented by the editor buffer.
type Document interface {
	// LineDisplayWidth returns the display width of a row, or 0 for an
	// out-of-range row.
	LineDisplayWidth(row int) int
	// LineCount returns the number of rows in the document.
	LineCount() int
}

// ReconcileSingleLine updates the map for a caret movement that stayed on
// one row. The movement is classified by where the previous and current
// columns fall relative to the row's existing range, together with the
// movement direction; each case applies one grow or shrink to the range.
// A resulting empty range is pruned.
func ReconcileSingleLine(m *Map, row, previousCol, currentCol int) {
	r, ok := m.Get(row)
	if !ok {
		// No existing range for the row: the movement itself defines one.
		lo, hi := previousCol, currentCol
		if lo > hi {
			lo, hi = hi, lo
		}
		m.Insert(row, NewRange(lo, hi))
		return
	}

	prevLoc := r.Locate(previousCol)
	curLoc := r.Locate(currentCol)
	dir := MovementDirection(previousCol, currentCol)

	switch {
	// Left movement from past the end back into the range: the end
	// retreats with the caret.
	case prevLoc == Overflow && curLoc == Contained && dir == Left:
		m.Insert(row, r.ShrinkEndBy(previousCol-currentCol))

	// Left movement from inside the range past its start: the start
	// advances left to the caret.
	case prevLoc == Contained && curLoc == Underflow && dir == Left:
		m.Insert(row, r.GrowStartBy(r.Start-currentCol))

	// Right movement entirely past the end: the end chases the caret.
	case prevLoc == Overflow && curLoc == Overflow && dir == Right:
		m.Insert(row, r.GrowEndBy(currentCol-r.End))

	// Right movement from inside the range: the start chases the caret.
	case prevLoc == Contained && (curLoc == Contained || curLoc == Overflow) && dir == Right:
		m.Insert(row, r.ShrinkStartBy(currentCol-r.Start))
	}

	// Prune a range emptied by the movement.
	if r, ok := m.Get(row); ok && r.IsEmpty() {
		m.Remove(row)
	}
}

// ReconcileMultiLine updates the map for a caret movement that crossed one
// or more row boundaries. No-op when the rows are equal (use
// ReconcileSingleLine or ReconcileBoundaryHit for that).
//
// Rows strictly between previous and current (a gap of 2 or more, e.g.
// Page Up/Down) are selected in full. An empty middle row gets no entry:
// a row is selected iff it has an entry, and an empty range is not
// representable.
//
// Direction reversal mid-gesture is not supported; callers must clear the
// map before extending in the opposite direction.
func ReconcileMultiLine(m *Map, doc Document, previous, current Point) {
	if previous.Row == current.Row {
		return
	}
	movedDown := current.Row > previous.Row

	// Middle rows.
	from, to := previous.Row, current.Row
	if from > to {
		from, to = to, from
	}
	for row := from + 1; row < to; row++ {
		m.Insert(row, NewRange(0, doc.LineDisplayWidth(row)))
	}

	if movedDown {
		// The first row extends from its existing selection start (or the
		// departure column) to its full width; the last row is selected
		// from column 0 to the caret.
		first, last := previous, current

		start := first.Col
		if r, ok := m.Get(first.Row); ok {
			start = r.Start
		}
		m.Insert(first.Row, NewRange(start, doc.LineDisplayWidth(first.Row)))
		m.Insert(last.Row, NewRange(0, last.Col))
		return
	}

	// Moved up: the departure row extends from column 0 to its existing
	// end (or the departure column); the arrival row is selected from the
	// caret to its full width.
	first, last := current, previous

	end := last.Col
	if r, ok := m.Get(last.Row); ok {
		end = r.End
	}
	m.Insert(last.Row, NewRange(0, end))
	m.Insert(first.Row, NewRange(first.Col, doc.LineDisplayWidth(first.Row)))
}

// ReconcileBoundaryHit updates the map when vertical movement was blocked by
// the top or bottom of the document but the caret still jumped horizontally
// (up at row 0 sends the caret to column 0; down at the last row sends it to
// the end of the line). Only applies when previous and current are on the
// same row.
func ReconcileBoundaryHit(m *Map, doc Document, previous, current Point) {
	if previous.Row != current.Row {
		return
	}
	row := current.Row

	switch MovementDirection(previous.Col, current.Col) {
	case Left:
		// Blocked moving up: select back to the start of the row.
		if r, ok := m.Get(row); ok {
			m.Insert(row, NewRange(0, r.End))
		} else {
			m.Insert(row, NewRange(0, previous.Col))
		}

	case Right:
		// Blocked moving down: select forward to the end of the row.
		if r, ok := m.Get(row); ok {
			m.Insert(row, NewRange(r.Start, doc.LineDisplayWidth(row)))
		} else {
			m.Insert(row, NewRange(previous.Col, current.Col))
		}
	}
}
