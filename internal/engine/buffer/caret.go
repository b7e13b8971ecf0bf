package buffer

import "github.com/dshills/editline/internal/engine/selection"

// CaretDirection is a caret movement direction.
type CaretDirection int

const (
	// CaretUp moves the caret to the previous line.
	CaretUp CaretDirection = iota
	// CaretDown moves the caret to the next line.
	CaretDown
	// CaretLeft moves the caret one grapheme segment left.
	CaretLeft
	// CaretRight moves the caret one grapheme segment right.
	CaretRight
)

// String returns the name of the direction.
func (d CaretDirection) String() string {
	switch d {
	case CaretUp:
		return "Up"
	case CaretDown:
		return "Down"
	case CaretLeft:
		return "Left"
	case CaretRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// MoveCaret moves the caret one step in the given direction without
// touching the selection map.
//
// Left and Right move by one grapheme segment width and clamp at the line
// bounds; they never wrap to an adjacent line. Up and Down move to the same
// display column on the adjacent line, clamping to that line's width and
// snapping off mid-glyph columns. Movement blocked by a document boundary
// is a no-op.
func (b *EditorBuffer) MoveCaret(dir CaretDirection) {
	switch dir {
	case CaretUp:
		b.moveCaretUp()
	case CaretDown:
		b.moveCaretDown()
	case CaretLeft:
		b.moveCaretLeft()
	case CaretRight:
		b.moveCaretRight()
	}
}

// SelectCaret moves the caret one step in the given direction as a
// selection-extending gesture (shift held) and reconciles the selection map
// against the movement.
//
// Unlike MoveCaret, vertical movement blocked by the top or bottom of the
// document still jumps the caret horizontally: up at row 0 sends it to
// column 0, down at the last row sends it to the end of the line. That
// compensating jump is what the boundary-hit reconciliation consumes.
func (b *EditorBuffer) SelectCaret(dir CaretDirection) {
	prev := b.caret

	switch dir {
	case CaretLeft:
		b.moveCaretLeft()
		selection.ReconcileSingleLine(b.sel, prev.Row, prev.Col, b.caret.Col)
		return

	case CaretRight:
		b.moveCaretRight()
		selection.ReconcileSingleLine(b.sel, prev.Row, prev.Col, b.caret.Col)
		return

	case CaretUp:
		if b.caret.Row == 0 {
			b.caret.Col = 0
		} else {
			b.moveCaretUp()
		}

	case CaretDown:
		if b.caret.Row == len(b.lines)-1 {
			b.caret.Col = b.lineAtCaret().DisplayWidth()
		} else {
			b.moveCaretDown()
		}
	}

	cur := b.caret
	if cur.Row != prev.Row {
		selection.ReconcileMultiLine(b.sel, b,
			selection.Point{Col: prev.Col, Row: prev.Row},
			selection.Point{Col: cur.Col, Row: cur.Row})
		return
	}
	selection.ReconcileBoundaryHit(b.sel, b,
		selection.Point{Col: prev.Col, Row: prev.Row},
		selection.Point{Col: cur.Col, Row: cur.Row})
}

func (b *EditorBuffer) moveCaretLeft() {
	if b.caret.Col == 0 {
		return
	}
	if seg, ok := b.lineAtCaret().SegmentEndingAtDisplayCol(b.caret.Col); ok {
		b.caret.Col -= seg.Width
		return
	}
	// Caret was off a segment boundary; re-validate.
	b.caret.Col = b.lineAtCaret().SnapToSegmentBoundary(b.caret.Col - 1)
}

func (b *EditorBuffer) moveCaretRight() {
	line := b.lineAtCaret()
	if b.caret.Col >= line.DisplayWidth() {
		return
	}
	if seg, ok := line.SegmentAtDisplayCol(b.caret.Col); ok {
		b.caret.Col = seg.EndCol()
	}
}

func (b *EditorBuffer) moveCaretUp() {
	if b.caret.Row == 0 {
		return
	}
	b.caret.Row--
	b.validateCaretColumn()
}

func (b *EditorBuffer) moveCaretDown() {
	if b.caret.Row >= len(b.lines)-1 {
		return
	}
	b.caret.Row++
	b.validateCaretColumn()
}

// SetCaret places the caret directly, clamping the row to the document and
// snapping the column onto a segment boundary of the target line. Used when
// restoring persisted state; interactive movement goes through MoveCaret.
func (b *EditorBuffer) SetCaret(p Position) {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row > len(b.lines)-1 {
		p.Row = len(b.lines) - 1
	}
	b.caret.Row = p.Row
	b.caret.Col = p.Col
	if b.caret.Col < 0 {
		b.caret.Col = 0
	}
	b.validateCaretColumn()
}

// validateCaretColumn clamps the caret column to the current line's width
// and pushes it off any mid-glyph column onto a segment boundary.
func (b *EditorBuffer) validateCaretColumn() {
	b.caret.Col = b.lineAtCaret().SnapToSegmentBoundary(b.caret.Col)
}
