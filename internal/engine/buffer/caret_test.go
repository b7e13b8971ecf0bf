package buffer

import (
	"testing"

	"github.com/dshills/editline/internal/engine/selection"
)

func assertRange(t *testing.T, b *EditorBuffer, row, start, end int) {
	t.Helper()
	r, ok := b.Selection().Get(row)
	if !ok {
		t.Fatalf("expected selection on row %d, map: %s", row, b.Selection())
	}
	if r != selection.NewRange(start, end) {
		t.Errorf("row %d: expected [%d, %d), got %v", row, start, end, r)
	}
}

func TestSelectRightExtends(t *testing.T) {
	b := New()
	b.InsertString("abcde")
	for i := 0; i < 5; i++ {
		b.MoveCaret(CaretLeft)
	}
	b.Selection().Clear()

	b.SelectCaret(CaretRight)
	assertRange(t, b, 0, 0, 1)

	b.SelectCaret(CaretRight)
	assertRange(t, b, 0, 0, 2)
	assertCaret(t, b, 2, 0)
}

func TestSelectRightThenLeftShrinks(t *testing.T) {
	b := New()
	b.InsertString("abcde")
	b.ApplyCommands([]Command{
		MoveCaretCmd(CaretLeft),
		MoveCaretCmd(CaretLeft),
		MoveCaretCmd(CaretLeft),
		MoveCaretCmd(CaretLeft),
		MoveCaretCmd(CaretLeft),
		SelectCaretCmd(CaretRight),
		SelectCaretCmd(CaretRight),
	})
	assertRange(t, b, 0, 0, 2)

	b.ApplyCommand(SelectCaretCmd(CaretLeft))
	assertRange(t, b, 0, 0, 1)

	// Shrinking to nothing prunes the entry.
	b.ApplyCommand(SelectCaretCmd(CaretLeft))
	if !b.Selection().IsEmpty() {
		t.Errorf("expected empty selection, got %s", b.Selection())
	}
}

func TestSelectLeftFromMidLine(t *testing.T) {
	b := New()
	b.InsertString("abcde") // caret at col 5

	b.SelectCaret(CaretLeft)
	assertRange(t, b, 0, 4, 5)
	assertCaret(t, b, 4, 0)

	b.SelectCaret(CaretLeft)
	assertRange(t, b, 0, 3, 5)
}

func TestSelectAcrossWideGlyph(t *testing.T) {
	b := New()
	b.InsertString("a😀b") // widths 1, 2, 1; caret at col 4

	b.SelectCaret(CaretLeft)
	assertRange(t, b, 0, 3, 4)

	// Crossing the emoji jumps its full width.
	b.SelectCaret(CaretLeft)
	assertRange(t, b, 0, 1, 4)
	assertCaret(t, b, 1, 0)
}

func TestPlainMoveClearsSelection(t *testing.T) {
	b := New()
	b.InsertString("abc")
	b.SelectCaret(CaretLeft)
	if b.Selection().IsEmpty() {
		t.Fatal("expected selection")
	}

	b.ApplyCommand(MoveCaretCmd(CaretLeft))
	if !b.Selection().IsEmpty() {
		t.Errorf("plain move must clear selection, got %s", b.Selection())
	}
}

func TestDeselectCommand(t *testing.T) {
	b := New()
	b.InsertString("abc")
	b.SelectCaret(CaretLeft)

	b.ApplyCommand(DeselectCmd())
	if !b.Selection().IsEmpty() {
		t.Errorf("expected cleared selection, got %s", b.Selection())
	}
}

func TestSelectDownAcrossLines(t *testing.T) {
	b := New(WithLines([]string{"abcde", "xyz"}))
	b.MoveCaret(CaretRight)
	b.MoveCaret(CaretRight) // caret (2, 0)

	b.SelectCaret(CaretDown)

	assertCaret(t, b, 2, 1)
	assertRange(t, b, 0, 2, 5) // from departure col to full width
	assertRange(t, b, 1, 0, 2) // from col 0 to the caret
}

func TestSelectUpAcrossLines(t *testing.T) {
	b := New(WithLines([]string{"abcde", "xyz"}))
	b.MoveCaret(CaretDown)
	b.MoveCaret(CaretRight)
	b.MoveCaret(CaretRight) // caret (2, 1)

	b.SelectCaret(CaretUp)

	assertCaret(t, b, 2, 0)
	assertRange(t, b, 1, 0, 2) // departure row from col 0 to departure col
	assertRange(t, b, 0, 2, 5) // arrival row from caret to full width
}

func TestSelectUpBlockedAtTop(t *testing.T) {
	b := New()
	b.InsertString("abcde") // caret (5, 0)

	// Up at row 0: the caret jumps to column 0 and the whole stretch back
	// to the old column is selected.
	b.SelectCaret(CaretUp)

	assertCaret(t, b, 0, 0)
	assertRange(t, b, 0, 0, 5)
}

func TestSelectDownBlockedAtBottom(t *testing.T) {
	b := New()
	b.InsertString("abcde")
	for i := 0; i < 3; i++ {
		b.MoveCaret(CaretLeft)
	}
	b.Selection().Clear() // caret (2, 0)

	// Down at the last row: the caret jumps to the end of the line and the
	// stretch forward is selected.
	b.SelectCaret(CaretDown)

	assertCaret(t, b, 5, 0)
	assertRange(t, b, 0, 2, 5)
}

func TestSelectUpBlockedExtendsExisting(t *testing.T) {
	b := New(WithLines([]string{"abcde", "xy"}))
	b.MoveCaret(CaretDown)
	b.MoveCaret(CaretRight) // caret (1, 1)

	b.SelectCaret(CaretUp) // multi-line: rows 1 and 0 selected
	assertCaret(t, b, 1, 0)
	assertRange(t, b, 0, 1, 5)

	b.SelectCaret(CaretUp) // blocked: extend row 0 selection to col 0
	assertCaret(t, b, 0, 0)
	assertRange(t, b, 0, 0, 5)
}

func TestSelectBlockedAtCornerIsNoOp(t *testing.T) {
	b := New()
	b.InsertString("ab")
	b.MoveCaret(CaretLeft)
	b.MoveCaret(CaretLeft)
	b.Selection().Clear() // caret (0, 0)

	// Shift+Up at (0, 0): no vertical or horizontal movement possible.
	b.SelectCaret(CaretUp)
	if !b.Selection().IsEmpty() {
		t.Errorf("expected no selection, got %s", b.Selection())
	}

	// Shift+Left at column 0: likewise.
	b.SelectCaret(CaretLeft)
	if !b.Selection().IsEmpty() {
		t.Errorf("expected no selection, got %s", b.Selection())
	}
}

func TestSelectPageSpanSelectsMiddleRowsFully(t *testing.T) {
	b := New(WithLines([]string{"abc", "defg", "", "hi"}))
	b.MoveCaret(CaretRight) // caret (1, 0)

	// Simulate a Shift+PageDown by reconciling the jump directly.
	prev := b.Caret(CaretRaw)
	b.caret = Position{Col: 1, Row: 3}
	b.validateCaretColumn()
	selection.ReconcileMultiLine(b.Selection(), b,
		selection.Point{Col: prev.Col, Row: prev.Row},
		selection.Point{Col: b.caret.Col, Row: b.caret.Row})

	assertRange(t, b, 0, 1, 3)
	assertRange(t, b, 1, 0, 4)
	if _, ok := b.Selection().Get(2); ok {
		t.Error("empty middle row must not be selected")
	}
	assertRange(t, b, 3, 0, 1)
}
