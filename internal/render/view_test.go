package render

import (
	"testing"

	"github.com/dshills/editline/internal/engine/buffer"
)

func rowText(cells []Cell) string {
	s := ""
	for _, c := range cells {
		s += c.Cluster
	}
	return s
}

func TestViewBasic(t *testing.T) {
	b := buffer.New(buffer.WithLines([]string{"abc", "de"}))
	th := DefaultTheme()

	rows := View(b, Viewport{Width: 5, Height: 3}, th)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if got := rowText(rows[0]); got != "abc  " {
		t.Errorf("row 0: expected %q, got %q", "abc  ", got)
	}
	if got := rowText(rows[1]); got != "de   " {
		t.Errorf("row 1: expected %q, got %q", "de   ", got)
	}
	if got := rowText(rows[2]); got != "     " {
		t.Errorf("row 2: expected blank, got %q", got)
	}
}

func TestViewWideGlyphContinuation(t *testing.T) {
	b := buffer.New(buffer.WithLines([]string{"a😀b"}))
	th := DefaultTheme()

	row := View(b, Viewport{Width: 4, Height: 1}, th)[0]

	if len(row) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(row))
	}
	if row[1].Cluster != "😀" || row[1].Width != 2 {
		t.Errorf("expected wide glyph at cell 1, got %+v", row[1])
	}
	if !row[2].IsContinuation() {
		t.Errorf("expected continuation at cell 2, got %+v", row[2])
	}
	if row[3].Cluster != "b" {
		t.Errorf("expected b at cell 3, got %+v", row[3])
	}
}

func TestViewSelectionStyling(t *testing.T) {
	b := buffer.New(buffer.WithLines([]string{"abcde"}))
	// Select [1, 3) on row 0 via a shift-right gesture from col 1.
	b.ApplyCommands([]buffer.Command{
		buffer.MoveCaretCmd(buffer.CaretLeft),
		buffer.MoveCaretCmd(buffer.CaretLeft),
		buffer.MoveCaretCmd(buffer.CaretLeft),
		buffer.MoveCaretCmd(buffer.CaretLeft),
		buffer.MoveCaretCmd(buffer.CaretRight),
		buffer.SelectCaretCmd(buffer.CaretRight),
		buffer.SelectCaretCmd(buffer.CaretRight),
	})

	th := DefaultTheme()
	row := View(b, Viewport{Width: 5, Height: 1}, th)[0]

	for i, cell := range row {
		wantSel := i >= 1 && i < 3
		gotSel := cell.Style == th.Selection
		if wantSel != gotSel {
			t.Errorf("cell %d: selection styling = %v, want %v", i, gotSel, wantSel)
		}
	}
}

func TestViewScrollClipping(t *testing.T) {
	b := buffer.New(buffer.WithLines([]string{"0123456789", "row1", "row2"}))
	b.SetScroll(buffer.Position{Col: 2, Row: 1})
	th := DefaultTheme()

	rows := View(b, Viewport{Width: 4, Height: 2}, th)

	if got := rowText(rows[0]); got != "w1  " {
		t.Errorf("row 0: expected %q, got %q", "w1  ", got)
	}
	if got := rowText(rows[1]); got != "w2  " {
		t.Errorf("row 1: expected %q, got %q", "w2  ", got)
	}
}

func TestViewWideGlyphClippedAtLeftEdge(t *testing.T) {
	b := buffer.New(buffer.WithLines([]string{"😀x"}))
	b.SetScroll(buffer.Position{Col: 1, Row: 0})
	th := DefaultTheme()

	row := View(b, Viewport{Width: 3, Height: 1}, th)[0]

	// The emoji's second column is visible but unpaintable; it is padded.
	if row[0].Cluster != " " {
		t.Errorf("expected pad cell, got %+v", row[0])
	}
	if row[1].Cluster != "x" {
		t.Errorf("expected x at cell 1, got %+v", row[1])
	}
}

func TestWithSelectionTint(t *testing.T) {
	th := DefaultTheme()

	tinted := th.WithSelectionTint("#ff0000")
	if tinted.Selection.Bg == th.Selection.Bg {
		t.Error("expected tinted selection background to change")
	}
	if tinted.Selection.Bg.Default {
		t.Error("tinted background should not be the default color")
	}

	// Invalid hex leaves the theme unchanged.
	same := th.WithSelectionTint("not-a-color")
	if same.Selection.Bg != th.Selection.Bg {
		t.Error("invalid hex should leave theme unchanged")
	}
}
