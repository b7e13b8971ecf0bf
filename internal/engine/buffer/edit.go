package buffer

import (
	"strings"

	"github.com/dshills/editline/internal/engine/segment"
)

// InsertChar inserts a single character at the caret. The caret advances by
// the character's display width. A tab expands to the buffer's tab width in
// spaces.
func (b *EditorBuffer) InsertChar(r rune) {
	if r == '\t' {
		b.InsertString(strings.Repeat(" ", b.tabWidth))
		return
	}
	b.InsertString(string(r))
}

// InsertString inserts text at the caret's logical position, derived from
// the caret's display column. The caret advances by the inserted content's
// total display width. The text must not contain newlines; use
// InsertNewLine for line breaks.
func (b *EditorBuffer) InsertString(s string) {
	if s == "" {
		return
	}
	row := b.caret.Row
	b.lines[row] = b.lines[row].InsertAtDisplayCol(b.caret.Col, s)
	b.caret.Col += segment.Width(s)
}

// InsertNewLine splits the current line at the caret into two lines and
// places the caret at column 0 of the new next line.
func (b *EditorBuffer) InsertNewLine() {
	row := b.caret.Row
	left, right := b.lines[row].SplitAtDisplayCol(b.caret.Col)

	b.lines[row] = left
	b.lines = append(b.lines, segment.Line{})
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = right

	b.caret = Position{Col: 0, Row: row + 1}
}

// Delete removes the grapheme segment at the caret (forward delete). At the
// end of a line it merges the next line onto the current one instead. The
// caret does not move. At the end of the last line it is a no-op.
func (b *EditorBuffer) Delete() {
	row := b.caret.Row
	line := b.lines[row]

	if newLine, _, ok := line.DeleteAtDisplayCol(b.caret.Col); ok {
		b.lines[row] = newLine
		return
	}

	// Caret is at end of line: merge the next line up.
	if row+1 < len(b.lines) {
		b.lines[row] = line.Concat(b.lines[row+1])
		b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	}
}

// Backspace removes the grapheme segment immediately left of the caret and
// moves the caret left by its width. At column 0 it merges the current line
// onto the previous one, landing the caret at the previous line's old end.
// At column 0 of row 0 it is a no-op.
func (b *EditorBuffer) Backspace() {
	row := b.caret.Row

	if b.caret.Col > 0 {
		newLine, seg, ok := b.lines[row].DeleteLeftOfDisplayCol(b.caret.Col)
		if !ok {
			return
		}
		b.lines[row] = newLine
		b.caret.Col -= seg.Width
		return
	}

	if row == 0 {
		return
	}

	prevWidth := b.lines[row-1].DisplayWidth()
	b.lines[row-1] = b.lines[row-1].Concat(b.lines[row])
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.caret = Position{Col: prevWidth, Row: row - 1}
}
