package buffer

import (
	"fmt"

	"github.com/dshills/editline/internal/engine/filetype"
	"github.com/dshills/editline/internal/engine/segment"
	"github.com/dshills/editline/internal/engine/selection"
)

// DefaultSyntaxExt is the syntax extension tag used when a buffer has no
// associated file or the file has no usable extension.
const DefaultSyntaxExt = "md"

// DefaultTabWidth is the display width a tab insertion expands to.
const DefaultTabWidth = 4

// Position is a caret or scroll position in display-column units.
type Position struct {
	Col int // display column
	Row int // document row
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(col: %d, row: %d)", p.Col, p.Row)
}

// CaretKind selects the flavor of caret position returned by Caret.
type CaretKind int

const (
	// CaretRaw is the caret's position within the full document.
	CaretRaw CaretKind = iota
	// CaretScrollAdjusted is the caret's position relative to the visible
	// viewport origin (raw minus the scroll offset).
	CaretScrollAdjusted
)

// EditorBuffer is the document being edited: an ordered sequence of
// unicode-aware lines, a caret, a scroll offset, and a selection map.
// A buffer always holds at least one line; the default is one empty line.
type EditorBuffer struct {
	lines    []segment.Line
	caret    Position
	scroll   Position
	sel      *selection.Map
	ext      string
	tabWidth int
}

// Option configures an EditorBuffer.
type Option func(*EditorBuffer)

// WithSyntaxExt sets the syntax extension tag handed to the external
// highlighter. An empty value keeps the default.
func WithSyntaxExt(ext string) Option {
	return func(b *EditorBuffer) {
		if ext != "" {
			b.ext = ext
		}
	}
}

// WithLines sets the initial document content.
func WithLines(lines []string) Option {
	return func(b *EditorBuffer) {
		b.SetLines(lines)
	}
}

// WithTabWidth sets the display width a tab insertion expands to. Values
// below 1 keep the default.
func WithTabWidth(w int) Option {
	return func(b *EditorBuffer) {
		if w >= 1 {
			b.tabWidth = w
		}
	}
}

// New creates a buffer holding one empty line.
func New(opts ...Option) *EditorBuffer {
	b := &EditorBuffer{
		lines:    []segment.Line{segment.New("")},
		sel:      selection.NewMap(),
		ext:      DefaultSyntaxExt,
		tabWidth: DefaultTabWidth,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewFromFile creates a buffer seeded from a file: its content becomes the
// document and its extension the syntax tag. An empty or unreadable path
// yields an empty buffer with the default tag. Extra options apply after
// the file-derived ones and may override them.
func NewFromFile(path string, opts ...Option) *EditorBuffer {
	fileOpts := []Option{
		WithLines(filetype.ReadLines(path)),
		WithSyntaxExt(filetype.Ext(path)),
	}
	return New(append(fileOpts, opts...)...)
}

// SetLines replaces the document content and resets the caret, scroll
// offset, and selection. An empty slice yields one empty line.
func (b *EditorBuffer) SetLines(lines []string) {
	if len(lines) == 0 {
		b.lines = []segment.Line{segment.New("")}
	} else {
		b.lines = make([]segment.Line, len(lines))
		for i, s := range lines {
			b.lines[i] = segment.New(s)
		}
	}
	b.caret = Position{}
	b.scroll = Position{}
	b.sel.Clear()
}

// IsEmpty returns true if the buffer holds no content. A buffer with a
// single empty line is empty; line count alone never makes it non-empty.
func (b *EditorBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0].IsEmpty()
}

// LineCount returns the number of lines. Always >= 1.
func (b *EditorBuffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at the given row.
func (b *EditorBuffer) Line(row int) (segment.Line, bool) {
	if row < 0 || row >= len(b.lines) {
		return segment.Line{}, false
	}
	return b.lines[row], true
}

// Lines returns the document content as strings.
func (b *EditorBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

// LineDisplayWidth returns the display width of a row, or 0 for an
// out-of-range row. Implements selection.Document.
func (b *EditorBuffer) LineDisplayWidth(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return b.lines[row].DisplayWidth()
}

// Caret returns the caret position in the requested flavor.
func (b *EditorBuffer) Caret(kind CaretKind) Position {
	if kind == CaretScrollAdjusted {
		return Position{
			Col: b.caret.Col - b.scroll.Col,
			Row: b.caret.Row - b.scroll.Row,
		}
	}
	return b.caret
}

// Scroll returns the current scroll offset.
func (b *EditorBuffer) Scroll() Position {
	return b.scroll
}

// Selection returns the buffer's selection map. The map is owned by the
// buffer; callers other than the engine should treat it as read-only.
func (b *EditorBuffer) Selection() *selection.Map {
	return b.sel
}

// SyntaxExt returns the syntax extension tag for the external highlighter.
func (b *EditorBuffer) SyntaxExt() string {
	return b.ext
}

// TabWidth returns the display width a tab insertion expands to.
func (b *EditorBuffer) TabWidth() int {
	return b.tabWidth
}

// lineAtCaret returns the line the caret is on. The caret row is always a
// valid line index by invariant.
func (b *EditorBuffer) lineAtCaret() segment.Line {
	return b.lines[b.caret.Row]
}
