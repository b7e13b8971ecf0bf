package segment

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Segment is one grapheme cluster within a line.
type Segment struct {
	Cluster    string // the grapheme cluster text
	ByteOffset int    // byte offset of the cluster within the line
	Index      int    // logical segment index (0-based)
	StartCol   int    // display column where the cluster begins
	Width      int    // display width in columns (always >= 1)
}

// EndCol returns the display column just past the segment.
func (s Segment) EndCol() int {
	return s.StartCol + s.Width
}

// Line is a unicode-aware line of text. Line is an immutable value type;
// mutating operations return a new Line.
type Line struct {
	text     string
	segments []Segment
	width    int
}

// New creates a Line from a string. The string must not contain newlines;
// line splitting is the caller's concern.
func New(text string) Line {
	l := Line{text: text}
	if text == "" {
		return l
	}

	l.segments = make([]Segment, 0, len(text))
	state := -1
	byteOffset := 0
	col := 0
	index := 0
	rest := text

	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)

		w := runewidth.StringWidth(cluster)
		if w < 1 {
			// Control and zero-width clusters still occupy one cell so
			// that every segment is addressable by display column.
			w = 1
		}

		l.segments = append(l.segments, Segment{
			Cluster:    cluster,
			ByteOffset: byteOffset,
			Index:      index,
			StartCol:   col,
			Width:      w,
		})

		byteOffset += len(cluster)
		col += w
		index++
	}

	l.width = col
	return l
}

// String returns the line's text.
func (l Line) String() string {
	return l.text
}

// IsEmpty returns true if the line has no content.
func (l Line) IsEmpty() bool {
	return l.text == ""
}

// DisplayWidth returns the total display width of the line in columns.
func (l Line) DisplayWidth() int {
	return l.width
}

// SegmentCount returns the number of grapheme segments.
func (l Line) SegmentCount() int {
	return len(l.segments)
}

// Segments returns the line's segments in display order.
// The returned slice must not be modified.
func (l Line) Segments() []Segment {
	return l.segments
}

// SegmentAt returns the segment at the given logical index.
func (l Line) SegmentAt(index int) (Segment, bool) {
	if index < 0 || index >= len(l.segments) {
		return Segment{}, false
	}
	return l.segments[index], true
}

// SegmentAtDisplayCol returns the segment occupying the given display
// column. A column that falls inside a multi-width glyph resolves to that
// glyph. Returns false if the column is past the end of the line.
func (l Line) SegmentAtDisplayCol(col int) (Segment, bool) {
	if col < 0 || col >= l.width {
		return Segment{}, false
	}
	for _, seg := range l.segments {
		if col >= seg.StartCol && col < seg.EndCol() {
			return seg, true
		}
	}
	return Segment{}, false
}

// SegmentEndingAtDisplayCol returns the segment whose display range ends
// exactly at the given column, i.e. the segment immediately left of a
// caret sitting on a segment boundary.
func (l Line) SegmentEndingAtDisplayCol(col int) (Segment, bool) {
	for _, seg := range l.segments {
		if seg.EndCol() == col {
			return seg, true
		}
		if seg.EndCol() > col {
			break
		}
	}
	return Segment{}, false
}

// ByteOffsetForDisplayCol converts a display column to the byte offset used
// as an insertion or deletion point. A column inside a multi-width glyph
// rounds down to that glyph's start; a column at or past the end of the
// line maps to the end of the text.
func (l Line) ByteOffsetForDisplayCol(col int) int {
	if seg, ok := l.SegmentAtDisplayCol(col); ok {
		return seg.ByteOffset
	}
	return len(l.text)
}

// SnapToSegmentBoundary validates a caret display column against this line.
// A column past the end of the line clamps to the line's display width. A
// column that lands inside a multi-width glyph is pushed to the glyph's
// end, so vertical caret movement never stops mid-glyph.
func (l Line) SnapToSegmentBoundary(col int) int {
	if col < 0 {
		return 0
	}
	if col >= l.width {
		return l.width
	}
	seg, ok := l.SegmentAtDisplayCol(col)
	if !ok {
		return l.width
	}
	if col == seg.StartCol {
		return col
	}
	return seg.EndCol()
}

// InsertAtDisplayCol returns a new line with s inserted at the given display
// column. The column rounds down to a segment boundary per
// ByteOffsetForDisplayCol.
func (l Line) InsertAtDisplayCol(col int, s string) Line {
	if s == "" {
		return l
	}
	at := l.ByteOffsetForDisplayCol(col)
	var sb strings.Builder
	sb.Grow(len(l.text) + len(s))
	sb.WriteString(l.text[:at])
	sb.WriteString(s)
	sb.WriteString(l.text[at:])
	return New(sb.String())
}

// DeleteAtDisplayCol returns a new line with the segment occupying the given
// display column removed, along with the removed segment. Returns the line
// unchanged and ok=false if no segment occupies the column.
func (l Line) DeleteAtDisplayCol(col int) (Line, Segment, bool) {
	seg, ok := l.SegmentAtDisplayCol(col)
	if !ok {
		return l, Segment{}, false
	}
	return New(l.text[:seg.ByteOffset] + l.text[seg.ByteOffset+len(seg.Cluster):]), seg, true
}

// DeleteLeftOfDisplayCol returns a new line with the segment immediately
// left of the given boundary column removed, along with the removed segment.
func (l Line) DeleteLeftOfDisplayCol(col int) (Line, Segment, bool) {
	seg, ok := l.SegmentEndingAtDisplayCol(col)
	if !ok {
		return l, Segment{}, false
	}
	return New(l.text[:seg.ByteOffset] + l.text[seg.ByteOffset+len(seg.Cluster):]), seg, true
}

// SplitAtDisplayCol splits the line into two at the given display column.
// The column rounds down to a segment boundary.
func (l Line) SplitAtDisplayCol(col int) (left, right Line) {
	at := l.ByteOffsetForDisplayCol(col)
	return New(l.text[:at]), New(l.text[at:])
}

// Concat returns a new line holding this line's text followed by other's.
func (l Line) Concat(other Line) Line {
	if other.IsEmpty() {
		return l
	}
	if l.IsEmpty() {
		return other
	}
	return New(l.text + other.text)
}

// Width returns the display width of an arbitrary string, measured the same
// way Line measures its segments.
func Width(s string) int {
	if s == "" {
		return 0
	}
	total := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		w := runewidth.StringWidth(cluster)
		if w < 1 {
			w = 1
		}
		total += w
	}
	return total
}
