package buffer

import (
	"fmt"
	"hash/fnv"

	"github.com/dshills/editline/internal/engine/segment"
)

// Clone returns a deep copy of the buffer. Lines are immutable values, so
// the line slice is copied shallowly.
func (b *EditorBuffer) Clone() *EditorBuffer {
	lines := make([]segment.Line, len(b.lines))
	copy(lines, b.lines)

	return &EditorBuffer{
		lines:    lines,
		caret:    b.caret,
		scroll:   b.scroll,
		sel:      b.sel.Clone(),
		ext:      b.ext,
		tabWidth: b.tabWidth,
	}
}

// Equal returns true if both buffers hold the same content, caret, scroll
// offset, selection, and syntax tag.
func (b *EditorBuffer) Equal(other *EditorBuffer) bool {
	if b == other {
		return true
	}
	if other == nil {
		return false
	}
	if b.caret != other.caret || b.scroll != other.scroll || b.ext != other.ext {
		return false
	}
	if len(b.lines) != len(other.lines) {
		return false
	}
	for i := range b.lines {
		if b.lines[i].String() != other.lines[i].String() {
			return false
		}
	}
	return b.sel.Equal(other.sel)
}

// Hash returns a stable FNV-1a hash of the buffer's content, caret, and
// scroll offset, for history snapshotting by an outer state store. Buffers
// that compare Equal (selection aside) hash identically.
func (b *EditorBuffer) Hash() uint64 {
	h := fnv.New64a()
	for _, l := range b.lines {
		h.Write([]byte(l.String()))
		h.Write([]byte{'\n'})
	}
	fmt.Fprintf(h, "%d:%d:%d:%d:%s",
		b.caret.Col, b.caret.Row, b.scroll.Col, b.scroll.Row, b.ext)
	return h.Sum64()
}

// String returns a diagnostic dump of the buffer state.
func (b *EditorBuffer) String() string {
	return fmt.Sprintf(
		"EditorBuffer [lines: %d, caret: %s, scroll: %s, ext: %s, selection: %s]",
		len(b.lines), b.caret, b.scroll, b.ext, b.sel)
}
