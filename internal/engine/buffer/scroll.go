package buffer

// EnsureCaretVisible adjusts the scroll offset so the caret falls inside a
// viewport of the given size. Returns true if the offset changed.
func (b *EditorBuffer) EnsureCaretVisible(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	changed := false

	if b.caret.Row < b.scroll.Row {
		b.scroll.Row = b.caret.Row
		changed = true
	} else if b.caret.Row >= b.scroll.Row+height {
		b.scroll.Row = b.caret.Row - height + 1
		changed = true
	}

	if b.caret.Col < b.scroll.Col {
		b.scroll.Col = b.caret.Col
		changed = true
	} else if b.caret.Col >= b.scroll.Col+width {
		b.scroll.Col = b.caret.Col - width + 1
		changed = true
	}

	return changed
}

// SetScroll sets the scroll offset directly. Negative components clamp to
// zero.
func (b *EditorBuffer) SetScroll(p Position) {
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Row < 0 {
		p.Row = 0
	}
	b.scroll = p
}
