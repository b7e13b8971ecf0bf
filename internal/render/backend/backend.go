// Package backend owns the terminal surface. It paints cell grids produced
// by the render package onto a tcell screen and decodes tcell key events
// into editor buffer commands.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/editline/internal/engine/buffer"
	"github.com/dshills/editline/internal/render"
)

// Backend abstracts the terminal surface so tests and alternate frontends
// can substitute their own.
type Backend interface {
	// Size returns the surface size in cells.
	Size() (width, height int)
	// Show paints a cell grid and places the hardware cursor at the given
	// surface position. A negative position hides the cursor.
	Show(cells [][]render.Cell, caret buffer.Position)
	// PollEvent blocks until the next terminal event.
	PollEvent() tcell.Event
	// Fini restores the terminal.
	Fini()
}
