package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/editline/internal/engine/buffer"
	"github.com/dshills/editline/internal/render"
)

// Terminal implements Backend on a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates and initializes a tcell-backed terminal surface.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	return &Terminal{screen: screen}, nil
}

// Size returns the surface size in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Show paints the cell grid and places the cursor.
func (t *Terminal) Show(cells [][]render.Cell, caret buffer.Position) {
	for y, row := range cells {
		x := 0
		for _, cell := range row {
			if cell.IsContinuation() {
				continue
			}
			mainc, combc := splitCluster(cell.Cluster)
			t.screen.SetContent(x, y, mainc, combc, toTcellStyle(cell.Style))
			x += cell.Width
		}
	}

	if caret.Col >= 0 && caret.Row >= 0 {
		t.screen.ShowCursor(caret.Col, caret.Row)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
}

// PollEvent blocks until the next terminal event.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// splitCluster breaks a grapheme cluster into tcell's main rune plus
// combining runes.
func splitCluster(cluster string) (rune, []rune) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return ' ', nil
	}
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}

// toTcellStyle converts a render style to a tcell style.
func toTcellStyle(s render.Style) tcell.Style {
	st := tcell.StyleDefault

	if !s.Fg.Default {
		st = st.Foreground(tcell.NewRGBColor(int32(s.Fg.R), int32(s.Fg.G), int32(s.Fg.B)))
	}
	if !s.Bg.Default {
		st = st.Background(tcell.NewRGBColor(int32(s.Bg.R), int32(s.Bg.G), int32(s.Bg.B)))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}
