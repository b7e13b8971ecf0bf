package render

import (
	"github.com/dshills/editline/internal/engine/buffer"
)

// Viewport is the visible region of the terminal surface, in cells.
type Viewport struct {
	Width  int
	Height int
}

// View assembles the visible portion of the buffer into a Height x Width
// grid of cells. The buffer's scroll offset selects the region; rows or
// columns past the end of the document are blank. Selected columns (per the
// buffer's selection map) get the theme's selection style.
func View(buf *buffer.EditorBuffer, vp Viewport, theme Theme) [][]Cell {
	rows := make([][]Cell, 0, vp.Height)
	scroll := buf.Scroll()

	for y := 0; y < vp.Height; y++ {
		docRow := scroll.Row + y
		rows = append(rows, viewRow(buf, docRow, scroll.Col, vp.Width, theme))
	}
	return rows
}

// viewRow assembles one visible row.
func viewRow(buf *buffer.EditorBuffer, docRow, leftCol, width int, theme Theme) []Cell {
	cells := make([]Cell, 0, width)

	line, ok := buf.Line(docRow)
	if !ok {
		for x := 0; x < width; x++ {
			cells = append(cells, EmptyCell(theme.Text))
		}
		return cells
	}

	selRange, hasSel := buf.Selection().Get(docRow)

	styleAt := func(col int) Style {
		if hasSel && col >= selRange.Start && col < selRange.End {
			return theme.Selection
		}
		return theme.Text
	}

	for _, seg := range line.Segments() {
		if seg.EndCol() <= leftCol {
			continue
		}
		visStart := seg.StartCol - leftCol
		if visStart >= width {
			break
		}
		if visStart < 0 {
			// Wide glyph straddling the left edge: pad its clipped columns.
			for x := 0; x < seg.EndCol()-leftCol; x++ {
				cells = append(cells, EmptyCell(styleAt(seg.StartCol)))
			}
			continue
		}

		style := styleAt(seg.StartCol)
		if seg.EndCol()-leftCol > width {
			// Wide glyph straddling the right edge.
			for len(cells) < width {
				cells = append(cells, EmptyCell(style))
			}
			break
		}

		cells = append(cells, Cell{Cluster: seg.Cluster, Width: seg.Width, Style: style})
		for i := 1; i < seg.Width; i++ {
			cells = append(cells, ContinuationCell(style))
		}
	}

	for len(cells) < width {
		cells = append(cells, EmptyCell(theme.Text))
	}
	return cells
}
