package render

import "fmt"

// Color is an RGB color value. The zero value with Default set represents
// the terminal's default color.
type Color struct {
	R, G, B uint8
	Default bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Style is the visual style of a cell.
type Style struct {
	Fg      Color
	Bg      Color
	Bold    bool
	Reverse bool
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{Fg: ColorDefault, Bg: ColorDefault}
}

// WithBg returns a style with the given background.
func (s Style) WithBg(bg Color) Style {
	s.Bg = bg
	return s
}

// WithFg returns a style with the given foreground.
func (s Style) WithFg(fg Color) Style {
	s.Fg = fg
	return s
}

// Cell is one painted terminal cell. A wide glyph occupies one Cell with
// Width 2 followed by a continuation cell with Width 0 and an empty
// Cluster.
type Cell struct {
	Cluster string // the grapheme cluster, "" for continuation cells
	Width   int    // 0 continuation, 1 normal, 2 wide
	Style   Style
}

// EmptyCell returns a blank cell in the given style.
func EmptyCell(style Style) Cell {
	return Cell{Cluster: " ", Width: 1, Style: style}
}

// ContinuationCell returns the trailing cell of a wide glyph.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// IsContinuation returns true for the trailing cell of a wide glyph.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}
