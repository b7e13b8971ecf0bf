package render

import "github.com/lucasb-eyer/go-colorful"

// Theme holds the styles the view applies to buffer content.
type Theme struct {
	Text      Style
	Selection Style
	Caret     Style
}

// DefaultTheme returns the stock theme: default text on a default
// background, with a muted blue selection.
func DefaultTheme() Theme {
	return Theme{
		Text:      DefaultStyle(),
		Selection: DefaultStyle().WithBg(ColorFromRGB(38, 79, 120)),
		Caret:     Style{Fg: ColorDefault, Bg: ColorDefault, Reverse: true},
	}
}

// WithSelectionTint returns a theme whose selection background is the given
// hex color softened toward a dark base, so arbitrary configured tints stay
// readable behind default-colored text. Invalid hex input leaves the theme
// unchanged.
func (t Theme) WithSelectionTint(hex string) Theme {
	tint, err := colorful.Hex(hex)
	if err != nil {
		return t
	}

	base := colorful.Color{R: 0.08, G: 0.08, B: 0.10}
	blended := base.BlendLab(tint, 0.55).Clamped()

	r, g, b := blended.RGB255()
	t.Selection = t.Selection.WithBg(ColorFromRGB(r, g, b))
	return t
}
