// Package segment provides the unicode-aware line model for the editor
// engine.
//
// A Line decomposes its text into grapheme-cluster segments, each carrying a
// byte offset, a logical index, a display-column start, and a display width.
// Wide glyphs (emoji, CJK) occupy more than one terminal column, so the
// engine addresses text by display column and uses this package to translate
// between display columns and byte positions.
//
// Three units of measurement apply to every line:
//
//  1. Bytes: the storage unit of Go strings. One grapheme can span many
//     bytes.
//  2. Segments: grapheme clusters, the unit users perceive as a character.
//  3. Display columns: terminal cells. ASCII is 1 column, emoji and CJK
//     are 2.
//
// Invariant: segments are contiguous and ordered by increasing display
// column with no gaps, and the sum of segment widths equals the line's
// display width.
package segment
