// Package buffer implements the editor buffer: the document being edited,
// the caret, the scroll offset, and the selection map, together with every
// mutation and navigation operation the engine supports.
//
// The caret is stored as a display position (terminal columns), not a
// character index. Wide glyphs occupy more than one column, so every
// mutation derives the caret's logical position from its display column
// through the segment package, and every vertical movement re-validates the
// caret against the target line so it never lands inside a glyph.
//
// Operations are total over their documented input domain: invalid row or
// column references are prevented by invariant rather than surfaced as
// runtime errors. The buffer assumes exclusive access for the duration of
// one command; the surrounding application serializes writers.
//
// EditorBuffer supports value equality, cloning, and a stable hash so an
// outer state store can snapshot it for history.
package buffer
