// Package render assembles the editor buffer's lines, caret, and selection
// map into styled terminal cells for a painting collaborator. It performs
// viewport clipping and selection styling but does not paint anything
// itself; the backend subpackage owns the terminal surface.
package render
