// Package flexbox computes the flex box for a modal dialog hosted over the
// editor surface. Sizing is the one operation in the system that can fail:
// a surface smaller than the minimum dialog size yields a structured error
// rather than a clipped box.
package flexbox

import (
	"errors"
	"fmt"
)

// Minimum surface size a dialog requires.
const (
	MinDialogCols = 65
	MinDialogRows = 10
)

// ErrDisplaySizeTooSmall is the sentinel for surfaces that cannot host a
// dialog. Returned errors wrap it; match with errors.Is.
var ErrDisplaySizeTooSmall = errors.New("display size too small")

// ErrorKind classifies a sizing error.
type ErrorKind int

const (
	// DisplaySizeTooSmall means the hosting surface is smaller than the
	// minimum dialog size.
	DisplaySizeTooSmall ErrorKind = iota
)

// String returns the name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case DisplaySizeTooSmall:
		return "DisplaySizeTooSmall"
	default:
		return "Unknown"
	}
}

// SizeError is the structured error returned when a surface cannot fit a
// dialog.
type SizeError struct {
	Kind ErrorKind
	Msg  string
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap lets errors.Is match the sentinel.
func (e *SizeError) Unwrap() error {
	return ErrDisplaySizeTooSmall
}

// Size is a surface size in terminal cells.
type Size struct {
	Cols int
	Rows int
}

// Box is a positioned rectangle on the surface.
type Box struct {
	X    int
	Y    int
	Cols int
	Rows int
}

// ForDialog returns the flex box for a dialog centered on the given
// surface. The surface must be at least MinDialogCols x MinDialogRows;
// otherwise a *SizeError wrapping ErrDisplaySizeTooSmall is returned.
func ForDialog(surface Size) (Box, error) {
	if surface.Cols < MinDialogCols || surface.Rows < MinDialogRows {
		return Box{}, &SizeError{
			Kind: DisplaySizeTooSmall,
			Msg: fmt.Sprintf(
				"window size is too small, min size is %d cols x %d rows",
				MinDialogCols, MinDialogRows),
		}
	}

	box := Box{Cols: MinDialogCols, Rows: MinDialogRows}
	box.X = (surface.Cols - box.Cols) / 2
	box.Y = (surface.Rows - box.Rows) / 2
	return box, nil
}
