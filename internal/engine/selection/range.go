package selection

import "fmt"

// CaretLocation classifies a probe column against a Range.
type CaretLocation int

const (
	// Underflow means the column is before the range start.
	Underflow CaretLocation = iota
	// Contained means the column is within [Start, End).
	Contained
	// Overflow means the column is at or past the range end.
	Overflow
)

// String returns the name of the location.
func (cl CaretLocation) String() string {
	switch cl {
	case Underflow:
		return "Underflow"
	case Contained:
		return "Contained"
	case Overflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// Direction is the horizontal direction of a caret movement.
type Direction int

const (
	// Unchanged means the caret column did not move.
	Unchanged Direction = iota
	// Left means the caret moved to a smaller column.
	Left
	// Right means the caret moved to a larger column.
	Right
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unchanged"
	}
}

// MovementDirection compares a previous and current caret column.
func MovementDirection(previousCol, currentCol int) Direction {
	switch {
	case currentCol < previousCol:
		return Left
	case currentCol > previousCol:
		return Right
	default:
		return Unchanged
	}
}

// Range is one row's selected display-column interval.
// Start is inclusive, End is exclusive. Any Range stored in a Map satisfies
// Start < End; an empty range is pruned on insert.
type Range struct {
	Start int // first selected display column
	End   int // one past the last selected display column
}

// NewRange creates a range from start to end.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// IsEmpty returns true if the range selects nothing.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Locate classifies a probe display column against the range.
// The start is inclusive, so Locate(Start) is Contained; the end is
// exclusive, so Locate(End) is Overflow.
func (r Range) Locate(col int) CaretLocation {
	switch {
	case col < r.Start:
		return Underflow
	case col >= r.End:
		return Overflow
	default:
		return Contained
	}
}

// GrowStartBy returns a range with the start moved left by delta.
func (r Range) GrowStartBy(delta int) Range {
	return Range{Start: r.Start - delta, End: r.End}
}

// ShrinkStartBy returns a range with the start moved right by delta.
func (r Range) ShrinkStartBy(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End}
}

// GrowEndBy returns a range with the end moved right by delta.
func (r Range) GrowEndBy(delta int) Range {
	return Range{Start: r.Start, End: r.End + delta}
}

// ShrinkEndBy returns a range with the end moved left by delta.
func (r Range) ShrinkEndBy(delta int) Range {
	return Range{Start: r.Start, End: r.End - delta}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
