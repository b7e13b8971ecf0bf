package selection

import "testing"

func TestLocate(t *testing.T) {
	r := NewRange(0, 5)

	tests := []struct {
		col  int
		want CaretLocation
	}{
		{-1, Underflow},
		{0, Contained}, // start is inclusive
		{3, Contained},
		{4, Contained},
		{5, Overflow}, // end is exclusive
		{7, Overflow},
	}

	for _, tt := range tests {
		if got := r.Locate(tt.col); got != tt.want {
			t.Errorf("Locate(%d): expected %v, got %v", tt.col, tt.want, got)
		}
	}
}

func TestLocateNonZeroStart(t *testing.T) {
	r := NewRange(3, 8)

	if got := r.Locate(2); got != Underflow {
		t.Errorf("Locate(2): expected Underflow, got %v", got)
	}
	if got := r.Locate(3); got != Contained {
		t.Errorf("Locate(3): expected Contained, got %v", got)
	}
	if got := r.Locate(8); got != Overflow {
		t.Errorf("Locate(8): expected Overflow, got %v", got)
	}
}

func TestGrowShrink(t *testing.T) {
	r := NewRange(3, 8)

	if got := r.GrowStartBy(2); got != NewRange(1, 8) {
		t.Errorf("GrowStartBy: got %v", got)
	}
	if got := r.ShrinkStartBy(2); got != NewRange(5, 8) {
		t.Errorf("ShrinkStartBy: got %v", got)
	}
	if got := r.GrowEndBy(2); got != NewRange(3, 10) {
		t.Errorf("GrowEndBy: got %v", got)
	}
	if got := r.ShrinkEndBy(2); got != NewRange(3, 6) {
		t.Errorf("ShrinkEndBy: got %v", got)
	}

	// The receiver is unchanged.
	if r != NewRange(3, 8) {
		t.Errorf("receiver mutated: %v", r)
	}
}

func TestIsEmpty(t *testing.T) {
	if !NewRange(4, 4).IsEmpty() {
		t.Error("expected [4, 4) to be empty")
	}
	if !NewRange(5, 3).IsEmpty() {
		t.Error("expected inverted range to be empty")
	}
	if NewRange(4, 5).IsEmpty() {
		t.Error("expected [4, 5) to be non-empty")
	}
}

func TestMovementDirection(t *testing.T) {
	if got := MovementDirection(5, 3); got != Left {
		t.Errorf("expected Left, got %v", got)
	}
	if got := MovementDirection(3, 5); got != Right {
		t.Errorf("expected Right, got %v", got)
	}
	if got := MovementDirection(4, 4); got != Unchanged {
		t.Errorf("expected Unchanged, got %v", got)
	}
}

func TestRangeString(t *testing.T) {
	if got := NewRange(2, 7).String(); got != "[2, 7)" {
		t.Errorf("expected %q, got %q", "[2, 7)", got)
	}
}
