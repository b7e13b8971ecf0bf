package selection

import "testing"

func TestMapInsertGet(t *testing.T) {
	m := NewMap()

	if !m.IsEmpty() {
		t.Error("new map should be empty")
	}

	m.Insert(2, NewRange(1, 4))

	r, ok := m.Get(2)
	if !ok {
		t.Fatal("expected range for row 2")
	}
	if r != NewRange(1, 4) {
		t.Errorf("unexpected range: %v", r)
	}

	if _, ok := m.Get(3); ok {
		t.Error("expected no range for row 3")
	}
}

func TestMapInsertEmptyPrunes(t *testing.T) {
	m := NewMap()

	m.Insert(0, NewRange(3, 3))
	if !m.IsEmpty() {
		t.Error("inserting an empty range must not create an entry")
	}

	// Overwriting an existing entry with an empty range removes it.
	m.Insert(0, NewRange(1, 5))
	m.Insert(0, NewRange(2, 2))
	if _, ok := m.Get(0); ok {
		t.Error("expected entry pruned after empty overwrite")
	}
}

func TestMapRemove(t *testing.T) {
	m := NewMap()
	m.Insert(1, NewRange(0, 2))

	r, ok := m.Remove(1)
	if !ok || r != NewRange(0, 2) {
		t.Errorf("unexpected removal result: %v %v", r, ok)
	}
	if _, ok := m.Remove(1); ok {
		t.Error("second removal should report missing")
	}
}

func TestMapClear(t *testing.T) {
	m := NewMap()
	m.Insert(0, NewRange(0, 1))
	m.Insert(5, NewRange(2, 9))

	m.Clear()
	if !m.IsEmpty() {
		t.Error("expected empty map after Clear")
	}
}

func TestMapRowsSorted(t *testing.T) {
	m := NewMap()
	m.Insert(5, NewRange(0, 1))
	m.Insert(1, NewRange(0, 1))
	m.Insert(3, NewRange(0, 1))

	rows := m.Rows()
	want := []int{1, 3, 5}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: expected %d, got %d", i, want[i], rows[i])
		}
	}
}

func TestMapCloneEqual(t *testing.T) {
	m := NewMap()
	m.Insert(0, NewRange(0, 3))
	m.Insert(2, NewRange(1, 2))

	c := m.Clone()
	if !m.Equal(c) {
		t.Error("clone should equal original")
	}

	c.Insert(2, NewRange(0, 2))
	if m.Equal(c) {
		t.Error("modified clone should differ")
	}
	if r, _ := m.Get(2); r != NewRange(1, 2) {
		t.Error("modifying clone must not affect original")
	}
}

func TestMapString(t *testing.T) {
	m := NewMap()
	if m.String() != "None" {
		t.Errorf("expected None, got %q", m.String())
	}

	m.Insert(1, NewRange(0, 3))
	m.Insert(0, NewRange(2, 5))
	want := "row 0 => [2, 5), row 1 => [0, 3)"
	if m.String() != want {
		t.Errorf("expected %q, got %q", want, m.String())
	}
}
