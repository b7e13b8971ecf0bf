package selection

import (
	"sort"
	"strconv"
	"strings"
)

// Map holds at most one selection Range per document row. The zero value is
// not usable; create with NewMap.
type Map struct {
	ranges map[int]Range
}

// NewMap creates an empty selection map.
func NewMap() *Map {
	return &Map{ranges: make(map[int]Range)}
}

// IsEmpty returns true if no row has a selection.
func (m *Map) IsEmpty() bool {
	return len(m.ranges) == 0
}

// Len returns the number of rows with a selection.
func (m *Map) Len() int {
	return len(m.ranges)
}

// Get returns the selection range for a row.
func (m *Map) Get(row int) (Range, bool) {
	r, ok := m.ranges[row]
	return r, ok
}

// Insert sets the selection range for a row. Inserting an empty range
// removes the row's entry instead: an empty selection is not representable.
func (m *Map) Insert(row int, r Range) {
	if r.IsEmpty() {
		delete(m.ranges, row)
		return
	}
	m.ranges[row] = r
}

// Remove deletes the selection range for a row, returning the removed range
// if one existed.
func (m *Map) Remove(row int) (Range, bool) {
	r, ok := m.ranges[row]
	if ok {
		delete(m.ranges, row)
	}
	return r, ok
}

// Clear removes all selections.
func (m *Map) Clear() {
	clear(m.ranges)
}

// Rows returns the selected row indices in ascending order.
func (m *Map) Rows() []int {
	rows := make([]int, 0, len(m.ranges))
	for row := range m.ranges {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := NewMap()
	for row, r := range m.ranges {
		c.ranges[row] = r
	}
	return c
}

// Equal returns true if both maps select the same ranges on the same rows.
func (m *Map) Equal(other *Map) bool {
	if len(m.ranges) != len(other.ranges) {
		return false
	}
	for row, r := range m.ranges {
		or, ok := other.ranges[row]
		if !ok || or != r {
			return false
		}
	}
	return true
}

// String returns a diagnostic representation, e.g.
// "row 0 => [2, 5), row 1 => [0, 3)". Returns "None" when empty.
func (m *Map) String() string {
	if len(m.ranges) == 0 {
		return "None"
	}

	var sb strings.Builder
	for i, row := range m.Rows() {
		if i > 0 {
			sb.WriteString(", ")
		}
		r := m.ranges[row]
		sb.WriteString("row ")
		sb.WriteString(strconv.Itoa(row))
		sb.WriteString(" => ")
		sb.WriteString(r.String())
	}
	return sb.String()
}
