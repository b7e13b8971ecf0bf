// Package state is the outer application state store. It holds the editor
// buffers keyed by component, tracks the backing file path, and serializes
// itself to JSON for session persistence.
package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/editline/internal/engine/buffer"
)

// ComponentID identifies a UI component that owns an editor buffer.
type ComponentID string

// EditorComponentID is the main editor component.
const EditorComponentID ComponentID = "editor"

// State is the top-level application state: one editor buffer per
// component, plus the path of the file backing the main editor.
type State struct {
	buffers map[ComponentID]*buffer.EditorBuffer
	path    string
}

// New creates the application state. When path names a readable file its
// content seeds the main editor buffer and its extension becomes the
// buffer's syntax tag; an empty or unreadable path yields an empty buffer
// with the default tag. Extra buffer options apply on top.
func New(path string, opts ...buffer.Option) *State {
	buf := buffer.NewFromFile(path, opts...)

	return &State{
		buffers: map[ComponentID]*buffer.EditorBuffer{
			EditorComponentID: buf,
		},
		path: path,
	}
}

// FilePath returns the path backing the main editor, or "" for a scratch
// session.
func (s *State) FilePath() string {
	return s.path
}

// Buffer returns the buffer owned by the given component.
func (s *State) Buffer(id ComponentID) (*buffer.EditorBuffer, bool) {
	b, ok := s.buffers[id]
	return b, ok
}

// Editor returns the main editor buffer. It always exists.
func (s *State) Editor() *buffer.EditorBuffer {
	return s.buffers[EditorComponentID]
}

// Insert registers a buffer under a component, replacing any existing one.
func (s *State) Insert(id ComponentID, b *buffer.EditorBuffer) {
	s.buffers[id] = b
}

// Contains reports whether a component owns a buffer.
func (s *State) Contains(id ComponentID) bool {
	_, ok := s.buffers[id]
	return ok
}

// Remove drops a component's buffer. Removing the main editor is refused.
func (s *State) Remove(id ComponentID) {
	if id == EditorComponentID {
		return
	}
	delete(s.buffers, id)
}

// Content returns the main editor's document as lines.
func (s *State) Content() []string {
	return s.Editor().Lines()
}

// ComponentIDs returns the registered components in sorted order.
func (s *State) ComponentIDs() []ComponentID {
	ids := make([]ComponentID, 0, len(s.buffers))
	for id := range s.buffers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	buffers := make(map[ComponentID]*buffer.EditorBuffer, len(s.buffers))
	for id, b := range s.buffers {
		buffers[id] = b.Clone()
	}
	return &State{buffers: buffers, path: s.path}
}

// Equal returns true if both states hold the same path and equal buffers
// under the same components.
func (s *State) Equal(other *State) bool {
	if s == other {
		return true
	}
	if other == nil {
		return false
	}
	if s.path != other.path || len(s.buffers) != len(other.buffers) {
		return false
	}
	for id, b := range s.buffers {
		ob, ok := other.buffers[id]
		if !ok || !b.Equal(ob) {
			return false
		}
	}
	return true
}

// String returns a diagnostic dump of the state.
func (s *State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "State [path: %q", s.path)
	for _, id := range s.ComponentIDs() {
		fmt.Fprintf(&sb, ", %s: %s", id, s.buffers[id])
	}
	sb.WriteString("]")
	return sb.String()
}
