package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/editline/internal/engine/buffer"
)

// ErrInvalidSnapshot is returned when a snapshot document cannot be
// restored. Returned errors wrap it; match with errors.Is.
var ErrInvalidSnapshot = errors.New("invalid state snapshot")

// SnapshotJSON serializes the state to a JSON document suitable for
// session persistence. Selections are transient and not persisted.
func (s *State) SnapshotJSON() (string, error) {
	doc, err := sjson.Set("", "path", s.path)
	if err != nil {
		return "", fmt.Errorf("snapshot path: %w", err)
	}

	for _, id := range s.ComponentIDs() {
		b := s.buffers[id]
		prefix := "buffers." + escapeKey(string(id)) + "."

		caret := b.Caret(buffer.CaretRaw)
		scroll := b.Scroll()

		for _, field := range []struct {
			key   string
			value any
		}{
			{"lines", b.Lines()},
			{"ext", b.SyntaxExt()},
			{"caret.col", caret.Col},
			{"caret.row", caret.Row},
			{"scroll.col", scroll.Col},
			{"scroll.row", scroll.Row},
		} {
			doc, err = sjson.Set(doc, prefix+field.key, field.value)
			if err != nil {
				return "", fmt.Errorf("snapshot %s%s: %w", prefix, field.key, err)
			}
		}
	}

	return doc, nil
}

// RestoreJSON rebuilds the state from a snapshot document produced by
// SnapshotJSON. The restored caret and scroll positions are re-validated
// against the restored content.
func RestoreJSON(doc string) (*State, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidSnapshot)
	}

	s := &State{
		buffers: make(map[ComponentID]*buffer.EditorBuffer),
		path:    gjson.Get(doc, "path").String(),
	}

	gjson.Get(doc, "buffers").ForEach(func(key, value gjson.Result) bool {
		var lines []string
		for _, l := range value.Get("lines").Array() {
			lines = append(lines, l.String())
		}

		b := buffer.New(
			buffer.WithLines(lines),
			buffer.WithSyntaxExt(value.Get("ext").String()),
		)
		b.SetCaret(buffer.Position{
			Col: int(value.Get("caret.col").Int()),
			Row: int(value.Get("caret.row").Int()),
		})
		b.SetScroll(buffer.Position{
			Col: int(value.Get("scroll.col").Int()),
			Row: int(value.Get("scroll.row").Int()),
		})

		s.buffers[ComponentID(key.String())] = b
		return true
	})

	if !s.Contains(EditorComponentID) {
		return nil, fmt.Errorf("%w: missing editor buffer", ErrInvalidSnapshot)
	}
	return s, nil
}

// escapeKey escapes a component ID for use inside a sjson/gjson path.
func escapeKey(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(key)
}
