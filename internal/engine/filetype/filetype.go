// Package filetype derives the syntax tag an editor buffer hands to the
// external highlighter, and reads initial buffer content from disk.
package filetype

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExt is the extension tag used when a path is absent, has no
// extension, or has an empty extension.
const DefaultExt = "md"

// Info describes the detected file type of a buffer's backing file.
type Info struct {
	Ext      string // file extension without the dot, or DefaultExt
	Language string // detected language name, "" if unknown
}

// Ext returns the extension tag for an optional file path. An empty path,
// a path without an extension, or a bare trailing dot all yield DefaultExt.
func Ext(path string) string {
	if path == "" {
		return DefaultExt
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return DefaultExt
	}
	return ext
}

// ReadLines reads a file's content as a sequence of lines. Returns an empty
// slice if the path is absent or the file cannot be read.
func ReadLines(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return splitLines(string(data))
}

// splitLines splits text on line boundaries without producing a trailing
// empty line for a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
