package filetype

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Detect returns the file type info for an optional file path, consulting
// the file's content when it is readable. The language name comes from
// enry's filename and content classifiers; the extension tag follows the
// Ext rules.
func Detect(path string) Info {
	info := Info{Ext: Ext(path)}
	if path == "" {
		return info
	}

	var content []byte
	if lines := ReadLines(path); lines != nil {
		content = []byte(strings.Join(lines, "\n"))
	}

	info.Language = enry.GetLanguage(filepath.Base(path), content)
	return info
}
