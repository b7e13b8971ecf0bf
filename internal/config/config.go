// Package config loads editor settings. Settings come from an optional
// JSON file, optionally refined by a Lua script, and fall back to built-in
// defaults when neither is present.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ErrInvalidConfig is the sentinel for unusable configuration input.
// Returned errors wrap it; match with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the editor settings.
type Config struct {
	// TabWidth is the display width of an inserted tab, in columns.
	TabWidth int
	// DefaultExt is the syntax tag for buffers without a backing file.
	DefaultExt string
	// SelectionTint is a hex color ("#rrggbb") blended into the selection
	// background. Empty keeps the built-in selection color.
	SelectionTint string
	// ShowLineNumbers toggles the line number gutter.
	ShowLineNumbers bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabWidth:        4,
		DefaultExt:      "md",
		ShowLineNumbers: true,
	}
}

// Load reads settings from a JSON file, overlaying the defaults. A missing
// file yields the defaults; a present but malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("%w: %s is not valid JSON", ErrInvalidConfig, path)
	}

	doc := gjson.ParseBytes(data)
	if v := doc.Get("tab_width"); v.Exists() {
		cfg.TabWidth = int(v.Int())
	}
	if v := doc.Get("default_ext"); v.Exists() {
		cfg.DefaultExt = v.String()
	}
	if v := doc.Get("selection_tint"); v.Exists() {
		cfg.SelectionTint = v.String()
	}
	if v := doc.Get("show_line_numbers"); v.Exists() {
		cfg.ShowLineNumbers = v.Bool()
	}

	return cfg, cfg.validate(path)
}

func (c Config) validate(source string) error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("%w: %s: tab_width %d out of range [1, 16]",
			ErrInvalidConfig, source, c.TabWidth)
	}
	if c.DefaultExt == "" {
		return fmt.Errorf("%w: %s: default_ext must not be empty",
			ErrInvalidConfig, source)
	}
	return nil
}
