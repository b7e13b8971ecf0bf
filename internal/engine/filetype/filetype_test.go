package filetype

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", DefaultExt},
		{"main.go", "go"},
		{"lib.rs", "rs"},
		{"notes.md", "md"},
		{"archive.tar.gz", "gz"},
		{"README", DefaultExt},
		{"weird.", DefaultExt},
		{"/some/dir/file.txt", "txt"},
		{".bashrc", "bashrc"},
	}

	for _, tt := range tests {
		if got := Ext(tt.path); got != tt.want {
			t.Errorf("Ext(%q): expected %q, got %q", tt.path, tt.want, got)
		}
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines := ReadLines(path)
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if lines := ReadLines("/nonexistent/path/file.txt"); lines != nil {
		t.Errorf("expected nil for unreadable file, got %q", lines)
	}
	if lines := ReadLines(""); lines != nil {
		t.Errorf("expected nil for empty path, got %q", lines)
	}
}

func TestReadLinesCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dos.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines := ReadLines(path)
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Errorf("unexpected lines: %q", lines)
	}
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	info := Detect(path)
	if info.Ext != "go" {
		t.Errorf("expected ext go, got %q", info.Ext)
	}
	if info.Language != "Go" {
		t.Errorf("expected language Go, got %q", info.Language)
	}
}

func TestDetectNoPath(t *testing.T) {
	info := Detect("")
	if info.Ext != DefaultExt {
		t.Errorf("expected default ext, got %q", info.Ext)
	}
	if info.Language != "" {
		t.Errorf("expected no language, got %q", info.Language)
	}
}
