// Package main is the entry point for the editline editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/editline/internal/config"
	"github.com/dshills/editline/internal/engine/buffer"
	"github.com/dshills/editline/internal/render"
	"github.com/dshills/editline/internal/render/backend"
	"github.com/dshills/editline/internal/state"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	scriptPath  string
	sessionPath string
	file        string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: editline requires an interactive terminal")
		return 1
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg, err = config.ApplyScript(cfg, opts.scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	st := openState(opts, cfg)

	theme := render.DefaultTheme()
	if cfg.SelectionTint != "" {
		theme = theme.WithSelectionTint(cfg.SelectionTint)
	}

	tm, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer tm.Fini()

	if err := eventLoop(tm, st, theme); err != nil {
		tm.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.sessionPath != "" {
		if err := saveSession(st, opts.sessionPath); err != nil {
			tm.Fini()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

// openState builds the initial application state: a restored session when
// one is available and no file argument overrides it, otherwise the file
// (or a scratch buffer).
func openState(opts options, cfg config.Config) *state.State {
	if opts.file == "" && opts.sessionPath != "" {
		if data, err := os.ReadFile(opts.sessionPath); err == nil {
			if st, err := state.RestoreJSON(string(data)); err == nil {
				return st
			}
		}
	}

	bufOpts := []buffer.Option{buffer.WithTabWidth(cfg.TabWidth)}
	if opts.file == "" {
		bufOpts = append(bufOpts, buffer.WithSyntaxExt(cfg.DefaultExt))
	}
	return state.New(opts.file, bufOpts...)
}

// eventLoop polls terminal events until the user quits, feeding decoded
// commands to the editor buffer and repainting after every event.
func eventLoop(tm backend.Backend, st *state.State, theme render.Theme) error {
	buf := st.Editor()

	for {
		paint(tm, buf, theme)

		switch ev := tm.PollEvent().(type) {
		case *tcell.EventResize:
			continue

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlQ, tcell.KeyCtrlC:
				return nil
			case tcell.KeyCtrlS:
				if err := saveFile(st); err != nil {
					return err
				}
				continue
			}

			cmd, ok := backend.DecodeKey(ev)
			if !ok {
				continue
			}
			buf.ApplyCommand(cmd)
		}
	}
}

// paint renders the buffer to the terminal with the caret kept in view.
func paint(tm backend.Backend, buf *buffer.EditorBuffer, theme render.Theme) {
	width, height := tm.Size()
	buf.EnsureCaretVisible(width, height)

	cells := render.View(buf, render.Viewport{Width: width, Height: height}, theme)
	tm.Show(cells, buf.Caret(buffer.CaretScrollAdjusted))
}

// saveFile writes the editor content back to its backing file. A scratch
// session has nowhere to save and is a no-op.
func saveFile(st *state.State) error {
	if st.FilePath() == "" {
		return nil
	}
	content := strings.Join(st.Content(), "\n") + "\n"
	if err := os.WriteFile(st.FilePath(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", st.FilePath(), err)
	}
	return nil
}

// saveSession persists the session snapshot for the next start.
func saveSession(st *state.State, path string) error {
	doc, err := st.SnapshotJSON()
	if err != nil {
		return fmt.Errorf("snapshot session: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		return fmt.Errorf("save session %s: %w", path, err)
	}
	return nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "", "Path to Lua settings script")
	flag.StringVar(&opts.sessionPath, "session", "", "Path to session snapshot file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Editline - unicode-aware terminal editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: editline [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  editline                    Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  editline notes.md           Open a file\n")
		fmt.Fprintf(os.Stderr, "  editline -session .el.json  Resume the saved session\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Editline %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		opts.file = flag.Arg(0)
	}
	return opts
}
