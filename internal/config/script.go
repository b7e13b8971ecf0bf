package config

import (
	"context"
	"fmt"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// scriptTimeout bounds a config script run. Scripts are straight-line
// settings code; anything longer is runaway.
const scriptTimeout = 2 * time.Second

// ApplyScript runs a Lua settings script against the config and returns the
// refined result. The script sees the current values in an `editor` table
// and mutates it:
//
//	editor.tab_width = 2
//	editor.selection_tint = "#264f78"
//
// A missing script file leaves the config unchanged. The Lua state is
// restricted to the base, table, string, and math libraries.
func ApplyScript(cfg Config, path string) (Config, error) {
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	L.SetContext(ctx)

	for _, open := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(open.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(open.name)); err != nil {
			return cfg, fmt.Errorf("open lua lib %s: %w", open.name, err)
		}
	}

	editor := L.NewTable()
	L.SetField(editor, "tab_width", lua.LNumber(cfg.TabWidth))
	L.SetField(editor, "default_ext", lua.LString(cfg.DefaultExt))
	L.SetField(editor, "selection_tint", lua.LString(cfg.SelectionTint))
	L.SetField(editor, "show_line_numbers", lua.LBool(cfg.ShowLineNumbers))
	L.SetGlobal("editor", editor)

	if err := L.DoFile(path); err != nil {
		return cfg, fmt.Errorf("%w: script %s: %v", ErrInvalidConfig, path, err)
	}

	out := cfg
	if v, ok := L.GetField(editor, "tab_width").(lua.LNumber); ok {
		out.TabWidth = int(v)
	}
	if v, ok := L.GetField(editor, "default_ext").(lua.LString); ok {
		out.DefaultExt = string(v)
	}
	if v, ok := L.GetField(editor, "selection_tint").(lua.LString); ok {
		out.SelectionTint = string(v)
	}
	if v, ok := L.GetField(editor, "show_line_numbers").(lua.LBool); ok {
		out.ShowLineNumbers = bool(v)
	}

	return out, out.validate(path)
}
