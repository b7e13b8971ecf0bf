package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/editline/internal/engine/buffer"
)

// DecodeKey translates a tcell key event into an editor buffer command.
// Arrow keys with shift held become selection-extending moves; without
// shift they are plain moves. Returns ok=false for keys the buffer has no
// command for (the caller decides what to do with those, e.g. quit keys).
func DecodeKey(ev *tcell.EventKey) (buffer.Command, bool) {
	shift := ev.Modifiers()&tcell.ModShift != 0

	caretCmd := func(dir buffer.CaretDirection) buffer.Command {
		if shift {
			return buffer.SelectCaretCmd(dir)
		}
		return buffer.MoveCaretCmd(dir)
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return caretCmd(buffer.CaretUp), true
	case tcell.KeyDown:
		return caretCmd(buffer.CaretDown), true
	case tcell.KeyLeft:
		return caretCmd(buffer.CaretLeft), true
	case tcell.KeyRight:
		return caretCmd(buffer.CaretRight), true
	case tcell.KeyEnter:
		return buffer.InsertNewLineCmd(), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return buffer.BackspaceCmd(), true
	case tcell.KeyDelete:
		return buffer.DeleteCmd(), true
	case tcell.KeyEscape:
		return buffer.DeselectCmd(), true
	case tcell.KeyTab:
		return buffer.InsertCharCmd('\t'), true
	case tcell.KeyRune:
		return buffer.InsertCharCmd(ev.Rune()), true
	default:
		return buffer.Command{}, false
	}
}
