package buffer

import "fmt"

// CommandKind identifies an editor buffer command.
type CommandKind int

const (
	// CmdInsertChar inserts a single character at the caret.
	CmdInsertChar CommandKind = iota
	// CmdInsertString inserts a string at the caret.
	CmdInsertString
	// CmdInsertNewLine splits the current line at the caret.
	CmdInsertNewLine
	// CmdDelete removes the segment at the caret (forward delete).
	CmdDelete
	// CmdBackspace removes the segment left of the caret.
	CmdBackspace
	// CmdMoveCaret moves the caret and clears the selection.
	CmdMoveCaret
	// CmdSelectCaret moves the caret extending the selection (shift held).
	CmdSelectCaret
	// CmdDeselect clears the selection map.
	CmdDeselect
)

// Command is one editor buffer command, produced by the input collaborator
// and consumed one at a time or as an ordered batch.
type Command struct {
	Kind CommandKind
	Rune rune           // CmdInsertChar
	Text string         // CmdInsertString
	Dir  CaretDirection // CmdMoveCaret, CmdSelectCaret
}

// InsertCharCmd creates a command inserting a single character.
func InsertCharCmd(r rune) Command {
	return Command{Kind: CmdInsertChar, Rune: r}
}

// InsertStringCmd creates a command inserting a string.
func InsertStringCmd(text string) Command {
	return Command{Kind: CmdInsertString, Text: text}
}

// InsertNewLineCmd creates a command splitting the current line.
func InsertNewLineCmd() Command {
	return Command{Kind: CmdInsertNewLine}
}

// DeleteCmd creates a forward-delete command.
func DeleteCmd() Command {
	return Command{Kind: CmdDelete}
}

// BackspaceCmd creates a backspace command.
func BackspaceCmd() Command {
	return Command{Kind: CmdBackspace}
}

// MoveCaretCmd creates a plain caret movement command.
func MoveCaretCmd(dir CaretDirection) Command {
	return Command{Kind: CmdMoveCaret, Dir: dir}
}

// SelectCaretCmd creates a selection-extending caret movement command.
func SelectCaretCmd(dir CaretDirection) Command {
	return Command{Kind: CmdSelectCaret, Dir: dir}
}

// DeselectCmd creates a command clearing the selection map.
func DeselectCmd() Command {
	return Command{Kind: CmdDeselect}
}

// String returns a human-readable representation of the command.
func (c Command) String() string {
	switch c.Kind {
	case CmdInsertChar:
		return fmt.Sprintf("InsertChar(%q)", c.Rune)
	case CmdInsertString:
		return fmt.Sprintf("InsertString(%q)", c.Text)
	case CmdInsertNewLine:
		return "InsertNewLine"
	case CmdDelete:
		return "Delete"
	case CmdBackspace:
		return "Backspace"
	case CmdMoveCaret:
		return fmt.Sprintf("MoveCaret(%s)", c.Dir)
	case CmdSelectCaret:
		return fmt.Sprintf("SelectCaret(%s)", c.Dir)
	case CmdDeselect:
		return "Deselect"
	default:
		return "Unknown"
	}
}

// ApplyCommand applies one command, fully reconciling caret, line, and
// selection state before returning. A plain caret move clears the selection
// map; a selection-extending move reconciles it against the movement.
func (b *EditorBuffer) ApplyCommand(cmd Command) {
	switch cmd.Kind {
	case CmdInsertChar:
		b.InsertChar(cmd.Rune)
	case CmdInsertString:
		b.InsertString(cmd.Text)
	case CmdInsertNewLine:
		b.InsertNewLine()
	case CmdDelete:
		b.Delete()
	case CmdBackspace:
		b.Backspace()
	case CmdMoveCaret:
		b.MoveCaret(cmd.Dir)
		b.sel.Clear()
	case CmdSelectCaret:
		b.SelectCaret(cmd.Dir)
	case CmdDeselect:
		b.sel.Clear()
	}
}

// ApplyCommands applies commands in order, each fully reconciled before the
// next is applied.
func (b *EditorBuffer) ApplyCommands(cmds []Command) {
	for _, cmd := range cmds {
		b.ApplyCommand(cmd)
	}
}
