package surface

import (
	"strings"
	"unicode/utf8"

	"github.com/rtltext/farsitext/core"
	"github.com/rtltext/farsitext/engine/text/editbuf"
)

// Op is an edit operation.
type Op int

// Edit operations. The zero value is not a valid operation.
const (
	NoOp Op = iota
	InsertChar
	InsertText
	DeleteBackward
	DeleteForward
	MoveLeft
	MoveRight
	LineStart
	LineEnd
	LineUp
	LineDown
)

var opNames = []string{"NoOp", "InsertChar", "InsertText", "DeleteBackward", "DeleteForward",
	"MoveLeft", "MoveRight", "LineStart", "LineEnd", "LineUp", "LineDown"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "Op(?)"
	}
	return opNames[op]
}

// ParseOp finds an operation by name, ignoring case.
func ParseOp(name string) (Op, error) {
	for i, n := range opNames {
		if i > 0 && strings.EqualFold(n, name) {
			return Op(i), nil
		}
	}
	return NoOp, core.Error(core.EINVALID, "unknown edit operation %q", name)
}

// Command is an edit operation together with its argument. Text is used by
// InsertChar and InsertText only.
type Command struct {
	Op   Op
	Text string
}

// Apply executes cmd on buf. Commands which cannot be carried out because
// of the cursor position are no-ops. Invalid commands return an error with
// code core.EINVALID.
func Apply(buf *editbuf.Buffer, cmd Command) error {
	switch cmd.Op {
	case InsertChar:
		r, size := utf8.DecodeRuneInString(cmd.Text)
		if size == 0 || size != len(cmd.Text) || r == utf8.RuneError {
			return core.Error(core.EINVALID, "InsertChar needs exactly one character, have %q", cmd.Text)
		}
		buf.InsertChar(r)
	case InsertText:
		buf.InsertText(cmd.Text)
	case DeleteBackward:
		buf.DeleteBackward()
	case DeleteForward:
		buf.DeleteForward()
	case MoveLeft:
		buf.MoveLeft()
	case MoveRight:
		buf.MoveRight()
	case LineStart:
		buf.MoveToLineStart()
	case LineEnd:
		buf.MoveToLineEnd()
	case LineUp:
		buf.MoveLineUp()
	case LineDown:
		buf.MoveLineDown()
	default:
		return core.Error(core.EINVALID, "cannot apply edit operation %v", cmd.Op)
	}
	tracer().Debugf("applied %v, cursor now at %d", cmd.Op, buf.Cursor())
	return nil
}

// KeyCommand translates a host key event to a command. key is the name of
// the key, text the text typed or pasted. Keys which are not editing keys
// return an error with code core.EINVALID.
//
// Arrow keys move visually: as text runs right to left, the right arrow key
// moves to the previous logical character and the left arrow key to the
// next one.
func KeyCommand(key string, text string) (Command, error) {
	switch key {
	case "BACK_SPACE":
		return Command{Op: DeleteBackward}, nil
	case "DEL":
		return Command{Op: DeleteForward}, nil
	case "HOME":
		return Command{Op: LineStart}, nil
	case "END":
		return Command{Op: LineEnd}, nil
	case "RIGHT_ARROW":
		return Command{Op: MoveLeft}, nil
	case "LEFT_ARROW":
		return Command{Op: MoveRight}, nil
	case "UP_ARROW":
		return Command{Op: LineUp}, nil
	case "DOWN_ARROW":
		return Command{Op: LineDown}, nil
	case "RET":
		return Command{Op: InsertChar, Text: "\n"}, nil
	case "PASTE":
		return Command{Op: InsertText, Text: text}, nil
	}
	if text == "" {
		return Command{}, core.Error(core.EINVALID, "key %s is not an editing key", key)
	}
	if utf8.RuneCountInString(text) == 1 {
		return Command{Op: InsertChar, Text: text}, nil
	}
	return Command{Op: InsertText, Text: text}, nil
}
