package editbuf

import (
	"fmt"

	"github.com/rtltext/farsitext/engine/text/arabic"
)

// VisualCursor is a cursor position on the rendered text. Renderers are not
// expected to position a cursor directly. They move it to the end of line
// Line and from there Steps single glyphs backwards.
type VisualCursor struct {
	Line  int // line index, starting at 0
	Steps int // glyph steps backwards from the end of the line
}

func (vc VisualCursor) String() string {
	return fmt.Sprintf("[line %d, %d steps]", vc.Line, vc.Steps)
}

// Offset converts vc into an offset counted in runes from the start of
// display. Positions outside of display are clamped.
func (vc VisualCursor) Offset(display string) int {
	lines := arabic.Lines([]rune(display))
	line := vc.Line
	if line >= len(lines) {
		line = len(lines) - 1
	}
	offset := 0
	for _, l := range lines[:line] {
		offset += len(l) + 1
	}
	if vc.Steps < len(lines[line]) {
		offset += len(lines[line]) - vc.Steps
	}
	return offset
}

// visualCursor derives the visual cursor for a logical cursor position.
// Every logical character between the start of the line and the cursor is
// one glyph, except for an Alef fused into a Lam-Alef ligature.
func (buf *Buffer) visualCursor() VisualCursor {
	start := buf.lineStart(buf.cursor)
	vc := VisualCursor{}
	for i := 0; i < start; i++ {
		if buf.at(i) == '\n' {
			vc.Line++
		}
	}
	for i := start; i < buf.cursor; i++ {
		if i > 0 && arabic.IsAlefVariant(buf.at(i)) && buf.at(i-1) == arabic.Lam {
			continue
		}
		vc.Steps++
	}
	return vc
}
