package main

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/pterm/pterm"
	"github.com/rtltext/farsitext/engine/text/arabic"
	"github.com/rtltext/farsitext/engine/text/editbuf"
)

// terminalSink renders a surface to the terminal. Terminals apply their own
// bidi algorithm (or none), so the display text is printed as is and the
// caret is placed by the cell width of the glyphs left of it.
type terminalSink struct {
	name    string
	display string
	cursor  editbuf.VisualCursor
}

var _ editbuf.Sink = (*terminalSink)(nil)

func (ts *terminalSink) Replace(display string) {
	ts.display = display
}

// PlaceCursor is the last call for every edit, so it triggers the output.
func (ts *terminalSink) PlaceCursor(vc editbuf.VisualCursor) {
	ts.cursor = vc
	pterm.Println(ts.render())
}

func (ts *terminalSink) render() string {
	var b strings.Builder
	b.WriteString("┌─ " + ts.name + "\n")
	for i, line := range arabic.Lines([]rune(ts.display)) {
		b.WriteString("│ ")
		b.WriteString(string(line))
		b.WriteByte('\n')
		if i == ts.cursor.Line {
			b.WriteString("│ ")
			b.WriteString(caretLine(line, ts.cursor.Steps))
			b.WriteByte('\n')
		}
	}
	b.WriteString("└─ " + ts.cursor.String())
	return b.String()
}

// caretLine puts a caret below the glyph boundary steps glyphs away from
// the end of line.
func caretLine(line []rune, steps int) string {
	n := len(line) - steps
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", columns(line[:n])) + "^"
}

var setupGraphemes sync.Once

// columns returns the number of terminal cells occupied by text.
func columns(text []rune) int {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	splitter := segment.NewSegmenter(grapheme.NewBreaker(1))
	splitter.Init(strings.NewReader(string(text)))
	w := 0
	for splitter.Next() {
		w += uax11.Width(splitter.Bytes(), uax11.LatinContext)
	}
	return w
}
