/*
Package editbuf implements an editable buffer for Farsi/Arabic text on
surfaces which render strictly left to right.

A Buffer keeps the text in logical order, i.e. in the order it has been typed,
together with a cursor position. After every change the shaped display text
is handed to a Sink, followed by the cursor position in terms the renderer
understands: a line and a number of single glyph steps backwards from the end
of that line.

	buf := editbuf.New(shownText, sink)
	buf.InsertText("سلام")
	buf.MoveLineUp()

A Buffer is not safe for concurrent use. Every editable surface is expected to
own a Buffer of its own.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package editbuf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'farsitext.editbuf'.
func tracer() tracing.Trace {
	return tracing.Select("farsitext.editbuf")
}
