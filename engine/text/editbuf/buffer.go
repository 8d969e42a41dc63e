package editbuf

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/rtltext/farsitext/engine/text/arabic"
	"golang.org/x/text/unicode/norm"
)

// Buffer is an editable text in logical order, with a cursor.
//
// The cursor is an offset into the logical text, 0 ≤ cursor ≤ Len().
// All operations are no-ops if they would move the cursor out of range or
// delete from an empty buffer.
type Buffer struct {
	text    *arraylist.List // logical runes
	cursor  int
	display []rune
	sink    Sink
}

// New creates a buffer for a surface which currently shows display.
// display is expected to be the output of a previous shaping, but may as
// well be plain logical text. The cursor is placed at the end of the text.
//
// If sink is nil, output is discarded.
func New(display string, sink Sink) *Buffer {
	if sink == nil {
		sink = Discard
	}
	buf := &Buffer{
		text: arraylist.New(),
		sink: sink,
	}
	logical := arabic.Unshape(arabic.FixLineOrder([]rune(display)))
	buf.text.Add(runeValues(logical)...)
	buf.cursor = buf.text.Size()
	buf.display = buf.shape()
	tracer().Debugf("new buffer with %d logical runes", buf.cursor)
	buf.sink.PlaceCursor(buf.visualCursor())
	return buf
}

// Len returns the number of logical runes.
func (buf *Buffer) Len() int {
	return buf.text.Size()
}

// Cursor returns the cursor position in the logical text.
func (buf *Buffer) Cursor() int {
	return buf.cursor
}

// Logical returns the text in logical order.
func (buf *Buffer) Logical() string {
	return string(buf.runes())
}

// Display returns the shaped text, as last handed to the sink.
func (buf *Buffer) Display() string {
	return string(buf.display)
}

// VisualCursor returns the cursor position as seen on the display text.
func (buf *Buffer) VisualCursor() VisualCursor {
	return buf.visualCursor()
}

// --- Editing ---------------------------------------------------------------

// InsertChar inserts r at the cursor and advances the cursor.
func (buf *Buffer) InsertChar(r rune) {
	buf.insert([]rune{r})
}

// InsertText inserts s at the cursor and advances the cursor behind it.
// s is normalized to NFC, presentation forms are replaced by the letters
// they stand for.
func (buf *Buffer) InsertText(s string) {
	buf.insert([]rune(norm.NFC.String(s)))
}

func (buf *Buffer) insert(runes []rune) {
	logical := make([]rune, 0, len(runes))
	for _, r := range runes {
		if letters, ok := arabic.LettersOf(r); ok {
			logical = append(logical, letters...)
			continue
		}
		logical = append(logical, r)
	}
	if len(logical) == 0 {
		return
	}
	buf.text.Insert(buf.cursor, runeValues(logical)...)
	buf.cursor += len(logical)
	buf.update()
}

// DeleteBackward removes the rune before the cursor.
func (buf *Buffer) DeleteBackward() {
	if buf.cursor == 0 {
		return
	}
	buf.text.Remove(buf.cursor - 1)
	buf.cursor--
	buf.update()
}

// DeleteForward removes the rune at the cursor.
func (buf *Buffer) DeleteForward() {
	if buf.cursor == buf.text.Size() {
		return
	}
	buf.text.Remove(buf.cursor)
	buf.update()
}

// --- Cursor movement -------------------------------------------------------

// MoveLeft moves the cursor to the previous logical position.
func (buf *Buffer) MoveLeft() {
	buf.moveTo(buf.cursor - 1)
}

// MoveRight moves the cursor to the next logical position.
func (buf *Buffer) MoveRight() {
	buf.moveTo(buf.cursor + 1)
}

// MoveToLineStart moves the cursor to the start of the current line.
func (buf *Buffer) MoveToLineStart() {
	buf.moveTo(buf.lineStart(buf.cursor))
}

// MoveToLineEnd moves the cursor to the end of the current line, in front of
// the line's newline, if any.
func (buf *Buffer) MoveToLineEnd() {
	buf.moveTo(buf.lineEnd(buf.cursor))
}

// MoveLineUp moves the cursor to the previous line, keeping the offset from
// the line start if the previous line is long enough, else to its end.
func (buf *Buffer) MoveLineUp() {
	start := buf.lineStart(buf.cursor)
	if start == 0 {
		return
	}
	offset := buf.cursor - start
	prevEnd := start - 1 // position of the newline
	prevStart := buf.lineStart(prevEnd)
	buf.moveTo(prevStart + min(offset, prevEnd-prevStart))
}

// MoveLineDown moves the cursor to the next line, keeping the offset from
// the line start if the next line is long enough, else to its end.
func (buf *Buffer) MoveLineDown() {
	end := buf.lineEnd(buf.cursor)
	if end == buf.text.Size() {
		return
	}
	offset := buf.cursor - buf.lineStart(buf.cursor)
	nextStart := end + 1
	nextEnd := buf.lineEnd(nextStart)
	buf.moveTo(nextStart + min(offset, nextEnd-nextStart))
}

func (buf *Buffer) moveTo(pos int) {
	if pos < 0 || pos > buf.text.Size() || pos == buf.cursor {
		return
	}
	buf.cursor = pos
	buf.sink.PlaceCursor(buf.visualCursor())
}

// --- Helpers ---------------------------------------------------------------

// update reshapes the text and pushes it to the sink.
func (buf *Buffer) update() {
	buf.display = buf.shape()
	vc := buf.visualCursor()
	tracer().Debugf("buffer has %d runes, cursor at %d = %v", buf.text.Size(), buf.cursor, vc)
	buf.sink.Replace(string(buf.display))
	buf.sink.PlaceCursor(vc)
}

func (buf *Buffer) shape() []rune {
	return arabic.FixLineOrder(arabic.Shape(buf.runes()))
}

func (buf *Buffer) runes() []rune {
	runes := make([]rune, 0, buf.text.Size())
	it := buf.text.Iterator()
	for it.Next() {
		runes = append(runes, it.Value().(rune))
	}
	return runes
}

func (buf *Buffer) at(i int) rune {
	v, ok := buf.text.Get(i)
	if !ok {
		return 0
	}
	return v.(rune)
}

// lineStart returns the position following the newline before pos, or 0.
func (buf *Buffer) lineStart(pos int) int {
	for pos > 0 && buf.at(pos-1) != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the position of the newline at or after pos, or the end
// of the text.
func (buf *Buffer) lineEnd(pos int) int {
	for pos < buf.text.Size() && buf.at(pos) != '\n' {
		pos++
	}
	return pos
}

func runeValues(runes []rune) []interface{} {
	values := make([]interface{}, len(runes))
	for i, r := range runes {
		values[i] = r
	}
	return values
}
