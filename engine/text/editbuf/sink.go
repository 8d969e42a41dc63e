package editbuf

// Sink receives the output of a Buffer.
//
// Replace is called with the new display text after every change to the
// text, PlaceCursor after every change and every cursor movement.
type Sink interface {
	Replace(display string)
	PlaceCursor(vc VisualCursor)
}

// Discard is a Sink which ignores all output.
var Discard Sink = discard{}

type discard struct{}

func (discard) Replace(string) {}
func (discard) PlaceCursor(VisualCursor) {}
