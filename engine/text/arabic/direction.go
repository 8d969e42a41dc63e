package arabic

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction returns the paragraph direction of a logical text, determined by
// its first strongly directional character (rules P2 and P3 of UAX #9).
// Text without strong characters is reported as bidi.Neutral.
func Direction(logical []rune) bidi.Direction {
	for _, r := range logical {
		if r == '\n' {
			continue
		}
		prop, _ := bidi.LookupRune(r)
		switch prop.Class() {
		case bidi.AL, bidi.R:
			return bidi.RightToLeft
		case bidi.L:
			return bidi.LeftToRight
		}
	}
	return bidi.Neutral
}
