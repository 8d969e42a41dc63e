package arabic

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Shape converts a logical sequence into display order with contextual
// glyph forms. Each line is reversed for right-to-left display, except for
// runs of digits and non-Farsi characters, which keep their reading order.
// Lines themselves are not re-ordered, see FixLineOrder.
func Shape(logical []rune) []rune {
	display, _ := ShapeCount(logical)
	return display
}

// ShapeCount is like Shape, but additionally returns the number of Lam-Alef
// ligatures created. Every ligature consumes two logical characters for one
// glyph.
func ShapeCount(logical []rune) ([]rune, int) {
	acc := newAccumulator()
	fused := 0
	for i := 0; i < len(logical); i++ {
		r := logical[i]
		prev, next := adjacent(logical, i)
		if r == Lam {
			if lig, ok := LigatureOf(r, next); ok {
				glyph := lig.Isolated
				if IsInitialCapable(prev) {
					glyph++
				}
				acc.pushRTL(glyph)
				fused++
				i++ // the Alef is part of the ligature
				continue
			}
		}
		switch {
		case r == '\n' || IsSymbol(r):
			acc.pushRTL(r)
		case IsCommon(r):
			if followsLTR(logical, i) {
				acc.pushLTR(r)
			} else {
				acc.pushRTL(r)
			}
		case !IsLetter(r): // digits and foreign characters
			acc.pushLTR(r)
		default:
			acc.pushRTL(contextualForm(r, prev, next))
		}
	}
	if fused > 0 {
		tracer().Debugf("shaped %d runes with %d Lam-Alef ligatures", len(logical), fused)
	}
	return acc.runes(), fused
}

// contextualForm selects the presentation form of letter r, given its
// logical neighbors.
func contextualForm(r, prev, next rune) rune {
	l := letters[r]
	joinsPrev := IsInitialCapable(prev) && l.CanFinal
	joinsNext := l.CanInitial && IsFinalCapable(next)
	glyph := l.Isolated
	switch {
	case joinsPrev && joinsNext:
		if l.Isolated == yehIsolated {
			glyph += yehMedial
		} else {
			glyph += offsetMedial
		}
	case joinsPrev:
		glyph += offsetFinal
	case joinsNext:
		if l.Isolated == yehIsolated {
			glyph += yehInitial
		} else {
			glyph += offsetInitial
		}
	}
	return glyph
}

// followsLTR decides if a punctuation character at position i belongs to a
// left-to-right run: neither of its letter neighbors is a Farsi letter and
// it does not start a line.
func followsLTR(text []rune, i int) bool {
	prev, _ := previousAlphabet(text, i)
	next, _ := nextAlphabet(text, i)
	return !IsLetter(prev) && !IsLetter(next) && prev != '\n'
}

// adjacent returns the characters immediately before and after position i,
// or 0 at the edges of text.
func adjacent(text []rune, i int) (prev, next rune) {
	if i > 0 {
		prev = text[i-1]
	}
	if i+1 < len(text) {
		next = text[i+1]
	}
	return
}

// previousAlphabet finds the nearest character before position i which is
// not transparent.
func previousAlphabet(text []rune, i int) (rune, bool) {
	for i--; i >= 0; i-- {
		if !IsTransparent(text[i]) {
			return text[i], true
		}
	}
	return 0, false
}

// nextAlphabet finds the nearest character after position i which is not
// transparent.
func nextAlphabet(text []rune, i int) (rune, bool) {
	for i++; i < len(text); i++ {
		if !IsTransparent(text[i]) {
			return text[i], true
		}
	}
	return 0, false
}

// --- Accumulator -----------------------------------------------------------

// accumulator collects display runes. Right-to-left units are put in front,
// left-to-right units are appended to the run of left-to-right units
// currently open at the front.
type accumulator struct {
	glyphs *doublylinkedlist.List
	ltr    int // length of the open left-to-right run at the front
}

func newAccumulator() *accumulator {
	return &accumulator{glyphs: doublylinkedlist.New()}
}

func (acc *accumulator) pushRTL(r rune) {
	acc.glyphs.Prepend(r)
	acc.ltr = 0
}

func (acc *accumulator) pushLTR(r rune) {
	acc.glyphs.Insert(acc.ltr, r)
	acc.ltr++
}

func (acc *accumulator) runes() []rune {
	out := make([]rune, 0, acc.glyphs.Size())
	it := acc.glyphs.Iterator()
	for it.Next() {
		out = append(out, it.Value().(rune))
	}
	return out
}
