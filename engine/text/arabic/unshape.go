package arabic

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Unshape recovers the logical sequence from the output of Shape.
// Presentation forms are mapped back to their letters, ligatures are
// expanded to Lam and Alef. Runes without a presentation form entry pass
// through unchanged.
//
// Shape keeps runs of digits and non-Farsi characters in reading order;
// Unshape finds these runs again by applying the same neighbor rules and
// restores their logical order.
func Unshape(display []rune) []rune {
	units := doublylinkedlist.New()
	for _, r := range display {
		if forms, ok := reverse[r]; ok {
			units.Prepend(runesToValues(forms)...)
			continue
		}
		if r >= presentationFirst && r <= presentationLast {
			tracer().Errorf("no logical letter for presentation form %#U", r)
		}
		units.Prepend(r)
	}
	logical := make([]rune, 0, units.Size())
	it := units.Iterator()
	for it.Next() {
		logical = append(logical, it.Value().(rune))
	}
	restoreRuns(logical)
	return logical
}

func runesToValues(runes []rune) []interface{} {
	values := make([]interface{}, len(runes))
	for i, r := range runes {
		values[i] = r
	}
	return values
}

// Context classes of a run, as seen by Shape's neighbor lookup.
const (
	edgeNone    = iota // start or end of text
	edgeNewline        // start of a line other than the first one
	edgeFarsi
	edgeForeign
)

// restoreRuns is called on text which is in logical order, except for the
// left-to-right runs created by Shape. These are still reversed.
// All runs are found and flipped, line by line.
func restoreRuns(text []rune) {
	start, lineno := 0, 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			restoreLineRuns(text[start:i], lineno)
			start = i + 1
			lineno++
		}
	}
}

// restoreLineRuns handles a single line. It looks at every region of
// characters which are neither letters nor symbols. Inside a region,
// digits and foreign characters always run left to right, punctuation
// only if none of its letter neighbors is Farsi.
func restoreLineRuns(line []rune, lineno int) {
	for a := 0; a < len(line); {
		if isRTLUnit(line[a]) {
			a++
			continue
		}
		b := a
		for b < len(line) && !isRTLUnit(line[b]) {
			b++
		}
		restoreRegion(line, a, b, lineno)
		a = b
	}
}

func isRTLUnit(r rune) bool {
	return IsLetter(r) || IsSymbol(r)
}

func restoreRegion(line []rune, a, b int, lineno int) {
	left, right := edgeNone, edgeNone
	if lineno > 0 {
		left = edgeNewline
	}
	for i := a - 1; i >= 0; i-- {
		if !IsTransparent(line[i]) {
			left = classOf(line[i])
			break
		}
	}
	for i := b; i < len(line); i++ {
		if !IsTransparent(line[i]) {
			right = classOf(line[i])
			break
		}
	}
	leadLTR := left == edgeNone || left == edgeForeign
	trailLTR := right != edgeFarsi
	firstForeign, lastForeign := -1, -1
	for i := a; i < b; i++ {
		if !IsTransparent(line[i]) {
			if firstForeign < 0 {
				firstForeign = i
			}
			lastForeign = i
		}
	}
	if leadLTR && trailLTR {
		reverseRunes(line[a:b])
		return
	}
	if firstForeign < 0 { // only punctuation and digits
		reverseDigitRuns(line[a:b])
		return
	}
	// The run of foreign characters extends to punctuation next to it if the
	// far side is left to right as well. Where the boundary is ambiguous, it
	// is placed at the last space in front of the run.
	s, e := a, b
	if !leadLTR {
		if trailLTR {
			s = leadBoundary(line, a, firstForeign)
		} else {
			for i := firstForeign - 1; i >= a; i-- {
				if IsCommon(line[i]) {
					s = i + 1
					break
				}
			}
		}
	}
	if !trailLTR {
		for i := lastForeign + 1; i < b; i++ {
			if IsCommon(line[i]) {
				e = i
				break
			}
		}
	}
	reverseDigitRuns(line[a:s])
	reverseRunes(line[s:e])
	reverseDigitRuns(line[e:b])
}

func leadBoundary(line []rune, a, first int) int {
	for i := first - 1; i >= a; i-- {
		if line[i] == ' ' {
			return i + 1
		}
	}
	for i := a; i < first; i++ {
		if IsCommon(line[i]) {
			return i + 1
		}
	}
	return a
}

func classOf(r rune) int {
	if IsLetter(r) {
		return edgeFarsi
	}
	return edgeForeign
}

func reverseDigitRuns(text []rune) {
	for i := 0; i < len(text); {
		if !IsDigit(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && IsDigit(text[j]) {
			j++
		}
		reverseRunes(text[i:j])
		i = j
	}
}

func reverseRunes(r []rune) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}
