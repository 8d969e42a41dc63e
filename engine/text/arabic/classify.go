package arabic

// Presentation forms of the Arabic Presentation Forms-B block.
const (
	presentationFirst rune = 0xFE70
	presentationLast  rune = 0xFEFE
)

// IsLetter is true for letters of the supported alphabet.
func IsLetter(r rune) bool {
	_, ok := letters[r]
	return ok
}

// IsFinalCapable is true if r connects to the letter preceding it.
// Tatweel connects in both directions.
func IsFinalCapable(r rune) bool {
	if r == Tatweel {
		return true
	}
	return letters[r].CanFinal
}

// IsInitialCapable is true if r connects to the letter following it.
// Tatweel connects in both directions.
func IsInitialCapable(r rune) bool {
	if r == Tatweel {
		return true
	}
	return letters[r].CanInitial
}

// IsolatedForm returns the isolated presentation form of a letter.
// For runes outside the alphabet it returns NotFound and false.
func IsolatedForm(r rune) (rune, bool) {
	if l, ok := letters[r]; ok {
		return l.Isolated, true
	}
	return NotFound, false
}

// IsolatedCodepoint is like IsolatedForm, returning NotFound for runes
// outside the alphabet.
func IsolatedCodepoint(r rune) rune {
	form, _ := IsolatedForm(r)
	return form
}

// IsPresentationForm is true for code-points produced by the shaper, i.e.
// already shaped letters or ligatures.
func IsPresentationForm(r rune) bool {
	if r >= presentationFirst && r <= presentationLast {
		return true
	}
	_, ok := reverse[r]
	return ok
}

// IsDigit is true for ASCII digits.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsSymbol is true for Arabic symbols which are passed through unshaped.
func IsSymbol(r rune) bool {
	return symbols[r]
}

// IsCommon is true for punctuation which takes the direction of its
// neighbors.
func IsCommon(r rune) bool {
	return common[r]
}

// IsTransparent is true for characters which are skipped when looking for
// the letter neighbors of a character: common punctuation, digits and
// Arabic symbols.
func IsTransparent(r rune) bool {
	return common[r] || IsDigit(r) || symbols[r]
}

// IsAlefVariant is true for the letters which fuse with a preceding Lam.
func IsAlefVariant(r rune) bool {
	switch r {
	case Alef, AlefHamza, AlefHamzaLow, AlefMadda:
		return true
	}
	return false
}

// LigatureOf returns the ligature for a pair of letters, if any.
func LigatureOf(first, second rune) (Ligature, bool) {
	for _, lig := range ligatures {
		if lig.First == first && lig.Second == second {
			return lig, true
		}
	}
	return Ligature{}, false
}

// LettersOf returns the logical letters a presentation form stands for.
// Ligatures stand for two letters, Lam followed by an Alef variant.
func LettersOf(form rune) ([]rune, bool) {
	runes, ok := reverse[form]
	if !ok {
		return nil, false
	}
	return append([]rune(nil), runes...), true
}
