package arabic

// NotFound is returned by lookups for runes outside the supported alphabet.
const NotFound rune = -1

// Offsets of contextual forms relative to a letter's isolated form.
const (
	offsetFinal   = 1
	offsetInitial = 2
	offsetMedial  = 3
)

// Letters used by the shaper by name.
const (
	Lam          rune = 'ل'
	Alef         rune = 'ا'
	AlefHamza    rune = 'أ'
	AlefHamzaLow rune = 'إ'
	AlefMadda    rune = 'آ'
	FarsiYeh     rune = 'ی'
	Tatweel      rune = 'ـ'
)

// yehIsolated is the isolated form of Farsi Yeh as laid out in the fonts we
// target. Its initial and medial forms do not follow the uniform offsets,
// see yehInitial and yehMedial.
const (
	yehIsolated rune = 0xFEEF
	yehInitial       = 4
	yehMedial        = 5
)

// Letter describes a letter of the supported alphabet.
type Letter struct {
	Isolated   rune // isolated presentation form
	CanFinal   bool // letter connects to the letter preceding it
	CanInitial bool // letter connects to the letter following it
}

// Forms returns the presentation forms a letter may be shaped to, in order
// isolated, final, initial, medial. Letters which cannot connect to a
// following letter have only two forms.
func (l Letter) Forms() []rune {
	if !l.CanInitial {
		if !l.CanFinal {
			return []rune{l.Isolated}
		}
		return []rune{l.Isolated, l.Isolated + offsetFinal}
	}
	if l.Isolated == yehIsolated {
		return []rune{l.Isolated, l.Isolated + offsetFinal,
			l.Isolated + yehInitial, l.Isolated + yehMedial}
	}
	return []rune{l.Isolated, l.Isolated + offsetFinal,
		l.Isolated + offsetInitial, l.Isolated + offsetMedial}
}

// letters is the glyph table. It is never modified after package
// initialization and safe for concurrent reads.
var letters = map[rune]Letter{
	'ا': {0xFE8D, true, false},
	'أ': {0xFE83, true, false},
	'إ': {0xFE87, true, false},
	'آ': {0xFE81, true, false},
	'ء': {0xFE80, false, false},
	'ب': {0xFE8F, true, true},
	'پ': {0xFB56, true, true},
	'ت': {0xFE95, true, true},
	'ث': {0xFE99, true, true},
	'ج': {0xFE9D, true, true},
	'چ': {0xFB7A, true, true},
	'ح': {0xFEA1, true, true},
	'خ': {0xFEA5, true, true},
	'د': {0xFEA9, true, false},
	'ذ': {0xFEAB, true, false},
	'ر': {0xFEAD, true, false},
	'ز': {0xFEAF, true, false},
	'ژ': {0xFB8A, true, false},
	'س': {0xFEB1, true, true},
	'ش': {0xFEB5, true, true},
	'ص': {0xFEB9, true, true},
	'ض': {0xFEBD, true, true},
	'ط': {0xFEC1, true, true},
	'ظ': {0xFEC5, true, true},
	'ع': {0xFEC9, true, true},
	'غ': {0xFECD, true, true},
	'ف': {0xFED1, true, true},
	'ق': {0xFED5, true, true},
	'ك': {0xFED9, true, true},
	'ک': {0xFB8E, true, true},
	'گ': {0xFB92, true, true},
	'ل': {0xFEDD, true, true},
	'م': {0xFEE1, true, true},
	'ن': {0xFEE5, true, true},
	'ه': {0xFEE9, true, true},
	'ة': {0xFE93, true, false},
	'و': {0xFEED, true, false},
	'ؤ': {0xFE85, true, false},
	'ي': {0xFEF1, true, true},
	'ی': {0xFEEF, true, true},
	'ئ': {0xFE89, true, true},
}

// Ligature is a two-letter sequence rendered as a single glyph.
type Ligature struct {
	First, Second rune
	Isolated      rune // isolated form; Isolated+1 is the connected form
}

// ligatures is the closed set of Lam-Alef ligatures.
var ligatures = []Ligature{
	{Lam, Alef, 0xFEFB},
	{Lam, AlefHamza, 0xFEF7},
	{Lam, AlefHamzaLow, 0xFEF9},
	{Lam, AlefMadda, 0xFEF5},
}

// Arabic symbols are never shaped and always run right to left.
var symbols = map[rune]bool{
	'ـ': true, '،': true, '؟': true, '×': true, '÷': true,
}

// Common characters follow the direction of the surrounding text.
var common = map[rune]bool{
	' ': true, '.': true, ',': true, ':': true, '|': true, '(': true, ')': true,
	'[': true, ']': true, '{': true, '}': true, '!': true, '+': true, '-': true,
	'*': true, '/': true, '\\': true, '%': true, '"': true, '\'': true,
	'>': true, '<': true, '=': true, '~': true, '_': true,
}

// reverse maps every presentation form the shaper may emit to the logical
// letters it stands for.
var reverse map[rune][]rune

func init() {
	reverse = make(map[rune][]rune, 4*len(letters)+2*len(ligatures))
	for r, l := range letters {
		for _, form := range l.Forms() {
			reverse[form] = []rune{r}
		}
	}
	// Farsi Yeh shares its initial and medial glyphs with Arabic Yeh.
	// Text is Farsi first, so shared forms read back as Farsi Yeh.
	for _, form := range letters[FarsiYeh].Forms() {
		reverse[form] = []rune{FarsiYeh}
	}
	for _, lig := range ligatures {
		reverse[lig.Isolated] = []rune{lig.First, lig.Second}
		reverse[lig.Isolated+1] = []rune{lig.First, lig.Second}
	}
}
