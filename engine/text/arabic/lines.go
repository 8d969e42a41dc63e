package arabic

// FixLineOrder reverses the order of lines in seq, leaving the content of
// each line untouched.
//
// Shape reverses a text as a single stream of characters, leaving the last
// line first. FixLineOrder puts the lines back in top to bottom order.
// Applying it twice yields the original sequence, therefore it is used in
// both directions: after shaping and before unshaping.
func FixLineOrder(seq []rune) []rune {
	out := make([]rune, 0, len(seq))
	end := len(seq)
	for i := len(seq) - 1; i >= 0; i-- {
		if seq[i] == '\n' {
			out = append(out, seq[i+1:end]...)
			out = append(out, '\n')
			end = i
		}
	}
	return append(out, seq[:end]...)
}

// Lines splits seq at newlines. The result always has at least one line.
func Lines(seq []rune) [][]rune {
	lines := make([][]rune, 0, 1)
	start := 0
	for i, r := range seq {
		if r == '\n' {
			lines = append(lines, seq[start:i])
			start = i + 1
		}
	}
	return append(lines, seq[start:])
}
