/*
Package arabic shapes and visually reorders Farsi/Arabic text for renderers
which only know left-to-right insertion order.

Text is handled in two representations. The logical sequence holds runes in
typing order. The display sequence holds Unicode presentation forms
(isolated, initial, medial, final) and Lam-Alef ligatures, with each line
reversed for right-to-left reading, while runs of digits and Latin text keep
their left-to-right order.

	display := arabic.FixLineOrder(arabic.Shape(logical))
	logical = arabic.Unshape(arabic.FixLineOrder(display))

Shape and Unshape are inverse to each other for all text made up of supported
letters, digits, punctuation and newlines. Characters outside the supported
alphabet pass through unchanged.

This is not an implementation of UAX #9. The set of letters, punctuation and
symbols is fixed and enumerated in this package.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package arabic

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'farsitext.arabic'.
func tracer() tracing.Trace {
	return tracing.Select("farsitext.arabic")
}
