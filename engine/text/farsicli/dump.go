package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rtltext/farsitext/engine/text/arabic"
)

func dump(logical, display string) {
	pterm.Info.Println("Logical text")
	pterm.Println(unicoded(logical))
	pterm.Info.Println("Display text")
	data := pterm.TableData{{"#", "code point", "kind", "letters"}}
	for i, r := range []rune(display) {
		data = append(data, []string{fmt.Sprintf("%d", i), fmt.Sprintf("%#U", r),
			kindOf(r), lettersOf(r)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
	pterm.Printfln("HTML: %s", htmlEntities(display))
}

// unicoded lists the code points of s.
func unicoded(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		if r == '\n' {
			parts = append(parts, "⏎")
			continue
		}
		parts = append(parts, fmt.Sprintf("%#U", r))
	}
	return strings.Join(parts, " | ")
}

// htmlEntities encodes every rune of s as a numeric character reference.
func htmlEntities(s string) string {
	var b strings.Builder
	for _, r := range s {
		fmt.Fprintf(&b, "&#x%x;", r)
	}
	return b.String()
}

func kindOf(r rune) string {
	switch {
	case r == '\n':
		return "newline"
	case arabic.IsPresentationForm(r):
		if l, ok := arabic.LettersOf(r); ok && len(l) == 2 {
			return "ligature"
		}
		return "presentation form"
	case arabic.IsLetter(r):
		return "letter"
	case arabic.IsDigit(r):
		return "digit"
	case arabic.IsSymbol(r):
		return "symbol"
	case arabic.IsCommon(r):
		return "punctuation"
	}
	return "foreign"
}

func lettersOf(r rune) string {
	if l, ok := arabic.LettersOf(r); ok {
		return string(l)
	}
	return ""
}
