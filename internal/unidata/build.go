package unidata

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Build scans the official name table once and assembles the
// process-wide catalog. Unassigned codepoints and <label> pseudo-names
// (controls, surrogates, private use) are skipped. Marks in the Mn and
// Me categories are flagged combining so the renderer can pair them
// with an accent base. The version label is the Unicode version the
// binary was built against.
func Build() *Catalog {
	chars := make([]Char, 0, 1<<17)
	for r := rune(0); r <= MaxRune; r++ {
		name := runenames.Name(r)
		if name == "" || strings.HasPrefix(name, "<") {
			continue
		}
		chars = append(chars, Char{
			Rune:      r,
			Name:      name,
			Combining: unicode.In(r, unicode.Mn, unicode.Me),
		})
	}
	return New(unicode.Version, chars)
}
