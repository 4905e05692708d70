package str

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers are stateful, so a fresh one is created for each call.

// Upper converts s to upper case using full Unicode case mapping and reports
// whether anything changed.
func Upper(s string) (string, bool) {
	out := cases.Upper(language.Und).String(s)
	return out, out != s
}

// Lower converts s to lower case using full Unicode case mapping and reports
// whether anything changed.
func Lower(s string) (string, bool) {
	out := cases.Lower(language.Und).String(s)
	return out, out != s
}

// Foldable reports whether at least one letter of s has a distinct upper or
// lower case form.
func Foldable(s string) bool {
	lower, _ := Lower(s)
	upper, _ := Upper(s)
	return lower != upper
}

// FoldEqual reports whether a and b are equal regardless of case.
func FoldEqual(a, b string) bool {
	la, _ := Lower(a)
	lb, _ := Lower(b)
	if la == lb {
		return true
	}
	ua, _ := Upper(a)
	ub, _ := Upper(b)
	return ua == ub
}

// Tr replaces every rune of s found in from with the rune at the same
// position in to, and reports whether anything changed. Runes of from past
// the length of to are left alone.
//
//	Tr("aaabbbcccddd", "bd", "ef") // "aaaeeecccfff", true
func Tr(s, from, to string) (string, bool) {
	f, t := []rune(from), []rune(to)
	if len(t) < len(f) {
		f = f[:len(t)]
	}
	table := make(map[rune]rune, len(f))
	for i, r := range f {
		table[r] = t[i]
	}
	out := strings.Map(func(r rune) rune {
		if repl, ok := table[r]; ok {
			return repl
		}
		return r
	}, s)
	return out, out != s
}
