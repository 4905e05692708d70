package str

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-hooray/arr"
)

// DefaultToken is the placeholder [Pluralize] replaces with the amount.
const DefaultToken = "$"

var (
	singlePlural   = regexp.MustCompile(`\(([^|]+?)\)`)
	singleSingular = regexp.MustCompile(`\{([^|]+?)\}`)
	listOrdinal    = regexp.MustCompile(`\(([^|]*?(?:\|[^|]*?)+)\)`)
	listCardinal   = regexp.MustCompile(`\{([^|]*?(?:\|[^|]*?)+)\}`)
)

// Pluralize renders the bracket markup in text for amount and then replaces
// every occurrence of token (default [DefaultToken]) with the decimal amount.
// See the package documentation for the rules.
//
//	Pluralize("$ item(s) need{s}", 1)  // "1 item needs"
//	Pluralize("(1st|2nd|3rd|$th)", 4)  // "4th"
//	Pluralize("{zero|one|more}", 9)    // "more"
//
// The passes run in a fixed order: single-span (), single-span {}, list (),
// list {}, token. Tokens inside brackets are substituted only after every
// bracket has been resolved.
func Pluralize(text string, amount int, token ...string) string {
	if text == "" {
		return ""
	}

	text = Replace(text, singlePlural, Func(func(m []string) string {
		if amount == 1 {
			return ""
		}
		return m[1]
	}), -1)

	text = Replace(text, singleSingular, Func(func(m []string) string {
		if amount == 1 {
			return m[1]
		}
		return ""
	}), -1)

	// zero selects the catch-all; 1..n select the list 1-based
	text = Replace(text, listOrdinal, Func(func(m []string) string {
		parts := strings.Split(m[1], "|")
		last := arr.Pop(&parts)
		if amount == 0 {
			return last
		}
		return arr.At(parts, amount-1, last)
	}), -1)

	text = Replace(text, listCardinal, Func(func(m []string) string {
		parts := strings.Split(m[1], "|")
		last := arr.Pop(&parts)
		return arr.At(parts, amount, last)
	}), -1)

	search := DefaultToken
	if len(token) > 0 {
		search = token[0]
	}
	if search == "" {
		return text
	}
	return strings.ReplaceAll(text, search, strconv.Itoa(amount))
}
