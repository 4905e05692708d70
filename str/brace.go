package str

import (
	"fmt"
	"strings"
)

// Surround wraps the body of every {…} group in s with left and right.
// \{ and \} are literal braces, both inside and outside a group; an
// unterminated { is kept as is.
//
//	Surround("Hello {World}!", "<", ">")       // "Hello <World>!"
//	Surround(`Hello {\{World}\}!`, "<", ">")   // "Hello <{World>}!"
func Surround(s, left, right string) string {
	return expandBraces(s, func(body string) string {
		return left + body + right
	})
}

// Enbrace formats every {key|text} group in s with formats[key], which must
// contain a single %s verb for text. Groups without a key or with an unknown
// key are replaced by their bare text.
//
//	Enbrace("{b|Hello} {i|World}!", map[string]string{"b": "<b>%s</b>", "i": "<i>%s</i>"})
//	// "<b>Hello</b> <i>World</i>!"
func Enbrace(s string, formats map[string]string) string {
	return expandBraces(s, func(body string) string {
		key, text, ok := strings.Cut(body, "|")
		if !ok {
			return body
		}
		format, ok := formats[key]
		if !ok {
			return text
		}
		return fmt.Sprintf(format, text)
	})
}

func expandBraces(s string, fn func(body string) string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch {
		case isEscapedBrace(s, i):
			b.WriteByte(s[i+1])
			i += 2
		case s[i] == '{':
			body, n, ok := scanBrace(s[i+1:])
			if !ok {
				b.WriteByte('{')
				i++
				continue
			}
			b.WriteString(fn(body))
			i += 1 + n
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// scanBrace reads a group body up to the first unescaped }. It returns the
// unescaped body and the number of bytes consumed including the }.
func scanBrace(s string) (string, int, bool) {
	var body strings.Builder
	for j := 0; j < len(s); {
		switch {
		case isEscapedBrace(s, j):
			body.WriteByte(s[j+1])
			j += 2
		case s[j] == '}':
			return body.String(), j + 1, true
		default:
			body.WriteByte(s[j])
			j++
		}
	}
	return "", 0, false
}

func isEscapedBrace(s string, i int) bool {
	return s[i] == '\\' && i+1 < len(s) && (s[i+1] == '{' || s[i+1] == '}')
}
