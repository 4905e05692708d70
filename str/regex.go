package str

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Replacement is what [Replace] substitutes for each match: either a
// [Literal] template or a [Func] callback.
type Replacement interface {
	expand(re *regexp.Regexp, subject string, loc []int) string
}

// Literal is a replacement template. $1, ${1} and ${name} refer to capture
// groups as in [regexp.Regexp.Expand].
type Literal string

func (l Literal) expand(re *regexp.Regexp, subject string, loc []int) string {
	return string(re.ExpandString(nil, string(l), subject, loc))
}

// Func computes the replacement from the match. match[0] is the whole match,
// match[i] the i-th capture group ("" when the group did not participate).
type Func func(match []string) string

func (f Func) expand(_ *regexp.Regexp, subject string, loc []int) string {
	return f(submatches(subject, loc))
}

// submatches converts a FindStringSubmatchIndex result into strings.
func submatches(subject string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		if start := loc[2*i]; start >= 0 {
			out[i] = subject[start:loc[2*i+1]]
		}
	}
	return out
}

// Match returns the first match of re in subject at or after byte offset,
// or nil when there is none. Anchors such as ^ refer to the remaining input.
//
//	if m := str.Match("Hello!", regexp.MustCompile(`H(a|e)llo`), 0); m != nil {
//	    // m == ["Hello", "e"]
//	}
func Match(subject string, re *regexp.Regexp, offset int) []string {
	if offset < 0 || offset > len(subject) {
		return nil
	}
	loc := re.FindStringSubmatchIndex(subject[offset:])
	if loc == nil {
		return nil
	}
	return submatches(subject[offset:], loc)
}

// MatchAll returns every non-overlapping match of re in subject, or nil.
func MatchAll(subject string, re *regexp.Regexp) [][]string {
	return re.FindAllStringSubmatch(subject, -1)
}

// FullMatch compiles expr anchored at both ends and matches it against the
// whole subject. It returns nil, nil when the subject does not match and
// [ErrInvalidPattern] when expr does not compile.
func FullMatch(subject, expr string) ([]string, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re.FindStringSubmatch(subject), nil
}

// Replace substitutes the first limit matches of re in subject (all matches
// when limit < 0) and returns the result.
func Replace(subject string, re *regexp.Regexp, repl Replacement, limit int) string {
	locs := re.FindAllStringSubmatchIndex(subject, limit)
	if len(locs) == 0 {
		return subject
	}
	var b strings.Builder
	b.Grow(len(subject))
	last := 0
	for _, loc := range locs {
		b.WriteString(subject[last:loc[0]])
		b.WriteString(repl.expand(re, subject, loc))
		last = loc[1]
	}
	b.WriteString(subject[last:])
	return b.String()
}

// Remove deletes the first limit matches of re (all when limit < 0).
func Remove(subject string, re *regexp.Regexp, limit int) string {
	return Replace(subject, re, Literal(""), limit)
}

// Loop calls fn for each successive match of re in subject, resuming the
// search right after the previous match.
//
//	str.Loop("-abc-def", regexp.MustCompile(`-(\w+)`), func(m []string) {
//	    fmt.Println(m[1]) // abc, then def
//	})
func Loop(subject string, re *regexp.Regexp, fn func(match []string)) {
	for offset := 0; offset <= len(subject); {
		rest := subject[offset:]
		loc := re.FindStringSubmatchIndex(rest)
		if loc == nil {
			return
		}
		fn(submatches(rest, loc))
		advance := loc[1]
		if loc[1] == loc[0] {
			if loc[1] == len(rest) {
				return
			}
			_, size := utf8.DecodeRuneInString(rest[loc[1]:])
			advance += size
		}
		offset += advance
	}
}
