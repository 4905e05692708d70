package str_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-hooray/str"
)

func TestPluralize(t *testing.T) {
	cases := []struct {
		text   string
		amount int
		want   string
	}{
		{"", 0, ""},
		{"", 5, ""},
		{"$", 123, "123"},
		{"$$", 123, "123123"},

		{"$ item(s) need{s}", 0, "0 items need"},
		{"$ item(s) need{s}", 1, "1 item needs"},
		{"$ item(s) need{s}", 2, "2 items need"},

		{"(1st|2nd|3rd|$th)", 0, "0th"},
		{"(1st|2nd|3rd|$th)", 1, "1st"},
		{"(1st|2nd|3rd|$th)", 2, "2nd"},
		{"(1st|2nd|3rd|$th)", 3, "3rd"},
		{"(1st|2nd|3rd|$th)", 4, "4th"},
		{"(1st|2nd|3rd|$th)", 5, "5th"},

		{"{zero|one|two|three|more}", 0, "zero"},
		{"{zero|one|two|three|more}", 1, "one"},
		{"{zero|one|two|three|more}", 2, "two"},
		{"{zero|one|two|three|more}", 3, "three"},
		{"{zero|one|two|three|more}", 4, "more"},
		{"{zero|one|two|three|more}", 5, "more"},

		{"{No|One|$} quer(y|ies) (is|are)", 0, "No queries are"},
		{"{No|One|$} quer(y|ies) (is|are)", 1, "One query is"},
		{"{No|One|$} quer(y|ies) (is|are)", 2, "2 queries are"},
		{"{No|One|$} quer(y|ies) (is|are)", 3, "3 queries are"},

		{"-{zero|||}-{|one||}-{||two|}-{|||three}-", 0, "-zero----"},
		{"-{zero|||}-{|one||}-{||two|}-{|||three}-", 1, "--one---"},
		{"-{zero|||}-{|one||}-{||two|}-{|||three}-", 2, "---two--"},
		{"-{zero|||}-{|one||}-{||two|}-{|||three}-", 3, "----three-"},
		{"-{zero|||}-{|one||}-{||two|}-{|||three}-", 4, "----three-"},
	}
	for _, tc := range cases {
		if got := str.Pluralize(tc.text, tc.amount); got != tc.want {
			t.Errorf("Pluralize(%q, %d) = %q; want %q", tc.text, tc.amount, got, tc.want)
		}
	}
}

func TestPluralize_SingleSpans(t *testing.T) {
	for _, n := range []int{-7, -1, 0, 2, 3, 100} {
		if got := str.Pluralize("(x)", n); got != "x" {
			t.Errorf("Pluralize((x), %d) = %q; want x", n, got)
		}
		if got := str.Pluralize("{x}", n); got != "" {
			t.Errorf("Pluralize({x}, %d) = %q; want empty", n, got)
		}
	}
	if got := str.Pluralize("(x)", 1); got != "" {
		t.Errorf("Pluralize((x), 1) = %q; want empty", got)
	}
	if got := str.Pluralize("{x}", 1); got != "x" {
		t.Errorf("Pluralize({x}, 1) = %q; want x", got)
	}
}

func TestPluralize_Lists(t *testing.T) {
	ordinal := map[int]string{-3: "c", 0: "c", 1: "a", 2: "b", 3: "c", 5: "c"}
	for n, want := range ordinal {
		if got := str.Pluralize("(a|b|c)", n); got != want {
			t.Errorf("Pluralize((a|b|c), %d) = %q; want %q", n, got, want)
		}
	}
	cardinal := map[int]string{-1: "c", 0: "a", 1: "b", 2: "c", 5: "c"}
	for n, want := range cardinal {
		if got := str.Pluralize("{a|b|c}", n); got != want {
			t.Errorf("Pluralize({a|b|c}, %d) = %q; want %q", n, got, want)
		}
	}
}

func TestPluralize_Identity(t *testing.T) {
	texts := []string{"plain text", "no markup here, just words.", "ümlaut ☃", "a|b"}
	for _, text := range texts {
		for _, n := range []int{-1, 0, 1, 2, 42} {
			if got := str.Pluralize(text, n); got != text {
				t.Errorf("Pluralize(%q, %d) = %q; want unchanged", text, n, got)
			}
		}
	}
}

func TestPluralize_TokenOnly(t *testing.T) {
	for _, n := range []int{-12, -1, 0, 1, 7, 1 << 20} {
		if got := str.Pluralize("$", n); got != strconv.Itoa(n) {
			t.Errorf("Pluralize($, %d) = %q", n, got)
		}
	}
}

func TestPluralize_MalformedMarkupPassesThrough(t *testing.T) {
	cases := []string{"quer(y|ies", "quer(y", "{No|One", "only)", "()", "{}", "(|", "}{"}
	for _, text := range cases {
		if got := str.Pluralize(text, 2); got != text {
			t.Errorf("Pluralize(%q, 2) = %q; want unchanged", text, got)
		}
	}
}

func TestPluralize_CustomToken(t *testing.T) {
	if got := str.Pluralize("# file(s) cost $#", 3, "#"); got != "3 files cost $3" {
		t.Fatalf("custom token = %q", got)
	}
	if got := str.Pluralize("$ file(s)", 3, ""); got != "$ files" {
		t.Fatalf("empty token = %q; want no substitution", got)
	}
}

func TestPluralize_TokenResolvedAfterBrackets(t *testing.T) {
	// With amount 1 the single-span {…} keeps its body, so the token must
	// still be literal when the brackets are resolved.
	if got := str.Pluralize("{$} (x|y|$)", 1); got != "1 x" {
		t.Fatalf("got %q; want %q", got, "1 x")
	}
}
