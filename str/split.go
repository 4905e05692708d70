package str

import "github.com/hasbyte1/go-hooray/arr"

// Split splits path by its first rune:
//
//	Split("/foo/bar")         // → ["foo", "bar"]
//	Split(".foo.bar")         // → ["foo", "bar"]
//	Split("/foo.bar/bar#foo") // → ["foo.bar", "bar#foo"]
//	Split("")                 // → nil
func Split(path string) []string {
	return arr.SplitPath(path, -1)
}

// SplitN is like [Split] but returns at most n segments, the last one holding
// the unsplit remainder. n <= 1 returns the remainder as a single segment.
func SplitN(path string, n int) []string {
	if n < 1 {
		n = 1
	}
	return arr.SplitPath(path, n)
}
