package arr

import (
	"reflect"
	"strings"
	"unicode/utf8"
)

// ─────────────────────────────────────────────────────────────────────────────
// Deep access on map[string]any
//
// A key list addresses a value inside nested map[string]any structures:
//
//	m := map[string]any{
//	    "foo": map[string]any{"bar": 123},
//	}
//
//	GetDeep(m, []string{"foo", "bar"})     → 123
//	SetDeep(m, []string{"foo", "baz"}, 1)  → nil (no previous value)
//	UnsetDeep(m, []string{"foo", "bar"})   → 123
// ─────────────────────────────────────────────────────────────────────────────

// GetDeep walks m along keys and returns the value found, or def[0] (or nil)
// when a key is missing or an intermediate value is not a map[string]any.
// An empty key list returns m itself.
func GetDeep(m map[string]any, keys []string, def ...any) any {
	var current any = m
	for _, key := range keys {
		node, ok := current.(map[string]any)
		if !ok {
			return fallback(def)
		}
		current, ok = node[key]
		if !ok {
			return fallback(def)
		}
	}
	return current
}

// IsDeep reports whether the value at keys deeply equals expect.
// A missing value compares as nil.
func IsDeep(m map[string]any, keys []string, expect any) bool {
	return reflect.DeepEqual(GetDeep(m, keys), expect)
}

// SetDeep stores value at keys, replacing any intermediate value that is not
// a map[string]any with a fresh map, and returns the previous value (nil if
// there was none). An empty key list is a no-op.
func SetDeep(m map[string]any, keys []string, value any) any {
	if len(keys) == 0 {
		return nil
	}
	node := m
	for _, key := range keys[:len(keys)-1] {
		next, ok := node[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[key] = next
		}
		node = next
	}
	old, _ := Swap(node, keys[len(keys)-1], value)
	return old
}

// UnsetDeep removes the value at keys and returns it, or nil when the path
// does not exist. Parent maps are left in place even if they become empty.
func UnsetDeep(m map[string]any, keys []string) any {
	if len(keys) == 0 {
		return nil
	}
	parent, ok := GetDeep(m, keys[:len(keys)-1]).(map[string]any)
	if !ok {
		return nil
	}
	return Consume(parent, keys[len(keys)-1], nil)
}

// ─────────────────────────────────────────────────────────────────────────────
// Path access
//
// A path is a string whose first rune is the separator for the rest:
// "/foo/bar", ".foo.bar", "#foo#bar" and ":foo:bar" all address the same
// value. This lets callers pick a separator that does not occur in keys.
// ─────────────────────────────────────────────────────────────────────────────

// SplitPath splits path by its first rune. n limits the number of returned
// segments the way [strings.SplitN] does, except that n == 0 is treated as 1
// so the remainder is always returned. An empty path returns nil.
//
//	SplitPath("/foo/bar", -1)   // → ["foo", "bar"]
//	SplitPath("/foo/bar/", -1)  // → ["foo", "bar", ""]
//	SplitPath("/a/b/c", 2)      // → ["a", "b/c"]
func SplitPath(path string, n int) []string {
	if path == "" {
		return nil
	}
	if n == 0 {
		n = 1
	}
	_, size := utf8.DecodeRuneInString(path)
	return strings.SplitN(path[size:], path[:size], n)
}

// GetPath is the path variant of [GetDeep].
func GetPath(m map[string]any, path string, def ...any) any {
	return GetDeep(m, SplitPath(path, -1), def...)
}

// IsPath is the path variant of [IsDeep].
func IsPath(m map[string]any, path string, expect any) bool {
	return IsDeep(m, SplitPath(path, -1), expect)
}

// SetPath is the path variant of [SetDeep].
func SetPath(m map[string]any, path string, value any) any {
	return SetDeep(m, SplitPath(path, -1), value)
}

// UnsetPath is the path variant of [UnsetDeep].
func UnsetPath(m map[string]any, path string) any {
	return UnsetDeep(m, SplitPath(path, -1))
}
