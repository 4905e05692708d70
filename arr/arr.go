package arr

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Indexing
// ─────────────────────────────────────────────────────────────────────────────

// Index normalises i into the range [0, n). Negative indices count from the
// end and indices past the end wrap around, so -1 is the last element.
// Returns false when n is zero.
//
//	Index(3, -1)  // → 2, true
//	Index(3, -11) // → 1, true
//	Index(3, 9)   // → 0, true
func Index(n, i int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i, true
}

// At returns items[i], or def when i is outside [0, len(items)).
// Unlike [GetIndex], negative or overflowing indices are not wrapped.
func At[T any](items []T, i int, def T) T {
	if i < 0 || i >= len(items) {
		return def
	}
	return items[i]
}

// GetIndex returns the element at the wrapped index i (see [Index]), or def
// when items is empty.
func GetIndex[T any](items []T, i int, def T) T {
	idx, ok := Index(len(items), i)
	if !ok {
		return def
	}
	return items[idx]
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place removal
// ─────────────────────────────────────────────────────────────────────────────

// Pop removes and returns the last element of *items.
// When *items is empty it is left untouched and def[0] (or the zero value)
// is returned.
func Pop[T any](items *[]T, def ...T) T {
	s := *items
	if len(s) == 0 {
		return fallback(def)
	}
	last := s[len(s)-1]
	*items = s[:len(s)-1]
	return last
}

// Shift removes and returns the first element of *items.
// When *items is empty it is left untouched and def[0] (or the zero value)
// is returned.
func Shift[T any](items *[]T, def ...T) T {
	s := *items
	if len(s) == 0 {
		return fallback(def)
	}
	first := s[0]
	*items = s[1:]
	return first
}

func fallback[T any](def []T) T {
	if len(def) > 0 {
		return def[0]
	}
	var zero T
	return zero
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// ContainsValue reports whether items contains value.
func ContainsValue[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// AnyOf reports whether at least one of needles is contained in items.
// Returns false when no needles are given.
func AnyOf[T comparable](items []T, needles ...T) bool {
	for _, n := range needles {
		if ContainsValue(items, n) {
			return true
		}
	}
	return false
}

// AllOf reports whether every needle is contained in items.
// Returns false when no needles are given or items is empty.
func AllOf[T comparable](items []T, needles ...T) bool {
	if len(needles) == 0 || len(items) == 0 {
		return false
	}
	for _, n := range needles {
		if !ContainsValue(items, n) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Combine creates a map from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if the lengths differ.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrMismatchedLengths, len(keys), len(values))
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}
