package arr

import "fmt"

// Value returns m[key], or def when the key does not exist.
//
//	m := map[string]int{"foo": 123}
//	Value(m, "foo", 0)   // → 123
//	Value(m, "bar", 456) // → 456
func Value[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// HasKey reports whether key exists in m, even if its value is the zero value.
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// Load returns m[key] and fails with [ErrOutOfBounds] carrying msg when the
// key does not exist.
func Load[K comparable, V any](m map[K]V, key K, msg string) (V, error) {
	v, ok := m[key]
	if !ok {
		return v, fmt.Errorf("%w: %s", ErrOutOfBounds, msg)
	}
	return v, nil
}

// Assert returns nil when key exists in m, and an [ErrOutOfBounds] error
// carrying msg otherwise.
func Assert[K comparable, V any](m map[K]V, key K, msg string) error {
	if _, ok := m[key]; ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrOutOfBounds, msg)
}

// Init stores value under key unless the key already exists, and returns the
// value that is stored afterwards.
//
//	m := map[string]int{"foo": 123}
//	Init(m, "foo", 234) // → 123, m unchanged
//	Init(m, "bar", 456) // → 456, m["bar"] is set
func Init[K comparable, V any](m map[K]V, key K, value V) V {
	if v, ok := m[key]; ok {
		return v
	}
	m[key] = value
	return value
}

// Consume deletes key from m and returns its value, or def when the key does
// not exist.
func Consume[K comparable, V any](m map[K]V, key K, def V) V {
	v, ok := m[key]
	if !ok {
		return def
	}
	delete(m, key)
	return v
}

// Swap stores value under key and returns the previous value together with
// whether the key existed before.
func Swap[K comparable, V any](m map[K]V, key K, value V) (V, bool) {
	old, ok := m[key]
	m[key] = value
	return old, ok
}

// Defaults copies every entry of defaults into m whose key is not yet
// present. Existing values win.
func Defaults[K comparable, V any](m map[K]V, defaults map[K]V) {
	for k, v := range defaults {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
}

// Merge copies every entry of src into dst, overwriting existing keys, and
// returns dst. The merge is shallow: nested maps are replaced, not merged.
func Merge[K comparable, V any](dst, src map[K]V) map[K]V {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
