package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any
//
// Shorthands for the deep helpers with "." as the fixed key separator:
//
//	Get(m, "user.address.city")  → "London"
//	Set(m, "user.age", 30)
//	Has(m, "user.name")          → true
//	Forget(m, "user.address")
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	return GetDeep(m, strings.Split(key, "."), def...)
}

// Set writes value into m at the dot-notation key, creating intermediate
// maps as needed.
func Set(m map[string]any, key string, value any) {
	SetDeep(m, strings.Split(key, "."), value)
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	const missing = sentinel("missing")
	return GetDeep(m, strings.Split(key, "."), missing) != missing
}

// HasAll reports whether all dot-notation keys exist in m.
func HasAll(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if !Has(m, key) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the dot-notation keys exist in m.
func HasAny(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if Has(m, key) {
			return true
		}
	}
	return false
}

// Forget removes the dot-notation key from m.
// Intermediate maps are not cleaned up.
func Forget(m map[string]any, key string) {
	UnsetDeep(m, strings.Split(key, "."))
}

// sentinel is a private type so a stored value can never equal it.
type sentinel string
