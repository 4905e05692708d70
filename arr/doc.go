// Package arr provides standalone helper functions for Go slices and maps,
// inspired by the static Arr helpers found in PHP frameworks.
//
// # Lookups with defaults
//
// Every accessor has a form that never fails: a missing key or an index out
// of range yields the caller's default instead of a panic or an error.
//
//	parts := []string{"one", "two"}
//	arr.At(parts, 5, "many")        // → "many"
//	arr.GetIndex(parts, -1, "")     // → "two" (index wraps around)
//	last := arr.Pop(&parts)         // → "two", parts is now ["one"]
//
//	m := map[string]int{"foo": 123}
//	arr.Value(m, "bar", 456)        // → 456
//	arr.Consume(m, "foo", 0)        // → 123, m is now empty
//
// # Deep and path access
//
// Nested map[string]any structures can be addressed by a key list, by a path
// whose first rune is the separator, or by dot notation:
//
//	m := map[string]any{
//	    "foo": map[string]any{"bar": 123},
//	}
//	arr.GetDeep(m, []string{"foo", "bar"}) // → 123
//	arr.GetPath(m, "/foo/bar")             // → 123
//	arr.GetPath(m, ".foo.bar")             // → 123
//	arr.Get(m, "foo.bar")                  // → 123
//	arr.SetPath(m, "#foo#baz", 456)
//	arr.UnsetPath(m, "/foo/bar")
package arr
