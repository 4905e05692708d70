package arr

import "errors"

// Sentinel errors returned by arr operations.
//
// Use [errors.Is] for comparisons:
//
//	v, err := arr.Load(m, "port", "port is not configured")
//	if errors.Is(err, arr.ErrOutOfBounds) {
//	    // key is missing
//	}
var (
	// ErrOutOfBounds is returned by [Load] and [Assert] when the requested
	// key does not exist.
	ErrOutOfBounds = errors.New("arr: key out of bounds")

	// ErrMismatchedLengths is returned by [Combine] when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("arr: keys and values must have the same length")
)
