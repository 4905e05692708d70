package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	d, err := hashing.ParseMCF(stored)
//	if errors.Is(err, hashing.ErrInvalidFormat) {
//	    // neither a modular crypt string nor a hex digest
//	}
var (
	// ErrInvalidFormat is returned when a hash string matches neither the
	// modular crypt format nor the bare hex digest form. The offending input
	// is never included in the message.
	ErrInvalidFormat = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range (e.g., a bcrypt
	// cost below 4 or above 31).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrAlgorithmMismatch is returned by [BcryptHasher] when the hash string
	// was produced by a different algorithm.
	ErrAlgorithmMismatch = errors.New("hashing: hash was produced by a different algorithm")
)
