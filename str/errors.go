package str

import "errors"

// Sentinel errors returned by str operations.
var (
	// ErrInvalidPattern is returned by [FullMatch] when the expression does
	// not compile.
	ErrInvalidPattern = errors.New("str: invalid regular expression")

	// ErrInvalidLocale is returned by [ParseLocale] when the locale is not a
	// well-formed BCP 47 tag.
	ErrInvalidLocale = errors.New("str: invalid locale")
)
