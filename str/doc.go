// Package str provides static helper functions for string manipulation:
// regular-expression primitives, path splitting, a bracket pluralization
// mini-language, human-readable durations, Unicode-aware case helpers and
// brace templates.
//
// # Pluralization
//
// [Pluralize] expands inline markup according to an amount:
//
//	str.Pluralize("{No|One|$} quer(y|ies) (is|are) found", 0) // "No queries are found"
//	str.Pluralize("{No|One|$} quer(y|ies) (is|are) found", 1) // "One query is found"
//	str.Pluralize("{No|One|$} quer(y|ies) (is|are) found", 7) // "7 queries are found"
//
// The rules, applied in this order:
//
//   - (pl) expands when the amount is not one, and is omitted otherwise.
//   - {sl} expands when the amount is exactly one. This is the opposite of (pl).
//   - (one|two|three|all other) expands to the amount-th element (1-based);
//     zero and amounts past the list expand to the last element.
//   - {zero|one|two|all other} expands to the amount-th element (0-based);
//     amounts past the list expand to the last element.
//   - $ expands to the decimal amount. The token can be changed per call.
//
// Malformed markup is never an error: unmatched brackets are kept verbatim.
//
// # Durations
//
//	str.Duration(3666, str.DefaultDurationOptions())
//	// "one hour and one minute"
//
// Durations are rendered through [Pluralize] with per-locale templates
// (English and German), selected by a [language.Tag] passed in
// [DurationOptions]. There is no process-wide default locale.
package str
