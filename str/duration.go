package str

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"

	"github.com/hasbyte1/go-hooray/arr"
)

// Unit is a calendar or clock unit used by [TimeChunks] and [Duration].
type Unit int

// Units from the largest to the smallest. Months and years are averaged over
// the Julian year (365.25 days).
const (
	Century Unit = iota
	Decade
	Year
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond
)

var unitSeconds = [...]float64{
	Century:     3155760000,
	Decade:      315576000,
	Year:        31557600,
	Month:       2629800,
	Week:        604800,
	Day:         86400,
	Hour:        3600,
	Minute:      60,
	Second:      1,
	Millisecond: 1.0 / 1000,
}

var unitSymbols = [...]string{"C", "D", "Y", "m", "w", "d", "H", "M", "S", "f"}

// Seconds returns the length of u in seconds.
func (u Unit) Seconds() float64 { return unitSeconds[u] }

// String returns the one-letter symbol of u (C, D, Y, m, w, d, H, M, S, f).
func (u Unit) String() string {
	if u < Century || u > Millisecond {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitSymbols[u]
}

// Chunk is the whole number of units a duration contains after all larger
// units were taken out.
type Chunk struct {
	Unit   Unit
	Amount int64
}

// TimeChunks splits seconds into whole centuries, decades, years, months,
// weeks, days, hours, minutes, seconds and milliseconds, largest first.
// The result always has one chunk per unit. Negative input is treated as
// its absolute value; anything below a millisecond is dropped.
func TimeChunks(seconds float64) []Chunk {
	seconds = math.Abs(seconds)
	out := make([]Chunk, 0, len(unitSeconds))
	for u := Century; u <= Millisecond; u++ {
		amount := math.Floor(seconds / u.Seconds())
		out = append(out, Chunk{Unit: u, Amount: int64(amount)})
		seconds -= amount * u.Seconds()
	}
	return out
}

// DurationOptions configures [Duration].
type DurationOptions struct {
	// Precision is the number of consecutive units rendered, counted from
	// the largest non-zero unit. Zero units inside that window are skipped
	// but still count. Values below 1 behave like 1.
	// Default: 2.
	Precision int

	// Locale selects the language of the output. Unsupported locales fall
	// back to English.
	// Default: [language.English].
	Locale language.Tag
}

// DefaultDurationOptions returns DurationOptions with precision 2 in English.
func DefaultDurationOptions() DurationOptions {
	return DurationOptions{Precision: 2, Locale: language.English}
}

type durationTexts struct {
	units [Millisecond + 1]string
	and   string
	sep   string
}

var (
	durationLocales = []language.Tag{language.English, language.German}
	durationMatcher = language.NewMatcher(durationLocales)

	durationL10N = []durationTexts{
		{
			units: [...]string{
				"(one|$) centur(y|ies)",
				"(one|$) decade(s)",
				"(one|$) year(s)",
				"(one|$) month(s)",
				"(one|$) week(s)",
				"(one|$) day(s)",
				"(one|$) hour(s)",
				"(one|$) minute(s)",
				"(one|$) second(s)",
				"(one|$) millisecond(s)",
			},
			and: " and ",
			sep: ", ",
		},
		{
			units: [...]string{
				"(ein|$) Jahrhundert(e)",
				"(eine|$) Dekade(n)",
				"(ein|$) Jahr(e)",
				"(ein|$) Monat(e)",
				"(eine|$) Woche(n)",
				"(ein|$) Tag(e)",
				"(eine|$) Stunde(n)",
				"(eine|$) Minute(n)",
				"(eine|$) Sekunde(n)",
				"(eine|$) Millisekunde(n)",
			},
			and: " und ",
			sep: ", ",
		},
	}
)

// Duration renders seconds as human-readable text.
//
//	Duration(3666, DurationOptions{Precision: 2, Locale: language.English})
//	// "one hour and one minute"
//	Duration(3666, DurationOptions{Precision: 3, Locale: language.English})
//	// "one hour, one minute and 6 seconds"
//	Duration(3666, DurationOptions{Precision: 3, Locale: language.German})
//	// "eine Stunde, eine Minute und 6 Sekunden"
//
// Zero seconds render as the empty string.
func Duration(seconds float64, opts DurationOptions) string {
	if seconds == 0 {
		return ""
	}
	_, idx, _ := durationMatcher.Match(opts.Locale)
	texts := durationL10N[idx]

	precision := opts.Precision - 1
	var parts []string
	for _, c := range TimeChunks(seconds) {
		if c.Amount > 0 {
			parts = append(parts, Pluralize(texts.units[c.Unit], int(c.Amount)))
		}
		if len(parts) > 0 {
			if precision <= 0 {
				break
			}
			precision--
		}
	}

	last := arr.Pop(&parts)
	if len(parts) == 0 {
		return last
	}
	return strings.Join(parts, texts.sep) + texts.and + last
}

// ParseLocale parses a BCP 47 locale such as "de", "de-AT" or "en_US" for
// use in [DurationOptions].
func ParseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, s, err)
	}
	return tag, nil
}
