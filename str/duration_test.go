package str_test

import (
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/hasbyte1/go-hooray/str"
)

func TestTimeChunks(t *testing.T) {
	chunks := str.TimeChunks(90061)
	if len(chunks) != 10 {
		t.Fatalf("TimeChunks returned %d chunks; want 10", len(chunks))
	}
	want := map[str.Unit]int64{str.Day: 1, str.Hour: 1, str.Minute: 1, str.Second: 1}
	for _, c := range chunks {
		if c.Amount != want[c.Unit] {
			t.Errorf("%s = %d; want %d", c.Unit, c.Amount, want[c.Unit])
		}
	}
	if chunks[0].Unit != str.Century || chunks[9].Unit != str.Millisecond {
		t.Fatalf("chunks out of order: %v", chunks)
	}
}

func TestTimeChunks_FractionsAndSign(t *testing.T) {
	chunks := str.TimeChunks(-1.25)
	if got := chunks[str.Second].Amount; got != 1 {
		t.Fatalf("seconds = %d; want 1", got)
	}
	if got := chunks[str.Millisecond].Amount; got != 250 {
		t.Fatalf("milliseconds = %d; want 250", got)
	}
}

func TestUnitString(t *testing.T) {
	if s := str.Minute.String(); s != "M" {
		t.Fatalf("Minute = %q; want M", s)
	}
	if s := str.Month.String(); s != "m" {
		t.Fatalf("Month = %q; want m", s)
	}
	if s := str.Unit(42).String(); s != "Unit(42)" {
		t.Fatalf("Unit(42) = %q", s)
	}
}

func TestDuration(t *testing.T) {
	en := language.English
	de := language.German
	cases := []struct {
		seconds   float64
		precision int
		locale    language.Tag
		want      string
	}{
		{0, 2, en, ""},
		{1, 2, en, "one second"},
		{2, 2, en, "2 seconds"},
		{-60, 2, en, "one minute"},
		{3666, 0, en, "one hour"},
		{3666, 1, en, "one hour"},
		{3666, 2, en, "one hour and one minute"},
		{3666, 3, en, "one hour, one minute and 6 seconds"},
		{3606, 2, en, "one hour"},
		{3606, 3, en, "one hour and 6 seconds"},
		{7322, 3, en, "2 hours, 2 minutes and 2 seconds"},
		{3666, 3, de, "eine Stunde, eine Minute und 6 Sekunden"},
		{172800, 2, de, "2 Tage"},
		{120, 2, language.French, "2 minutes"},
	}
	for _, tc := range cases {
		got := str.Duration(tc.seconds, str.DurationOptions{Precision: tc.precision, Locale: tc.locale})
		if got != tc.want {
			t.Errorf("Duration(%v, %d, %s) = %q; want %q", tc.seconds, tc.precision, tc.locale, got, tc.want)
		}
	}
}

func TestDuration_RegionalLocale(t *testing.T) {
	tag, err := str.ParseLocale("de_AT")
	if err != nil {
		t.Fatal(err)
	}
	opts := str.DefaultDurationOptions()
	opts.Locale = tag
	if got := str.Duration(60, opts); got != "eine Minute" {
		t.Fatalf("Duration de_AT = %q; want %q", got, "eine Minute")
	}
}

func TestDefaultDurationOptions(t *testing.T) {
	opts := str.DefaultDurationOptions()
	if opts.Precision != 2 || opts.Locale != language.English {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestParseLocale(t *testing.T) {
	tag, err := str.ParseLocale("en_US")
	if err != nil {
		t.Fatal(err)
	}
	if base, _ := tag.Base(); base.String() != "en" {
		t.Fatalf("base = %s; want en", base)
	}
	if _, err := str.ParseLocale("!!"); !errors.Is(err, str.ErrInvalidLocale) {
		t.Fatalf("expected ErrInvalidLocale, got %v", err)
	}
}
