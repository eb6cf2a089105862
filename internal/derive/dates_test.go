package derive

import (
	"testing"
	"time"
)

func TestParseDateUTC(t *testing.T) {
	got := ParseDate("1996-07-04T00:00:00")
	want := time.Date(1996, 7, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	if got.Location() != time.UTC {
		t.Fatalf("naive timestamps must parse as UTC, got %v", got.Location())
	}
}

func TestParseDateLayouts(t *testing.T) {
	for _, s := range []string{
		"1996-07-04T00:00:00.000Z",
		"1996-07-04T00:00:00",
		"1996-07-04",
	} {
		got := ParseDate(s)
		if got.IsZero() {
			t.Fatalf("ParseDate(%q) returned zero", s)
		}
		if got.Year() != 1996 || got.Month() != time.July || got.Day() != 4 {
			t.Fatalf("ParseDate(%q) = %v", s, got)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	if !ParseDate("").IsZero() {
		t.Fatalf("empty input must be zero")
	}
	if !ParseDate("not-a-date").IsZero() {
		t.Fatalf("garbage input must be zero")
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1996-07-04T00:00:00", "Jul 4, 1996"},
		{"", "N/A"},
		{"garbage", "Invalid Date"},
	}
	for _, c := range cases {
		if got := FormatDate(c.in); got != c.want {
			t.Fatalf("FormatDate(%q): want %q, got %q", c.in, c.want, got)
		}
	}
}

func TestFormatDatePtr(t *testing.T) {
	if got := FormatDatePtr(nil); got != "N/A" {
		t.Fatalf("nil: want N/A, got %q", got)
	}
	s := "1996-07-04"
	if got := FormatDatePtr(&s); got != "Jul 4, 1996" {
		t.Fatalf("want Jul 4, 1996, got %q", got)
	}
}

func TestFormatYearsOld(t *testing.T) {
	defer func() { Now = func() time.Time { return time.Now().UTC() } }()
	Now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	cases := []struct {
		birth, want string
	}{
		{"1984-06-15", "40 years old"}, // birthday today
		{"1984-06-16", "39 years old"}, // birthday tomorrow
		{"1984-06-14", "40 years old"}, // birthday yesterday
		{"1984-12-01", "39 years old"},
		{"", ""},
		{"garbage", ""},
	}
	for _, c := range cases {
		if got := FormatYearsOld(c.birth); got != c.want {
			t.Fatalf("FormatYearsOld(%q): want %q, got %q", c.birth, c.want, got)
		}
	}
}
