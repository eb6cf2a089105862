package derive

import (
	"fmt"
	"time"
)

// Now returns the current UTC time. Split for testability.
var Now = func() time.Time { return time.Now().UTC() }

var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseDate parses an API date string as UTC. The feed carries naive
// timestamps; treating them as UTC keeps year extraction independent of
// the local timezone. Missing or malformed input yields the zero time,
// the sentinel every formatter and comparator accepts without panicking.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatDate renders an API date as e.g. "Jul 4, 1996". Missing input
// renders "N/A", unparseable input "Invalid Date".
func FormatDate(s string) string {
	if s == "" {
		return "N/A"
	}
	t := ParseDate(s)
	if t.IsZero() {
		return "Invalid Date"
	}
	return t.Format("Jan 2, 2006")
}

// FormatDatePtr is FormatDate for nullable date fields.
func FormatDatePtr(s *string) string {
	if s == nil {
		return "N/A"
	}
	return FormatDate(*s)
}

// ParseDatePtr is ParseDate for nullable date fields.
func ParseDatePtr(s *string) time.Time {
	if s == nil {
		return time.Time{}
	}
	return ParseDate(*s)
}

// FormatYearsOld renders an age like "42 years old" from a birth date,
// decrementing when this year's birthday has not happened yet. Empty or
// invalid input renders an empty string.
func FormatYearsOld(birth string) string {
	b := ParseDate(birth)
	if b.IsZero() {
		return ""
	}
	today := Now()
	age := today.Year() - b.Year()
	m := int(today.Month()) - int(b.Month())
	if m < 0 || (m == 0 && today.Day() < b.Day()) {
		age--
	}
	return fmt.Sprintf("%d years old", age)
}
