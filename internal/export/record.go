package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// Field is one exported column value. Record keeps fields ordered so
// header derivation and output stay deterministic.
type Field struct {
	Key   string
	Value any
}

type Record []Field

// Headers returns the union of all record keys in first-seen order, so
// heterogeneous row sets still export every column.
func Headers(rows []Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		for _, f := range r {
			if _, ok := seen[f.Key]; ok {
				continue
			}
			seen[f.Key] = struct{}{}
			out = append(out, f.Key)
		}
	}
	return out
}

func (r Record) get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON emits an ordered object. Invalid dates become the literal
// "Invalid Date" instead of the zero timestamp.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v := f.Value
		if t, ok := v.(time.Time); ok && t.IsZero() {
			v = "Invalid Date"
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var dateStringRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}.*)?$`)

func parseDateString(s string) (time.Time, bool) {
	if !dateStringRe.MatchString(s) {
		return time.Time{}, false
	}
	for _, layout := range []string{
		"2006-01-02T15:04:05.999999999Z07:00",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatDateValue(t time.Time) string {
	if t.IsZero() {
		return "Invalid Date"
	}
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 {
		return t.Format("1/2/2006, 3:04:05 PM")
	}
	return t.Format("1/2/2006")
}

// formatValue renders a value for the human-readable formats (Markdown,
// XLSX): dates and date-looking strings get locale-style formatting,
// everything else its default string form.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return formatDateValue(x)
	case string:
		if t, ok := parseDateString(x); ok {
			return formatDateValue(t)
		}
		return x
	default:
		return fmt.Sprint(x)
	}
}
