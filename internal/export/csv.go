package export

import (
	"strconv"
	"strings"
	"time"
)

// CSV renders records as an RFC4180-style table: values containing a
// comma, quote or newline are quoted with doubled quotes, dates are
// ISO-8601 in quotes, numbers and booleans stay bare.
func CSV(rows []Record) string {
	if len(rows) == 0 {
		return ""
	}
	headers := Headers(rows)
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, r := range rows {
		b.WriteByte('\n')
		for i, h := range headers {
			if i > 0 {
				b.WriteByte(',')
			}
			v, _ := r.get(h)
			b.WriteString(csvValue(v))
		}
	}
	return b.String()
}

func csvValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		if x.IsZero() {
			return "Invalid Date"
		}
		return `"` + x.UTC().Format("2006-01-02T15:04:05.000Z") + `"`
	default:
		return escapeCSV(formatString(v))
	}
}

func formatString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return formatValue(v)
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
