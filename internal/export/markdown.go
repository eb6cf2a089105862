package export

import "strings"

// Markdown renders records as a pipe table under a title heading. Cells
// are padded to the widest value of their column and literal pipes are
// escaped.
func Markdown(rows []Record, title string) string {
	if len(rows) == 0 {
		return ""
	}
	headers := Headers(rows)

	formatted := func(v any) string {
		return strings.ReplaceAll(formatValue(v), "|", `\|`)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	cells := make([][]string, len(rows))
	for ri, r := range rows {
		cells[ri] = make([]string, len(headers))
		for i, h := range headers {
			v, _ := r.get(h)
			s := formatted(v)
			cells[ri][i] = s
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}

	pad := func(s string, n int) string {
		return s + strings.Repeat(" ", n-len(s))
	}
	formatRow := func(row []string) string {
		parts := make([]string, len(row))
		for i, c := range row {
			parts[i] = pad(c, widths[i])
		}
		return "| " + strings.Join(parts, " | ") + " |"
	}

	var lines []string
	lines = append(lines, "# "+title, "", formatRow(headers))
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	lines = append(lines, "| "+strings.Join(seps, " | ")+" |")
	for _, row := range cells {
		lines = append(lines, formatRow(row))
	}
	return strings.Join(lines, "\n")
}
