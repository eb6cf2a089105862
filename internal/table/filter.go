package table

import (
	"sort"
	"strings"
	"time"
)

// Predicate reports whether a row passes one filter.
type Predicate[R any] func(R) bool

// Apply filters rows with AND semantics. The input is never mutated; with
// no active predicates the input slice is passed through unchanged.
func Apply[R any](rows []R, preds ...Predicate[R]) []R {
	active := preds[:0:0]
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return rows
	}
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		keep := true
		for _, p := range active {
			if !p(r) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// ContainsFold reports whether s contains substr, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// TextPredicate matches rows whose searchable fields contain query as a
// case-insensitive substring. Fields used only for linking (raw numeric
// ids) must already be excluded by the fields func. An empty query yields
// a nil predicate, meaning "no filter".
func TextPredicate[R any](query string, fields func(R) []string) Predicate[R] {
	if query == "" {
		return nil
	}
	return func(r R) bool {
		for _, f := range fields(r) {
			if ContainsFold(f, query) {
				return true
			}
		}
		return false
	}
}

// CountryPredicate matches rows whose country field equals country exactly.
func CountryPredicate[R any](country string, sel func(R) string) Predicate[R] {
	if country == "" {
		return nil
	}
	return func(r R) bool { return sel(r) == country }
}

// YearPredicate matches rows whose date field falls in the given calendar
// year. Rows with an invalid date never match.
func YearPredicate[R any](year *int, date func(R) time.Time) Predicate[R] {
	if year == nil {
		return nil
	}
	y := *year
	return func(r R) bool {
		t := date(r)
		return !t.IsZero() && t.Year() == y
	}
}

// TriStatePredicate matches a boolean field when want is set; unset means
// no filtering.
func TriStatePredicate[R any](want *bool, sel func(R) bool) Predicate[R] {
	if want == nil {
		return nil
	}
	w := *want
	return func(r R) bool { return sel(r) == w }
}

// Countries returns the distinct countries of the rows, sorted, for
// populating a country filter dropdown.
func Countries[R any](rows []R, sel func(R) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		c := sel(r)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
