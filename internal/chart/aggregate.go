package chart

import (
	"sort"
	"time"

	"nwb/internal/derive"
)

// MonthLabels are the x axis labels of the monthly chart.
var MonthLabels = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// CountryCounts aggregates rows per canonical country name ("UK" and
// "England" land in one bucket) and tracks the largest bucket for scale
// domain sizing.
func CountryCounts[R any](rows []R, country func(R) string) (map[string]int, int) {
	counts := make(map[string]int)
	max := 0
	for _, r := range rows {
		c := derive.CanonicalCountry(country(r))
		counts[c]++
		if counts[c] > max {
			max = counts[c]
		}
	}
	return counts, max
}

// MonthCounts buckets rows into the 12 calendar months, optionally
// restricted to one year (year <= 0 means all years). The distinct years
// present are returned sorted for the year filter buttons; rows with an
// invalid date are skipped.
func MonthCounts[R any](rows []R, date func(R) time.Time, year int) (buckets [12]int, years []int, max int) {
	yearsSet := make(map[int]struct{})
	for _, r := range rows {
		t := date(r)
		if t.IsZero() {
			continue
		}
		yearsSet[t.Year()] = struct{}{}
		if year > 0 && t.Year() != year {
			continue
		}
		buckets[t.Month()-1]++
	}
	for y := range yearsSet {
		years = append(years, y)
	}
	sort.Ints(years)
	for _, b := range buckets {
		if b > max {
			max = b
		}
	}
	return buckets, years, max
}

// CountryCount is one bar of the per-country bar chart.
type CountryCount struct {
	Country string
	Count   int
}

// SortedCountryCounts orders the aggregation by descending count, ties
// broken by name so output is deterministic.
func SortedCountryCounts(counts map[string]int) []CountryCount {
	out := make([]CountryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CountryCount{Country: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Country < out[j].Country
	})
	return out
}
