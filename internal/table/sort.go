package table

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort returns rows ordered by the selected column. A negative col leaves
// the order untouched (still returning a fresh slice so downstream change
// detection fires). The direction rules are the product's historical sort
// contract, applied in this order:
//
//	strings compare locale-aware; numbers compare descending by default;
//	a time value flips the result back to ascending; the reverse toggle
//	flips once more; the primary key column (constant 0) flips again so
//	IDs default to ascending while every other column starts on the
//	opposite of its natural direction.
func Sort[R any, C ~int](rows []R, col C, reverse bool, cell func(R, C) Cell) []R {
	out := make([]R, len(rows))
	copy(out, rows)
	if col < 0 {
		return out
	}
	cl := collate.New(language.English)
	primary := col == 0
	sort.SliceStable(out, func(i, j int) bool {
		return compareCells(cl, cell(out[i], col), cell(out[j], col), reverse, primary) < 0
	})
	return out
}

func compareCells(cl *collate.Collator, a, b Cell, reverse, primary bool) int {
	var r int
	if a.Kind == KindString || b.Kind == KindString {
		r = cl.CompareString(a.text(), b.text())
	} else {
		av, bv := a.value(), b.value()
		switch {
		case bv < av:
			r = -1
		case bv > av:
			r = 1
		}
	}
	if a.Kind == KindTime || b.Kind == KindTime {
		r = -r
	}
	if reverse {
		r = -r
	}
	if primary {
		r = -r
	}
	return r
}
