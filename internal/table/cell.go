package table

import (
	"strconv"
	"time"
)

// CellKind tags the comparable value held by a Cell.
type CellKind int

const (
	KindString CellKind = iota
	KindNumber
	KindTime
)

// Cell is a single typed column value of a derived row. Row types expose
// their columns as Cells so the sort engine never indexes into untyped
// field arrays.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	T    time.Time
}

func StringCell(s string) Cell  { return Cell{Kind: KindString, Str: s} }
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Num: f} }
func IntCell(i int) Cell        { return Cell{Kind: KindNumber, Num: float64(i)} }
func TimeCell(t time.Time) Cell { return Cell{Kind: KindTime, T: t} }

// BoolCell maps false/true to 0/1 so booleans take the numeric branch of
// the comparator.
func BoolCell(b bool) Cell {
	if b {
		return NumberCell(1)
	}
	return NumberCell(0)
}

func (c Cell) text() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindTime:
		return c.T.Format(time.RFC3339)
	default:
		return c.Str
	}
}

func (c Cell) value() float64 {
	if c.Kind == KindTime {
		return float64(c.T.UnixMilli())
	}
	return c.Num
}
