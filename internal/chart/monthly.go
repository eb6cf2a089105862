package chart

import (
	"fmt"
	"strings"
)

const gridPaddingX = 20

// Margin frames a chart's plotting area inside its pixel box.
type Margin struct {
	Left, Right, Top, Bottom float64
}

// MonthlyChart draws a smoothed area+line+point chart of per-month
// counts. It follows the build/update contract: the structure is laid
// out once, data changes only rebind scales and shape positions, and a
// resize rebuilds everything because margins and ranges depend on pixel
// dimensions.
type MonthlyChart struct {
	outerW, outerH float64
	margin         Margin
	width, height  float64

	built    bool
	buckets  [12]int
	maxValue int
	x, y     Linear
	points   []Point // pointer space, margins included
	name     string
}

func NewMonthlyChart(width, height float64, name string) *MonthlyChart {
	c := &MonthlyChart{name: name}
	c.layout(width, height)
	return c
}

func (c *MonthlyChart) layout(width, height float64) {
	c.outerW, c.outerH = width, height
	c.margin = Margin{Left: 70, Right: 30, Top: 30, Bottom: 50}
	c.width = width - c.margin.Left - c.margin.Right
	c.height = height - c.margin.Top - c.margin.Bottom
}

// SetData builds the structure on first use and rebinds scales and
// points on every call.
func (c *MonthlyChart) SetData(buckets [12]int) {
	if !c.built {
		c.built = true
	}
	c.buckets = buckets
	c.maxValue = 0
	for _, v := range buckets {
		if v > c.maxValue {
			c.maxValue = v
		}
	}
	c.x = NewLinear(0, float64(len(c.buckets)-1), 0, c.width)
	c.y = NewLinear(0, float64(c.maxValue), c.height, 0)
	c.points = c.points[:0]
	for i, v := range c.buckets {
		c.points = append(c.points, Point{
			X: c.x.Apply(float64(i)) + c.margin.Left,
			Y: c.y.Apply(float64(v)) + c.margin.Top,
		})
	}
}

// Resize fully rebuilds structure and data for the new dimensions.
func (c *MonthlyChart) Resize(width, height float64) {
	c.layout(width, height)
	c.built = false
	c.SetData(c.buckets)
}

func (c *MonthlyChart) Built() bool { return c.built }

// Points exposes the plotted positions in pointer space for hit-testing.
func (c *MonthlyChart) Points() []Point {
	return append([]Point(nil), c.points...)
}

// FocusValue inverts the y scale at the pointer's vertical offset; the
// focus line hides for negative values (pointer below the axis).
func (c *MonthlyChart) FocusValue(offsetY float64) (int, bool) {
	v := int(roundHalf(c.y.Invert(offsetY - c.margin.Top)))
	return v, v >= 0
}

// MonthTooltip positions a tooltip over the nearest plotted point.
type MonthTooltip struct {
	Month string
	Count int
	X, Y  float64
}

// Tooltip runs the nearest-point search against the pointer position;
// ok is false beyond the hit radius.
func (c *MonthlyChart) Tooltip(offsetX, offsetY float64) (MonthTooltip, bool) {
	i, ok := Nearest(c.points, offsetX, offsetY, HitRadius)
	if !ok {
		return MonthTooltip{}, false
	}
	return MonthTooltip{
		Month: MonthLabels[i],
		Count: c.buckets[i],
		X:     ClampLeft(c.points[i].X),
		Y:     c.points[i].Y - 15,
	}, true
}

func roundHalf(v float64) float64 {
	if v < 0 {
		return -float64(int(-v + 0.5))
	}
	return float64(int(v + 0.5))
}

// SVG renders the chart document: grid, axes, area, line and points.
func (c *MonthlyChart) SVG() string {
	inner := make([]Point, len(c.buckets))
	for i, v := range c.buckets {
		inner[i] = Point{X: c.x.Apply(float64(i)), Y: c.y.Apply(float64(v))}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s">`,
		coord(c.outerW), coord(c.outerH))
	fmt.Fprintf(&b, `<g transform="translate(%s,%s)">`, coord(c.margin.Left), coord(c.margin.Top))

	// y grid
	for _, t := range c.y.Ticks(6) {
		gy := c.y.Apply(t)
		fmt.Fprintf(&b,
			`<line x1="%d" y1="%s" x2="%s" y2="%s" stroke="#888" stroke-dasharray="2 3" opacity="0.3"/>`,
			-gridPaddingX, coord(gy), coord(c.width+gridPaddingX), coord(gy))
		fmt.Fprintf(&b,
			`<text x="%d" y="%s" text-anchor="end" font-size="9pt" fill="#888">%s</text>`,
			-gridPaddingX-5, coord(gy+4), tickLabel(t))
	}
	// x axis labels
	for i, m := range MonthLabels {
		fmt.Fprintf(&b,
			`<text x="%s" y="%s" text-anchor="middle" font-size="9pt" fill="#888">%s</text>`,
			coord(c.x.Apply(float64(i))), coord(c.height+20), m)
	}

	counts := make([]string, len(c.buckets))
	for i, v := range c.buckets {
		counts[i] = fmt.Sprintf("%d", v)
	}
	fmt.Fprintf(&b, `<path d="%s" fill="#4c7fb8" fill-opacity="0.1"/>`, AreaPath(inner, c.height))
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="#4c7fb8" stroke-width="2"/>`, CurvePath(inner))
	for i, p := range inner {
		fmt.Fprintf(&b,
			`<circle cx="%s" cy="%s" r="10" fill="#fff" stroke="#4c7fb8" stroke-width="2" data-month="%s" data-count="%s"/>`,
			coord(p.X), coord(p.Y), MonthLabels[i], counts[i])
	}
	b.WriteString(`</g></svg>`)
	return b.String()
}

func tickLabel(v float64) string {
	if v >= 1e3 {
		return coord(v/1e3) + "k"
	}
	return coord(v)
}
