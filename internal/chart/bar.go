package chart

import (
	"fmt"
	"net/url"
	"strings"
)

// BarChart draws per-country counts as vertical bars, highest first.
type BarChart struct {
	outerW, outerH float64
	margin         Margin
	width, height  float64
	hue            int
	name           string

	entries []CountryCount
	max     int
	x       Band
	y       Linear
	built   bool
}

func NewBarChart(width, height float64, hue int, name string) *BarChart {
	c := &BarChart{hue: hue, name: name}
	c.layout(width, height)
	return c
}

func (c *BarChart) layout(width, height float64) {
	c.outerW, c.outerH = width, height
	c.margin = Margin{Left: 60, Right: 30, Top: 30, Bottom: 100}
	c.width = width - c.margin.Left - c.margin.Right
	c.height = height - c.margin.Top - c.margin.Bottom
}

// SetData rebinds scales and bars to a new aggregation.
func (c *BarChart) SetData(counts map[string]int, max int) {
	c.entries = SortedCountryCounts(counts)
	c.max = max
	c.x = Band{Count: len(c.entries), R0: 0, R1: c.width, Padding: 0.2}
	c.y = NewLinear(0, float64(max), c.height, 0)
	c.built = true
}

// Resize rebuilds the layout; SetData must run again afterwards.
func (c *BarChart) Resize(width, height float64) {
	c.layout(width, height)
	c.built = false
}

func (c *BarChart) Built() bool { return c.built }

// CountFor is the hover tooltip's direct lookup on the hit bar.
func (c *BarChart) CountFor(country string) (int, bool) {
	for _, e := range c.entries {
		if e.Country == country {
			return e.Count, true
		}
	}
	return 0, false
}

// SVG renders the bars with their category attributes and link targets.
func (c *BarChart) SVG() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s">`,
		coord(c.outerW), coord(c.outerH))
	fmt.Fprintf(&b, `<g transform="translate(%s,%s)">`, coord(c.margin.Left), coord(c.margin.Top))

	for _, t := range c.y.Ticks(6) {
		gy := c.y.Apply(t)
		fmt.Fprintf(&b,
			`<text x="-10" y="%s" text-anchor="end" font-size="0.8rem" fill="#888">%s</text>`,
			coord(gy+4), tickLabel(t))
	}

	for i, e := range c.entries {
		x := c.x.X(i)
		y := c.y.Apply(float64(e.Count))
		bar := fmt.Sprintf(
			`<rect data-country="%s" data-count="%d" x="%s" y="%s" width="%s" height="%s" fill="hsl(%d 100%% 90%%)" stroke="hsl(%d 100%% 50%%)" stroke-width="2"/>`,
			escapeAttr(e.Country), e.Count, coord(x), coord(y),
			coord(c.x.Bandwidth()), coord(c.height-y), c.hue, c.hue)
		fmt.Fprintf(&b, `<a href="/%s?country=%s">%s</a>`, c.name, url.QueryEscape(e.Country), bar)
		fmt.Fprintf(&b,
			`<text x="%s" y="%s" transform="rotate(-45 %s %s)" text-anchor="end" font-size="1rem" fill="#888">%s</text>`,
			coord(x+c.x.Bandwidth()/2), coord(c.height+15),
			coord(x+c.x.Bandwidth()/2), coord(c.height+15), escapeAttr(e.Country))
	}
	b.WriteString(`</g></svg>`)
	return b.String()
}
