package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarChartDescendingOrder(t *testing.T) {
	c := NewBarChart(800, 600, 30, "customers")
	assert.False(t, c.Built())
	c.SetData(map[string]int{"France": 2, "UK": 7, "Germany": 4}, 7)
	require.True(t, c.Built())

	svg := c.SVG()
	// Bars appear highest count first.
	uk := indexOf(t, svg, `data-country="UK"`)
	de := indexOf(t, svg, `data-country="Germany"`)
	fr := indexOf(t, svg, `data-country="France"`)
	assert.Less(t, uk, de)
	assert.Less(t, de, fr)
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	i := strings.Index(s, sub)
	require.GreaterOrEqual(t, i, 0, "missing %q", sub)
	return i
}

func TestBarChartSVGAttributes(t *testing.T) {
	c := NewBarChart(800, 600, 30, "customers")
	c.SetData(map[string]int{"UK": 7, "France": 2}, 7)
	svg := c.SVG()

	assert.Contains(t, svg, `data-count="7"`)
	assert.Contains(t, svg, `fill="hsl(30 100% 90%)"`)
	assert.Contains(t, svg, `stroke="hsl(30 100% 50%)"`)
	assert.Contains(t, svg, `<a href="/customers?country=UK">`)
	assert.Contains(t, svg, `rotate(-45`)
}

func TestBarChartCountFor(t *testing.T) {
	c := NewBarChart(800, 600, 30, "customers")
	c.SetData(map[string]int{"UK": 7}, 7)

	n, ok := c.CountFor("UK")
	require.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = c.CountFor("France")
	assert.False(t, ok)
}

func TestBarChartResizeRequiresRebind(t *testing.T) {
	c := NewBarChart(800, 600, 30, "customers")
	c.SetData(map[string]int{"UK": 7}, 7)
	c.Resize(400, 300)
	assert.False(t, c.Built(), "a resize invalidates the bound data")
}

func TestCurvePath(t *testing.T) {
	assert.Equal(t, "", CurvePath(nil))
	assert.Equal(t, "M1,2", CurvePath([]Point{{1, 2}}))
	assert.Equal(t, "M0,0L10,10", CurvePath([]Point{{0, 0}, {10, 10}}))

	curved := CurvePath([]Point{{0, 0}, {10, 40}, {20, 10}, {30, 30}})
	assert.Contains(t, curved, "C", "three or more points produce cubic segments")
}

func TestAreaPathClosesToBaseline(t *testing.T) {
	area := AreaPath([]Point{{0, 10}, {10, 5}, {20, 15}}, 100)
	assert.Contains(t, area, "L20,100")
	assert.Contains(t, area, "L0,100")
	assert.Contains(t, area, "Z")
}
