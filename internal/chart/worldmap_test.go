package chart

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func worldFixture() FeatureCollection {
	square := func(x, y float64) json.RawMessage {
		b, _ := json.Marshal([][][2]float64{{
			{x, y}, {x + 5, y}, {x + 5, y + 5}, {x, y},
		}})
		return b
	}
	return FeatureCollection{Features: []Feature{
		{Properties: FeatureProps{Name: "England"},
			Geometry: Geometry{Type: "Polygon", Coordinates: square(-2, 52)}},
		{Properties: FeatureProps{Name: "France"},
			Geometry: Geometry{Type: "Polygon", Coordinates: square(2, 46)}},
		{Properties: FeatureProps{Name: "Atlantis"},
			Geometry: Geometry{Type: "Polygon", Coordinates: square(-30, 0)}},
	}}
}

func TestWorldMapGeometryFoldsEngland(t *testing.T) {
	w := NewWorldMap(800, 600, 216, "orders")
	assert.False(t, w.Built())
	require.NoError(t, w.SetGeometry(worldFixture()))
	require.True(t, w.Built())

	w.SetData(map[string]int{"UK": 5, "France": 2}, 5)

	n, ok := w.CountFor("England")
	require.True(t, ok, "the England shape must read the UK bucket")
	assert.Equal(t, 5, n)

	n, ok = w.CountFor("UK")
	require.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = w.CountFor("Atlantis")
	assert.False(t, ok)
}

func TestWorldMapSVG(t *testing.T) {
	w := NewWorldMap(800, 600, 216, "orders")
	require.NoError(t, w.SetGeometry(worldFixture()))
	w.SetData(map[string]int{"UK": 5, "France": 2}, 5)
	svg := w.SVG()

	assert.Contains(t, svg, `data-country="UK"`)
	assert.Contains(t, svg, `data-count="5"`)
	// Populated countries link to the filtered list view.
	assert.Contains(t, svg, `<a href="/orders?country=UK">`)
	// Empty countries stay neutral and unlinked.
	assert.Contains(t, svg, `data-country="Atlantis" data-count="no" fill="`+NeutralFill+`"`)
	assert.NotContains(t, svg, `href="/orders?country=Atlantis"`)
}

func TestWorldMapSetDataRebindsOnly(t *testing.T) {
	w := NewWorldMap(800, 600, 216, "orders")
	require.NoError(t, w.SetGeometry(worldFixture()))

	w.SetData(map[string]int{"France": 1}, 1)
	before := w.SVG()
	w.SetData(map[string]int{"France": 3, "UK": 1}, 3)
	after := w.SVG()

	// Paths are identical; only fills and counts change.
	assert.Equal(t, pathData(before), pathData(after))
	assert.NotEqual(t, before, after)
}

func pathData(svg string) []string {
	var out []string
	parts := strings.Split(svg, ` d="`)
	for _, part := range parts[1:] {
		if i := strings.Index(part, `"`); i >= 0 {
			out = append(out, part[:i])
		}
	}
	return out
}

func TestWorldMapTooltipAt(t *testing.T) {
	w := NewWorldMap(800, 600, 216, "orders")

	x, y := w.TooltipAt(300, 100, 120)
	assert.Equal(t, 160.0, x)
	assert.Equal(t, 120.0, y)

	// Near the left edge the tooltip clamps instead of leaving the
	// viewport.
	x, _ = w.TooltipAt(50, 100, 120)
	assert.Equal(t, 0.0, x)
}
