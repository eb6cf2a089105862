package chart

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// FeatureCollection is the subset of GeoJSON the choropleth needs:
// country polygons keyed by properties.name.
type FeatureCollection struct {
	Features []Feature `json:"features"`
}

type Feature struct {
	Properties FeatureProps `json:"properties"`
	Geometry   Geometry     `json:"geometry"`
}

type FeatureProps struct {
	Name string `json:"name"`
}

type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Rings flattens Polygon and MultiPolygon coordinates into a list of
// lon/lat rings.
func (g Geometry) Rings() ([][][2]float64, error) {
	switch g.Type {
	case "Polygon":
		var rings [][][2]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return nil, fmt.Errorf("decode polygon: %w", err)
		}
		return rings, nil
	case "MultiPolygon":
		var polys [][][][2]float64
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
			return nil, fmt.Errorf("decode multipolygon: %w", err)
		}
		var rings [][][2]float64
		for _, p := range polys {
			rings = append(rings, p...)
		}
		return rings, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", g.Type)
	}
}

// NaturalEarth is the Natural Earth pseudocylindrical projection with the
// scale and translation the world map uses.
type NaturalEarth struct {
	Scale  float64
	TX, TY float64
}

// NewWorldProjection frames the whole world inside width x height the
// same way the map view does.
func NewWorldProjection(width, height float64) NaturalEarth {
	return NaturalEarth{
		Scale: width / 1.5 / math.Pi,
		TX:    width / 2.2,
		TY:    height / 2,
	}
}

// Project maps degrees of longitude/latitude into pixel space. The
// polynomial is the published Natural Earth raw formula.
func (p NaturalEarth) Project(lon, lat float64) (float64, float64) {
	l := lon * math.Pi / 180
	phi := lat * math.Pi / 180
	phi2 := phi * phi
	phi4 := phi2 * phi2
	x := l * (0.8707 - 0.131979*phi2 + phi4*(-0.013791+phi4*(0.003971*phi2-0.001529*phi4)))
	y := phi * (1.007226 + phi2*(0.015085+phi4*(-0.044475+0.028874*phi2-0.005916*phi4)))
	return p.TX + p.Scale*x, p.TY - p.Scale*y
}

// PathFor renders a feature's rings as one SVG path.
func PathFor(g Geometry, p NaturalEarth) (string, error) {
	rings, err := g.Rings()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, ring := range rings {
		for i, pt := range ring {
			x, y := p.Project(pt[0], pt[1])
			if i == 0 {
				fmt.Fprintf(&b, "M%s,%s", coord(x), coord(y))
			} else {
				fmt.Fprintf(&b, "L%s,%s", coord(x), coord(y))
			}
		}
		b.WriteString("Z")
	}
	return b.String(), nil
}
