package chart

import (
	"fmt"
	"net/url"
	"strings"

	"nwb/internal/derive"
)

// WorldMap draws a choropleth: country fill encodes row count. Geometry
// is set once per pixel size (structure); data changes rebind only the
// per-country fills and counts.
type WorldMap struct {
	width, height float64
	hue           int
	name          string // entity name, e.g. "orders"
	proj          NaturalEarth

	features []worldFeature
	counts   map[string]int
	max      int
	built    bool
}

type worldFeature struct {
	country string // canonical name
	path    string
}

func NewWorldMap(width, height float64, hue int, name string) *WorldMap {
	return &WorldMap{
		width:  width,
		height: height,
		hue:    hue,
		name:   name,
		proj:   NewWorldProjection(width, height),
		counts: map[string]int{},
	}
}

// SetGeometry projects the polygon features once; the map-data feed
// spells the United Kingdom "England", folded here into the canonical
// name so data joins line up.
func (w *WorldMap) SetGeometry(fc FeatureCollection) error {
	w.features = w.features[:0]
	for _, f := range fc.Features {
		path, err := PathFor(f.Geometry, w.proj)
		if err != nil {
			return fmt.Errorf("feature %q: %w", f.Properties.Name, err)
		}
		w.features = append(w.features, worldFeature{
			country: derive.CanonicalCountry(f.Properties.Name),
			path:    path,
		})
	}
	w.built = true
	return nil
}

// SetData rebinds the per-country counts; geometry is untouched.
func (w *WorldMap) SetData(counts map[string]int, max int) {
	w.counts = counts
	w.max = max
}

func (w *WorldMap) Built() bool { return w.built }

// CountFor is the direct attribute lookup behind the hover tooltip: the
// count embedded on the hit shape, no geometric search.
func (w *WorldMap) CountFor(country string) (int, bool) {
	n, ok := w.counts[derive.CanonicalCountry(country)]
	return n, ok
}

// TooltipAt positions a tooltip so it never renders past the left edge.
func (w *WorldMap) TooltipAt(offsetX, offsetY, tooltipWidth float64) (x, y float64) {
	return ClampLeft(offsetX - tooltipWidth - 20), offsetY + 20
}

// SVG renders the map. Populated countries are wrapped in links to the
// matching filtered list view.
func (w *WorldMap) SVG() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s">`,
		coord(w.width), coord(w.height))
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%s" height="%s" fill="hsl(%d 100%% 50%%)" fill-opacity="0.1"/>`,
		coord(w.width), coord(w.height), w.hue)
	for _, f := range w.features {
		count := w.counts[f.country]
		countAttr := "no"
		if count > 0 {
			countAttr = fmt.Sprintf("%d", count)
		}
		path := fmt.Sprintf(
			`<path data-country="%s" data-count="%s" fill="%s" d="%s"/>`,
			escapeAttr(f.country), countAttr, FillColor(count, w.max, w.hue), f.path)
		if count > 0 {
			fmt.Fprintf(&b, `<a href="/%s?country=%s">%s</a>`,
				w.name, url.QueryEscape(f.country), path)
		} else {
			b.WriteString(path)
		}
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
