package chart

import (
	"fmt"
	"strings"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// CurvePath renders a smooth natural cubic spline through the points as
// an SVG path.
func CurvePath(pts []Point) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", coord(pts[0].X), coord(pts[0].Y))
	if len(pts) == 1 {
		return b.String()
	}
	if len(pts) == 2 {
		fmt.Fprintf(&b, "L%s,%s", coord(pts[1].X), coord(pts[1].Y))
		return b.String()
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	x1, x2 := splineControls(xs)
	y1, y2 := splineControls(ys)
	for i := 0; i < len(pts)-1; i++ {
		fmt.Fprintf(&b, "C%s,%s %s,%s %s,%s",
			coord(x1[i]), coord(y1[i]),
			coord(x2[i]), coord(y2[i]),
			coord(pts[i+1].X), coord(pts[i+1].Y))
	}
	return b.String()
}

// AreaPath closes the curve down to a baseline so it can be filled.
func AreaPath(pts []Point, baseY float64) string {
	if len(pts) == 0 {
		return ""
	}
	curve := CurvePath(pts)
	last := pts[len(pts)-1]
	first := pts[0]
	return fmt.Sprintf("%sL%s,%s L%s,%s Z",
		curve, coord(last.X), coord(baseY), coord(first.X), coord(baseY))
}

func coord(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// splineControls solves the tridiagonal system of a natural cubic spline
// and returns the two Bezier control values per segment.
func splineControls(k []float64) (p1, p2 []float64) {
	n := len(k) - 1
	p1 = make([]float64, n)
	p2 = make([]float64, n)

	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	r := make([]float64, n)

	a[0], b[0], c[0] = 0, 2, 1
	r[0] = k[0] + 2*k[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], c[i] = 1, 4, 1
		r[i] = 4*k[i] + 2*k[i+1]
	}
	a[n-1], b[n-1], c[n-1] = 2, 7, 0
	r[n-1] = 8*k[n-1] + k[n]

	// Thomas algorithm
	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m * c[i-1]
		r[i] -= m * r[i-1]
	}
	p1[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		p1[i] = (r[i] - c[i]*p1[i+1]) / b[i]
	}
	for i := 0; i < n-1; i++ {
		p2[i] = 2*k[i+1] - p1[i+1]
	}
	p2[n-1] = (k[n] + p1[n-1]) / 2
	return p1, p2
}
