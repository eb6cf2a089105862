package chart

import "math"

// HitRadius bounds nearest-point tooltip hit-testing on line charts;
// beyond it the tooltip hides.
const HitRadius = 100.0

// Nearest returns the index of the point closest to (x, y) by Euclidean
// distance, or ok=false when no point lies within radius.
func Nearest(points []Point, x, y, radius float64) (int, bool) {
	nearest := -1
	nearestDist := math.Inf(1)
	for i, p := range points {
		d := math.Hypot(p.X-x, p.Y-y)
		if d < nearestDist {
			nearestDist = d
			nearest = i
		}
	}
	if nearest < 0 || nearestDist > radius {
		return 0, false
	}
	return nearest, true
}

// ClampLeft keeps a tooltip's left edge on screen.
func ClampLeft(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
