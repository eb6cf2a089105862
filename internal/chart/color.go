package chart

import (
	"fmt"
	"math"
)

// NeutralFill colors categories with no rows.
const NeutralFill = "hsl(0 0% 75%)"

// FillColor encodes count intensity as lightness within a fixed hue:
// lightness runs from 80% down to 20% as count approaches the maximum.
func FillColor(count, max, hue int) string {
	if count <= 0 || max <= 0 {
		return NeutralFill
	}
	l := 80 - int(math.Round(float64(count)/float64(max)*60))
	return fmt.Sprintf("hsl(%d 100%% %d%%)", hue, l)
}
