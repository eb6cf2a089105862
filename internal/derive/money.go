package derive

import (
	"math"

	"nwb/internal/model"
)

// RoundMoney rounds to cents: round(x*100)/100.
func RoundMoney(x float64) float64 {
	return math.Round(x*100) / 100
}

// LineTotal computes a detail line's cost. Discount is canonically a 0-1
// fraction, so a 10% discount is stored as 0.1.
func LineTotal(d model.OrderDetail) float64 {
	return RoundMoney(d.UnitPrice * float64(d.Quantity) * (1 - d.Discount))
}

// DisplayDiscount converts the stored fraction to a whole percent for
// display only.
func DisplayDiscount(d model.OrderDetail) float64 {
	return d.Discount * 100
}
