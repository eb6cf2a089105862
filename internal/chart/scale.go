package chart

import "math"

// Linear maps a numeric domain onto a pixel range and back.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

func (s Linear) Apply(v float64) float64 {
	if s.D1 == s.D0 {
		return s.R0
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Invert maps a pixel position back into the domain, used by the focus
// line to read the raw value under the pointer.
func (s Linear) Invert(p float64) float64 {
	if s.R1 == s.R0 {
		return s.D0
	}
	return s.D0 + (p-s.R0)/(s.R1-s.R0)*(s.D1-s.D0)
}

// Ticks returns about n round values covering the domain, stepped by
// 1/2/5 powers of ten.
func (s Linear) Ticks(n int) []float64 {
	if n <= 0 {
		return nil
	}
	lo, hi := s.D0, s.D1
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return []float64{lo}
	}
	step := tickIncrement(lo, hi, n)
	start := math.Ceil(lo/step) * step
	var out []float64
	for v := start; v <= hi+step/1e6; v += step {
		out = append(out, v)
	}
	return out
}

func tickIncrement(lo, hi float64, n int) float64 {
	span := (hi - lo) / float64(n)
	power := math.Floor(math.Log10(span))
	step := math.Pow(10, power)
	err := span / step
	switch {
	case err >= math.Sqrt(50):
		step *= 10
	case err >= math.Sqrt(10):
		step *= 5
	case err >= math.Sqrt2:
		step *= 2
	}
	return step
}

// Band positions discrete categories across a pixel range with
// proportional inner and outer padding.
type Band struct {
	Count   int
	R0, R1  float64
	Padding float64
}

func (b Band) step() float64 {
	n := float64(b.Count)
	denom := n - b.Padding + 2*b.Padding
	if denom <= 0 {
		denom = 1
	}
	return (b.R1 - b.R0) / denom
}

// X returns the left edge of band i.
func (b Band) X(i int) float64 {
	return b.R0 + b.step()*(b.Padding+float64(i))
}

func (b Band) Bandwidth() float64 {
	return b.step() * (1 - b.Padding)
}
