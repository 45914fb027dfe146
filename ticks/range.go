package ticks

import (
	"math"
)

// Range is the visible window on the axis, in ordinal coordinates. It
// may arrive inverted from the host library.
type Range struct {
	Min float64
	Max float64
}

func NewRange(min, max float64) Range {
	return Range{
		Min: min,
		Max: max,
	}
}

func (r Range) Normalize() Range {
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

func (r Range) Span() float64 {
	return r.Max - r.Min
}

// nonsingular expands a degenerate interval so the axis never ends up
// with zero extent.
func nonsingular(vmin, vmax float64) (float64, float64) {
	if vmax < vmin {
		vmin, vmax = vmax, vmin
	}
	if vmax-vmin <= 1e-12 {
		if vmin == 0 && vmax == 0 {
			return -0.001, 0.001
		}
		vmin -= 0.001 * math.Abs(vmin)
		vmax += 0.001 * math.Abs(vmax)
	}
	return vmin, vmax
}
