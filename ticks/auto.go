package ticks

import (
	"math"
)

const defaultMaxTicks = 10

// AutoLocator places ticks on a plain numeric interval using 1-2-5
// steps. It backs the clock-time axis, whose coordinates are seconds
// of day rather than period ordinals.
type AutoLocator struct {
	axis Axis

	MaxTicks int
}

func NewAutoLocator() *AutoLocator {
	return &AutoLocator{
		MaxTicks: defaultMaxTicks,
	}
}

func (l *AutoLocator) SetAxis(ax Axis) {
	l.axis = ax
}

func (l *AutoLocator) Locations() ([]float64, error) {
	vmin, vmax := l.axis.ViewInterval()
	rg := NewRange(vmin, vmax).Normalize()

	max := l.MaxTicks
	if max < 2 {
		max = defaultMaxTicks
	}
	step := niceStep(rg.Span() / float64(max-1))
	if step <= 0 {
		return []float64{rg.Min}, nil
	}
	var (
		locs  []float64
		start = math.Ceil(rg.Min/step) * step
	)
	for v := start; v <= rg.Max+step/2; v += step {
		locs = append(locs, v)
	}
	return locs, nil
}

// niceStep rounds a raw interval up to the nearest 1, 2 or 5 times a
// power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch frac := raw / mag; {
	case frac <= 1:
		return mag
	case frac <= 2:
		return 2 * mag
	case frac <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
