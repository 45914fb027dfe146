package ticks

import (
	"math"

	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/internal/num"
)

// Locator places the ticks of a fixed-frequency time axis. In dynamic
// mode positions come from the finder for the current view interval;
// otherwise ticks fall on multiples of a fixed base.
type Locator struct {
	freq    freq.Freq
	minor   bool
	dynamic bool
	base    int64

	axis   Axis
	state  *State
	finder Finder
}

func NewLocator(f freq.Freq, minor bool, state *State) (*Locator, error) {
	finder, err := ForFreq(f)
	if err != nil {
		return nil, err
	}
	loc := Locator{
		freq:    f,
		minor:   minor,
		dynamic: true,
		base:    1,
		state:   state,
		finder:  finder,
	}
	return &loc, nil
}

func (l *Locator) SetAxis(ax Axis) {
	l.axis = ax
}

// SetBase switches the locator to fixed spacing every base ordinals.
func (l *Locator) SetBase(base int64) {
	l.dynamic = false
	l.base = base
}

// Locations returns the tick positions for the current view interval.
func (l *Locator) Locations() ([]float64, error) {
	vmin, vmax := l.axis.ViewInterval()
	l.state.Update(NewRange(vmin, vmax))
	rg := NewRange(vmin, vmax).Normalize()
	if !l.dynamic {
		var (
			locs  []float64
			start = (num.FloorDiv(int64(math.Floor(rg.Min)), l.base) + 1) * l.base
		)
		for v := start; v <= int64(rg.Max); v += l.base {
			locs = append(locs, float64(v))
		}
		return locs, nil
	}
	info, err := l.state.refresh(l.finder, l.freq, rg)
	if err != nil {
		return nil, err
	}
	return info.Take(l.minor), nil
}

// Autoscale derives view limits from the data interval: the first and
// last major tick, pushed apart when they coincide.
func (l *Locator) Autoscale() (float64, float64, error) {
	dmin, dmax := l.axis.DataInterval()
	rg := NewRange(dmin, dmax).Normalize()
	info, err := l.finder(rg.Min, rg.Max, l.freq)
	if err != nil {
		return 0, 0, err
	}
	locs := info.Take(false)
	if len(locs) == 0 {
		vmin, vmax := nonsingular(rg.Min, rg.Max)
		return vmin, vmax, nil
	}
	vmin, vmax := locs[0], locs[len(locs)-1]
	if vmin == vmax {
		vmin--
		vmax++
	}
	vmin, vmax = nonsingular(vmin, vmax)
	return vmin, vmax, nil
}
