package ticks

import (
	"math"

	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/period"
)

// Formatter renders the label of each tick position located by its
// paired Locator. Labels are handed out once per rebuild: the host
// library may probe the same position repeatedly in one draw pass but
// must only render its text the first time.
type Formatter struct {
	freq  freq.Freq
	minor bool

	axis   Axis
	state  *State
	finder Finder

	locs   []float64
	labels map[int64]string
}

func NewFormatter(f freq.Freq, minor bool, state *State) (*Formatter, error) {
	finder, err := ForFreq(f)
	if err != nil {
		return nil, err
	}
	fr := Formatter{
		freq:   f,
		minor:  minor,
		state:  state,
		finder: finder,
	}
	return &fr, nil
}

func (f *Formatter) SetAxis(ax Axis) {
	f.axis = ax
}

// SetLocations rebuilds the label table for the current view interval.
// The positions themselves are not used to pick labels, the view
// interval is authoritative; they are only kept for inspection.
func (f *Formatter) SetLocations(locs []float64) error {
	f.locs = locs
	vmin, vmax := f.axis.ViewInterval()
	f.state.Update(NewRange(vmin, vmax))
	rg := NewRange(vmin, vmax).Normalize()

	info, err := f.state.refresh(f.finder, f.freq, rg)
	if err != nil {
		return err
	}
	f.labels = make(map[int64]string)
	for i := range info.Val {
		keep := info.Maj[i]
		if f.minor {
			keep = info.Min[i] && !info.Maj[i]
		}
		if keep {
			f.labels[info.Val[i]] = info.Fmt[i]
		}
	}
	return nil
}

// Label consumes and renders the label at position x. It returns the
// empty string when the position carries no label or was already
// rendered since the last SetLocations.
func (f *Formatter) Label(x float64) (string, error) {
	if f.labels == nil {
		return "", nil
	}
	key := int64(math.Floor(x))
	pattern, ok := f.labels[key]
	if ok {
		delete(f.labels, key)
	}
	if pattern == "" {
		return "", nil
	}
	return period.New(key, f.freq).Format(pattern)
}

// NewPair wires a locator and formatter around one shared State, the
// way an axis is configured for time display.
func NewPair(f freq.Freq, minor bool) (*Locator, *Formatter, error) {
	state := NewState()
	loc, err := NewLocator(f, minor, state)
	if err != nil {
		return nil, nil, err
	}
	fr, err := NewFormatter(f, minor, state)
	if err != nil {
		return nil, nil, err
	}
	return loc, fr, nil
}
