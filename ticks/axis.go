package ticks

import (
	"github.com/midbel/taxis/freq"
)

// Axis is the part of the host plotting protocol the tick machinery
// reads from: the visible window and the full data extent.
type Axis interface {
	ViewInterval() (float64, float64)
	DataInterval() (float64, float64)
}

type SimpleAxis struct {
	View Range
	Data Range

	freq    freq.Freq
	hasFreq bool
}

func (a *SimpleAxis) ViewInterval() (float64, float64) {
	return a.View.Min, a.View.Max
}

func (a *SimpleAxis) DataInterval() (float64, float64) {
	return a.Data.Min, a.Data.Max
}

func (a *SimpleAxis) SetFreq(f freq.Freq) {
	a.freq = f
	a.hasFreq = true
}

func (a *SimpleAxis) Freq() (freq.Freq, bool) {
	return a.freq, a.hasFreq
}
