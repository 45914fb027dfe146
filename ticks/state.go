package ticks

import (
	"github.com/midbel/taxis/freq"
)

// State is the per-axis cache shared by one locator and its paired
// formatter. The tick table is rebuilt whenever the view interval
// moves and reused until it moves again.
type State struct {
	view  Range
	seen  bool
	cache *Info
}

func NewState() *State {
	return &State{}
}

// Update records the raw view interval, dropping the cached table when
// the interval changed since the last call.
func (s *State) Update(view Range) {
	if !s.seen || view != s.view {
		s.cache = nil
	}
	s.view = view
	s.seen = true
}

func (s *State) Reset() {
	s.cache = nil
	s.seen = false
}

func (s *State) refresh(finder Finder, f freq.Freq, rg Range) (*Info, error) {
	if s.cache != nil {
		return s.cache, nil
	}
	info, err := finder(rg.Min, rg.Max, f)
	if err != nil {
		return nil, err
	}
	s.cache = info
	return info, nil
}
