package ticks

import (
	"math"

	"github.com/midbel/taxis/period"
)

// Info holds, for every frequency-native ordinal of the visible
// window, whether the position deserves a major or a minor tick and
// the pattern its label uses. An empty pattern means no label.
type Info struct {
	Val []int64
	Maj []bool
	Min []bool
	Fmt []string
}

func makeInfo(first, last int64) *Info {
	span := int(last - first + 1)
	info := Info{
		Val: make([]int64, span),
		Maj: make([]bool, span),
		Min: make([]bool, span),
		Fmt: make([]string, span),
	}
	for i := range info.Val {
		info.Val[i] = first + int64(i)
	}
	return &info
}

func (i *Info) Len() int {
	return len(i.Val)
}

// Take compresses the table to the ordinals flagged minor or major.
func (i *Info) Take(minor bool) []float64 {
	flags := i.Maj
	if minor {
		flags = i.Min
	}
	var locs []float64
	for j, ok := range flags {
		if ok {
			locs = append(locs, float64(i.Val[j]))
		}
	}
	return locs
}

// periodBreak returns the indices where the given field changes from
// one period to the next.
func periodBreak(dates []period.Period, field func(period.Period) int) []int {
	var breaks []int
	for i, p := range dates {
		if field(p) != field(p.Add(-1)) {
			breaks = append(breaks, i)
		}
	}
	return breaks
}

// hasLevelLabel reports whether the break set yields at least one
// visible label. A lone break at index 0 is not visible when the view
// minimum is fractional: the true boundary sits outside the window.
func hasLevelLabel(flags []int, vmin float64) bool {
	if len(flags) == 0 {
		return false
	}
	if len(flags) == 1 && flags[0] == 0 && frac(vmin) > 0 {
		return false
	}
	return true
}

// firstLabel picks the position carrying the first full label,
// preferring the second break over a clipped first one.
func firstLabel(flags []int, vmin float64) (int, bool) {
	if len(flags) == 0 {
		return 0, false
	}
	if flags[0] == 0 && len(flags) > 1 && frac(vmin) > 0 {
		return flags[1], true
	}
	return flags[0], true
}

func frac(v float64) float64 {
	return v - math.Floor(v)
}
