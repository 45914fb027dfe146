package ticks

import (
	"slices"
	"testing"

	"github.com/midbel/taxis/freq"
)

func TestLocatorLocations(t *testing.T) {
	axis := SimpleAxis{
		View: NewRange(18240, 18279),
	}
	loc, err := NewLocator(freq.Daily, false, NewState())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	loc.SetAxis(&axis)

	locs, err := loc.Locations()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := []float64{18240, 18262, 18279}; !slices.Equal(locs, want) {
		t.Errorf("locations mismatched! want %v - got %v", want, locs)
	}
}

func TestLocatorInvertedView(t *testing.T) {
	axis := SimpleAxis{
		View: NewRange(18279, 18240),
	}
	loc, err := NewLocator(freq.Daily, false, NewState())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	loc.SetAxis(&axis)

	locs, err := loc.Locations()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := []float64{18240, 18262, 18279}; !slices.Equal(locs, want) {
		t.Errorf("locations mismatched! want %v - got %v", want, locs)
	}
}

func TestLocatorCache(t *testing.T) {
	var (
		axis = SimpleAxis{
			View: NewRange(18240, 18279),
		}
		calls int
	)
	loc, err := NewLocator(freq.Daily, false, NewState())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	loc.SetAxis(&axis)

	inner := loc.finder
	loc.finder = func(vmin, vmax float64, f freq.Freq) (*Info, error) {
		calls++
		return inner(vmin, vmax, f)
	}

	first, err := loc.Locations()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	second, err := loc.Locations()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if calls != 1 {
		t.Errorf("same view should reuse the cached table: finder ran %d times", calls)
	}
	if !slices.Equal(first, second) {
		t.Errorf("locations changed between calls: %v then %v", first, second)
	}

	axis.View = NewRange(18250, 18289)
	if _, err := loc.Locations(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if calls != 2 {
		t.Errorf("moved view should rebuild the table: finder ran %d times", calls)
	}
}

func TestLocatorFixedBase(t *testing.T) {
	axis := SimpleAxis{
		View: NewRange(0, 17),
	}
	loc, err := NewLocator(freq.Daily, false, NewState())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	loc.SetAxis(&axis)
	loc.SetBase(5)

	locs, err := loc.Locations()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := []float64{5, 10, 15}; !slices.Equal(locs, want) {
		t.Errorf("locations mismatched! want %v - got %v", want, locs)
	}
}

func TestLocatorFixedBaseNegative(t *testing.T) {
	axis := SimpleAxis{
		View: NewRange(-7, 11),
	}
	loc, err := NewLocator(freq.Daily, false, NewState())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	loc.SetAxis(&axis)
	loc.SetBase(5)

	locs, err := loc.Locations()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := []float64{-5, 0, 5, 10}; !slices.Equal(locs, want) {
		t.Errorf("locations mismatched! want %v - got %v", want, locs)
	}
}

func TestAutoscale(t *testing.T) {
	axis := SimpleAxis{
		Data: NewRange(18240, 18279),
	}
	loc, err := NewLocator(freq.Daily, false, NewState())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	loc.SetAxis(&axis)

	vmin, vmax, err := loc.Autoscale()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if vmin != 18240 || vmax != 18279 {
		t.Errorf("limits mismatched! want [18240, 18279] - got [%g, %g]", vmin, vmax)
	}
}

func TestAutoscaleSingle(t *testing.T) {
	axis := SimpleAxis{
		Data: NewRange(18262, 18262),
	}
	loc, err := NewLocator(freq.Daily, false, NewState())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	loc.SetAxis(&axis)

	vmin, vmax, err := loc.Autoscale()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if vmin != 18261 || vmax != 18263 {
		t.Errorf("degenerate interval should be widened: got [%g, %g]", vmin, vmax)
	}
}
