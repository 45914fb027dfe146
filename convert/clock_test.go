package convert

import (
	"errors"
	"slices"
	"testing"

	"github.com/midbel/taxis/parse"
	"github.com/midbel/taxis/value"
)

func TestTimeConvert(t *testing.T) {
	tests := []struct {
		Input any
		Want  any
	}{
		{
			Input: "13:30:15",
			Want:  48615.0,
		},
		{
			Input: value.Clock{Hour: 13, Min: 30, Sec: 15},
			Want:  48615.0,
		},
		{
			Input: value.Clock{Hour: 1, Micro: 500000},
			Want:  3600.5,
		},
		{
			Input: 42,
			Want:  42.0,
		},
		{
			Input: value.Number(7.5),
			Want:  7.5,
		},
	}
	var conv TimeConverter
	for _, c := range tests {
		got, err := conv.Convert(c.Input, UnitNone, nil)
		if err != nil {
			t.Errorf("%v: unexpected error: %s", c.Input, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%v: want %v - got %v", c.Input, c.Want, got)
		}
	}
}

func TestTimeConvertSlice(t *testing.T) {
	var conv TimeConverter
	got, err := conv.Convert([]string{"00:00", "12:00"}, UnitNone, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := []float64{0, 43200}; !slices.Equal(got.([]float64), want) {
		t.Errorf("want %v - got %v", want, got)
	}
}

func TestTimeConvertError(t *testing.T) {
	var conv TimeConverter
	if _, err := conv.Convert("not a time", UnitNone, nil); !errors.Is(err, parse.ErrParse) {
		t.Errorf("error expected, got %v", err)
	}
}

func TestTimeAxisInfo(t *testing.T) {
	var conv TimeConverter
	info, err := conv.AxisInfo(UnitTime, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if info == nil || info.Label != "time" || info.MajorLocator == nil || info.MajorFormatter == nil {
		t.Errorf("incomplete axis info: %+v", info)
	}
	info, err = conv.AxisInfo(UnitDate, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if info != nil {
		t.Errorf("no axis info expected for foreign unit, got %+v", info)
	}
}

func TestClockFormatter(t *testing.T) {
	tests := []struct {
		Input float64
		Want  string
	}{
		{
			Input: 48615,
			Want:  "13:30:15",
		},
		{
			Input: 48615.5,
			Want:  "13:30:15.500000",
		},
		{
			Input: 0,
			Want:  "00:00:00",
		},
	}
	var form ClockFormatter
	for _, c := range tests {
		got, err := form.Label(c.Input)
		if err != nil {
			t.Errorf("%g: unexpected error: %s", c.Input, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%g: want %q - got %q", c.Input, c.Want, got)
		}
	}
}
