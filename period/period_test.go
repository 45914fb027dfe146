package period

import (
	"testing"
	"time"

	"github.com/midbel/taxis/freq"
)

func TestFromTime(t *testing.T) {
	tests := []struct {
		Time time.Time
		Freq freq.Freq
		Want int64
	}{
		{
			Time: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			Freq: freq.Annual,
			Want: 0,
		},
		{
			Time: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			Freq: freq.Quarterly,
			Want: 0,
		},
		{
			Time: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			Freq: freq.Monthly,
			Want: 0,
		},
		{
			Time: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			Freq: freq.Weekly,
			Want: 0,
		},
		{
			Time: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			Freq: freq.Business,
			Want: 0,
		},
		{
			Time: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			Freq: freq.Daily,
			Want: 0,
		},
		{
			Time: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			Freq: freq.Hourly,
			Want: 0,
		},
		{
			Time: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
			Freq: freq.Daily,
			Want: 18336,
		},
		{
			Time: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
			Freq: freq.Monthly,
			Want: 602,
		},
		{
			Time: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
			Freq: freq.Quarterly,
			Want: 200,
		},
		{
			Time: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
			Freq: freq.Annual,
			Want: 50,
		},
		{
			Time: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
			Freq: freq.Weekly,
			Want: 2619,
		},
		{
			Time: time.Date(2020, 3, 13, 0, 0, 0, 0, time.UTC),
			Freq: freq.Business,
			Want: 13096,
		},
		{
			Time: time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC),
			Freq: freq.Business,
			Want: 13096,
		},
		{
			Time: time.Date(1970, 1, 2, 6, 30, 0, 0, time.UTC),
			Freq: freq.Hourly,
			Want: 30,
		},
		{
			Time: time.Date(1970, 1, 1, 0, 2, 30, 0, time.UTC),
			Freq: freq.Minutely,
			Want: 2,
		},
		{
			Time: time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC),
			Freq: freq.Daily,
			Want: -1,
		},
		{
			Time: time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC),
			Freq: freq.Monthly,
			Want: -1,
		},
		{
			Time: time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC),
			Freq: freq.Business,
			Want: -1,
		},
	}
	for _, c := range tests {
		got := FromTime(c.Time, c.Freq)
		if got.Ordinal() != c.Want {
			t.Errorf("%s (%s): ordinal mismatched! want %d - got %d", c.Time, c.Freq, c.Want, got.Ordinal())
		}
	}
}

func TestTimeRoundTrip(t *testing.T) {
	all := []freq.Freq{
		freq.Annual,
		freq.Quarterly,
		freq.Monthly,
		freq.Weekly,
		freq.Business,
		freq.Daily,
		freq.Hourly,
		freq.Minutely,
		freq.Secondly,
		freq.Undefined,
	}
	for _, f := range all {
		for _, ord := range []int64{-100, -1, 0, 1, 13096, 18336} {
			p := New(ord, f)
			back := FromTime(p.Time(), f)
			if back.Ordinal() != ord {
				t.Errorf("%s: round trip mismatched! want %d - got %d", f, ord, back.Ordinal())
			}
		}
	}
}

func TestAsFreq(t *testing.T) {
	var (
		month = FromTime(time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), freq.Monthly)
		day   = month.AsFreq(freq.Daily)
	)
	if want := int64(18322); day.Ordinal() != want {
		t.Errorf("asfreq anchored on period start: want %d - got %d", want, day.Ordinal())
	}
	if got := day.AsFreq(freq.Daily); got != day {
		t.Errorf("asfreq to same frequency should not move: got %v", got)
	}
}

func TestAsFreqEnd(t *testing.T) {
	tests := []struct {
		Ordinal int64
		Freq    freq.Freq
		Target  freq.Freq
		Want    int64
	}{
		{
			Ordinal: 50,
			Freq:    freq.Annual,
			Target:  freq.Daily,
			Want:    18627,
		},
		{
			Ordinal: 602,
			Freq:    freq.Monthly,
			Target:  freq.Daily,
			Want:    18352,
		},
		{
			Ordinal: 200,
			Freq:    freq.Quarterly,
			Target:  freq.Monthly,
			Want:    602,
		},
		{
			Ordinal: 18336,
			Freq:    freq.Daily,
			Target:  freq.Monthly,
			Want:    602,
		},
		{
			Ordinal: 18336,
			Freq:    freq.Daily,
			Target:  freq.Daily,
			Want:    18336,
		},
	}
	for _, c := range tests {
		got := New(c.Ordinal, c.Freq).AsFreqEnd(c.Target)
		if got.Ordinal() != c.Want {
			t.Errorf("%d (%s -> %s): want %d - got %d", c.Ordinal, c.Freq, c.Target, c.Want, got.Ordinal())
		}
	}
}

func TestAccessors(t *testing.T) {
	p := New(602, freq.Monthly)
	if p.Year() != 2020 || p.Month() != 3 || p.Quarter() != 1 {
		t.Errorf("accessors mismatched: got %d-%d Q%d", p.Year(), p.Month(), p.Quarter())
	}
	d := New(18336, freq.Daily)
	if d.Day() != 15 || d.Week() != 11 {
		t.Errorf("accessors mismatched: got day %d week %d", d.Day(), d.Week())
	}
}
