package freq

import (
	"errors"
	"testing"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		Input string
		Want  Freq
	}{
		{
			Input: "D",
			Want:  Daily,
		},
		{
			Input: "day",
			Want:  Daily,
		},
		{
			Input: "B",
			Want:  Business,
		},
		{
			Input: "W-MON",
			Want:  Weekly,
		},
		{
			Input: "M",
			Want:  Monthly,
		},
		{
			Input: "Q-DEC",
			Want:  Quarterly,
		},
		{
			Input: "A",
			Want:  Annual,
		},
		{
			Input: "Y",
			Want:  Annual,
		},
		{
			Input: "H",
			Want:  Hourly,
		},
		{
			Input: "min",
			Want:  Minutely,
		},
		{
			Input: "T",
			Want:  Minutely,
		},
		{
			Input: "S",
			Want:  Secondly,
		},
		{
			Input: "U",
			Want:  Undefined,
		},
	}
	for _, c := range tests {
		got, err := FromString(c.Input)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.Input, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s: frequency mismatched! want %s - got %s", c.Input, c.Want, got)
		}
	}
	if _, err := FromString("X"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("X: error expected, got %v", err)
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		Freq Freq
		Want Group
	}{
		{
			Freq: Annual,
			Want: GroupAnnual,
		},
		{
			Freq: Quarterly,
			Want: GroupQuarterly,
		},
		{
			Freq: Monthly,
			Want: GroupMonthly,
		},
		{
			Freq: Weekly,
			Want: GroupWeekly,
		},
		{
			Freq: Business,
			Want: GroupDaily,
		},
		{
			Freq: Daily,
			Want: GroupDaily,
		},
		{
			Freq: Hourly,
			Want: GroupSubDaily,
		},
		{
			Freq: Minutely,
			Want: GroupSubDaily,
		},
		{
			Freq: Secondly,
			Want: GroupSubDaily,
		},
		{
			Freq: Undefined,
			Want: GroupUndefined,
		},
	}
	for _, c := range tests {
		if got := c.Freq.Group(); got != c.Want {
			t.Errorf("%s: group mismatched! want %v - got %v", c.Freq, c.Want, got)
		}
	}
}
