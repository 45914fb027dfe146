package period

import (
	"time"

	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/internal/num"
)

const (
	secondsPerDay = 86400
	epochWeekday  = 3
)

// Period identifies one interval of a fixed frequency by an integer
// ordinal. Ordinal 0 is the period containing 1970-01-01.
type Period struct {
	ordinal int64
	freq    freq.Freq
}

func New(ordinal int64, f freq.Freq) Period {
	return Period{
		ordinal: ordinal,
		freq:    f,
	}
}

func FromTime(t time.Time, f freq.Freq) Period {
	t = t.UTC()
	var (
		days = num.FloorDiv(t.Unix(), secondsPerDay)
		ord  int64
	)
	switch f {
	case freq.Annual:
		ord = int64(t.Year()) - 1970
	case freq.Quarterly:
		ord = (int64(t.Year())-1970)*4 + int64(t.Month()-1)/3
	case freq.Monthly:
		ord = (int64(t.Year())-1970)*12 + int64(t.Month()) - 1
	case freq.Weekly:
		ord = num.FloorDiv(days+epochWeekday, 7)
	case freq.Business:
		ord = businessFromDays(days)
	case freq.Hourly:
		ord = num.FloorDiv(t.Unix(), 3600)
	case freq.Minutely:
		ord = num.FloorDiv(t.Unix(), 60)
	case freq.Secondly:
		ord = t.Unix()
	default:
		ord = days
	}
	return New(ord, f)
}

func (p Period) Ordinal() int64 {
	return p.ordinal
}

func (p Period) Freq() freq.Freq {
	return p.freq
}

func (p Period) Add(n int64) Period {
	return New(p.ordinal+n, p.freq)
}

// AsFreq reprojects the period onto another frequency, anchored on the
// period start.
func (p Period) AsFreq(f freq.Freq) Period {
	if f == p.freq {
		return p
	}
	return FromTime(p.Time(), f)
}

// AsFreqEnd reprojects the period onto another frequency, anchored on
// the last instant of the period. A coarse period lands on its closing
// fine period, the convention for plotting a period on a finer axis.
func (p Period) AsFreqEnd(f freq.Freq) Period {
	if f == p.freq {
		return p
	}
	end := p.Add(1).Time().Add(-time.Nanosecond)
	return FromTime(end, f)
}

// Time returns the instant the period starts at, in UTC.
func (p Period) Time() time.Time {
	ord := p.ordinal
	switch p.freq {
	case freq.Annual:
		return time.Date(int(1970+ord), time.January, 1, 0, 0, 0, 0, time.UTC)
	case freq.Quarterly:
		var (
			year  = 1970 + num.FloorDiv(ord, 4)
			month = num.Mod(ord, 4)*3 + 1
		)
		return time.Date(int(year), time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	case freq.Monthly:
		var (
			year  = 1970 + num.FloorDiv(ord, 12)
			month = num.Mod(ord, 12) + 1
		)
		return time.Date(int(year), time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	case freq.Weekly:
		return dayTime(ord*7 - epochWeekday)
	case freq.Business:
		return dayTime(businessToDays(ord))
	case freq.Hourly:
		return time.Unix(ord*3600, 0).UTC()
	case freq.Minutely:
		return time.Unix(ord*60, 0).UTC()
	case freq.Secondly:
		return time.Unix(ord, 0).UTC()
	default:
		return dayTime(ord)
	}
}

func (p Period) Year() int {
	return p.Time().Year()
}

func (p Period) Quarter() int {
	return (int(p.Time().Month())-1)/3 + 1
}

func (p Period) Month() int {
	return int(p.Time().Month())
}

// Week returns the ISO week number of the period start.
func (p Period) Week() int {
	_, week := p.Time().ISOWeek()
	return week
}

func (p Period) Day() int {
	return p.Time().Day()
}

func (p Period) Hour() int {
	return p.Time().Hour()
}

func (p Period) Minute() int {
	return p.Time().Minute()
}

func (p Period) Second() int {
	return p.Time().Second()
}

func (p Period) String() string {
	str, _ := p.Format(defaultPattern(p.freq))
	return str
}

func dayTime(days int64) time.Time {
	return time.Unix(days*secondsPerDay, 0).UTC()
}

// Business ordinals count weekdays since the epoch; weekend dates roll
// back to the preceding Friday.
func businessFromDays(days int64) int64 {
	var (
		weeks   = num.FloorDiv(days+epochWeekday, 7)
		weekday = num.Mod(days+epochWeekday, 7)
	)
	if weekday > 4 {
		weekday = 4
	}
	return weeks*5 + weekday - epochWeekday
}

func businessToDays(ord int64) int64 {
	var (
		base  = ord + epochWeekday
		weeks = num.FloorDiv(base, 5)
		rest  = num.Mod(base, 5)
	)
	return weeks*7 + rest - epochWeekday
}

func defaultPattern(f freq.Freq) string {
	switch f {
	case freq.Annual:
		return "%Y"
	case freq.Quarterly:
		return "%FQ%q"
	case freq.Monthly:
		return "%Y-%m"
	case freq.Hourly:
		return "%Y-%m-%d %H:00"
	case freq.Minutely:
		return "%Y-%m-%d %H:%M"
	case freq.Secondly:
		return "%Y-%m-%d %H:%M:%S"
	default:
		return "%Y-%m-%d"
	}
}
