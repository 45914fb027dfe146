package ticks

import (
	"fmt"
	"math"

	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/internal/num"
	"github.com/midbel/taxis/period"
)

// Finder builds the tick table for the inclusive ordinal range
// [floor(vmin), floor(vmax)] under the given frequency.
type Finder func(vmin, vmax float64, f freq.Freq) (*Info, error)

// ForFreq routes a frequency to the finder handling its group.
func ForFreq(f freq.Freq) (Finder, error) {
	switch f.Group() {
	case freq.GroupAnnual:
		return annualFinder, nil
	case freq.GroupQuarterly:
		return quarterlyFinder, nil
	case freq.GroupMonthly:
		return monthlyFinder, nil
	case freq.GroupWeekly, freq.GroupDaily, freq.GroupSubDaily, freq.GroupUndefined:
		return dailyFinder, nil
	default:
		return nil, fmt.Errorf("%w: %s", freq.ErrUnsupported, f)
	}
}

func dailyFinder(vmin, vmax float64, f freq.Freq) (*Info, error) {
	var perday, peryear, permonth float64
	switch f {
	case freq.Secondly:
		perday = 24 * 60 * 60
	case freq.Minutely:
		perday = 24 * 60
	case freq.Hourly:
		perday = 24
	case freq.Business:
		peryear, permonth = 261, 19
	case freq.Daily:
		peryear, permonth = 365, 28
	case freq.Weekly:
		peryear, permonth = 52, 3
	case freq.Undefined:
		peryear, permonth = 100, 10
	default:
		return nil, fmt.Errorf("%w: %s", freq.ErrUnsupported, f)
	}
	if perday > 0 {
		peryear = 365 * perday
		permonth = 28 * perday
	}

	var (
		vminOrig = vmin
		first    = int64(math.Floor(vmin))
		last     = int64(math.Floor(vmax))
		span     = float64(last - first + 1)
		info     = makeInfo(first, last)
		dates    = make([]period.Period, info.Len())
	)
	for i := range dates {
		dates[i] = period.New(info.Val[i], f)
	}
	info.Maj[0] = true
	info.Maj[info.Len()-1] = true

	var (
		dayStart   = periodBreak(dates, period.Period.Day)
		monthStart = periodBreak(dates, period.Period.Month)
	)

	markFull := func(flags []int, pattern string) {
		if i, ok := firstLabel(flags, vminOrig); ok {
			info.Fmt[i] = pattern
		}
	}

	hourFinder := func(interval int, forceYear bool) {
		hourStart := periodBreak(dates, period.Period.Hour)
		for _, i := range dayStart {
			info.Maj[i] = true
		}
		for _, i := range hourStart {
			if dates[i].Hour()%interval == 0 {
				info.Min[i] = true
				info.Fmt[i] = "%H:%M"
			}
		}
		yearStart := periodBreak(dates, period.Period.Year)
		for _, i := range dayStart {
			info.Fmt[i] = "%H:%M\n%d-%b"
		}
		for _, i := range yearStart {
			info.Fmt[i] = "%H:%M\n%d-%b\n%Y"
		}
		if forceYear && !hasLevelLabel(yearStart, vminOrig) {
			markFull(dayStart, "%H:%M\n%d-%b\n%Y")
		}
	}

	minuteFinder := func(interval int) {
		var (
			hourStart   = periodBreak(dates, period.Period.Hour)
			minuteStart = periodBreak(dates, period.Period.Minute)
			yearStart   = periodBreak(dates, period.Period.Year)
		)
		for _, i := range hourStart {
			info.Maj[i] = true
		}
		for _, i := range minuteStart {
			if dates[i].Minute()%interval == 0 {
				info.Min[i] = true
				info.Fmt[i] = "%H:%M"
			}
		}
		for _, i := range dayStart {
			info.Fmt[i] = "%H:%M\n%d-%b"
		}
		for _, i := range yearStart {
			info.Fmt[i] = "%H:%M\n%d-%b\n%Y"
		}
	}

	secondFinder := func(interval int) {
		var (
			minuteStart = periodBreak(dates, period.Period.Minute)
			secondStart = periodBreak(dates, period.Period.Second)
			yearStart   = periodBreak(dates, period.Period.Year)
		)
		for _, i := range minuteStart {
			info.Maj[i] = true
		}
		for _, i := range secondStart {
			if dates[i].Second()%interval == 0 {
				info.Min[i] = true
				info.Fmt[i] = "%H:%M:%S"
			}
		}
		for _, i := range dayStart {
			info.Fmt[i] = "%H:%M:%S\n%d-%b"
		}
		for _, i := range yearStart {
			info.Fmt[i] = "%H:%M:%S\n%d-%b\n%Y"
		}
	}

	switch {
	case span <= permonth:
		switch {
		case span < perday/12000:
			secondFinder(1)
		case span < perday/6000:
			secondFinder(2)
		case span < perday/2400:
			secondFinder(5)
		case span < perday/1200:
			secondFinder(10)
		case span < perday/800:
			secondFinder(15)
		case span < perday/400:
			secondFinder(30)
		case span < perday/150:
			minuteFinder(1)
		case span < perday/70:
			minuteFinder(2)
		case span < perday/24:
			minuteFinder(5)
		case span < perday/12:
			minuteFinder(15)
		case span < perday/6:
			minuteFinder(30)
		case span < perday/2.5:
			hourFinder(1, false)
		case span < perday/1.5:
			hourFinder(2, false)
		case span < perday*1.25:
			hourFinder(3, false)
		case span < perday*2.5:
			hourFinder(6, true)
		case span < perday*4:
			hourFinder(12, true)
		default:
			yearStart := periodBreak(dates, period.Period.Year)
			for _, i := range monthStart {
				info.Maj[i] = true
			}
			for _, i := range dayStart {
				info.Min[i] = true
				info.Fmt[i] = "%d"
			}
			for _, i := range monthStart {
				info.Fmt[i] = "%d\n%b"
			}
			for _, i := range yearStart {
				info.Fmt[i] = "%d\n%b\n%Y"
			}
			if !hasLevelLabel(yearStart, vminOrig) {
				if !hasLevelLabel(monthStart, vminOrig) {
					markFull(dayStart, "%d\n%b\n%Y")
				} else {
					markFull(monthStart, "%d\n%b\n%Y")
				}
			}
		}
	case span <= peryear/4:
		var (
			weekStart = periodBreak(dates, period.Period.Week)
			yearStart = periodBreak(dates, period.Period.Year)
		)
		for _, i := range monthStart {
			info.Maj[i] = true
		}
		if perday > 0 {
			for _, i := range dayStart {
				info.Min[i] = true
			}
		} else {
			for i := range info.Min {
				info.Min[i] = true
			}
		}
		for _, i := range weekStart {
			info.Fmt[i] = "%d"
		}
		for _, i := range monthStart {
			info.Fmt[i] = "%d\n%b"
		}
		for _, i := range yearStart {
			info.Fmt[i] = "%d\n%b\n%Y"
		}
		if !hasLevelLabel(yearStart, vminOrig) {
			if !hasLevelLabel(monthStart, vminOrig) {
				markFull(weekStart, "%d\n%b\n%Y")
			} else {
				markFull(monthStart, "%d\n%b\n%Y")
			}
		}
	case span <= 1.15*peryear:
		var (
			yearStart = periodBreak(dates, period.Period.Year)
			weekStart = periodBreak(dates, period.Period.Week)
		)
		for _, i := range monthStart {
			info.Maj[i] = true
		}
		for _, i := range weekStart {
			info.Min[i] = true
		}
		for _, i := range yearStart {
			info.Min[i] = false
		}
		for _, i := range monthStart {
			info.Min[i] = false
			info.Fmt[i] = "%b"
		}
		for _, i := range yearStart {
			info.Fmt[i] = "%b\n%Y"
		}
		if !hasLevelLabel(yearStart, vminOrig) {
			markFull(monthStart, "%b\n%Y")
		}
	case span <= 2.5*peryear:
		var (
			yearStart    = periodBreak(dates, period.Period.Year)
			quarterStart = periodBreak(dates, period.Period.Quarter)
		)
		for _, i := range quarterStart {
			info.Maj[i] = true
			info.Fmt[i] = "%b"
		}
		for _, i := range monthStart {
			info.Min[i] = true
		}
		for _, i := range yearStart {
			info.Fmt[i] = "%b\n%Y"
		}
	case span <= 4*peryear:
		yearStart := periodBreak(dates, period.Period.Year)
		for _, i := range yearStart {
			info.Maj[i] = true
		}
		for _, i := range monthStart {
			info.Min[i] = true
			if m := dates[i].Month(); m == 1 || m == 7 {
				info.Fmt[i] = "%b"
			}
		}
		for _, i := range yearStart {
			info.Min[i] = false
			info.Fmt[i] = "%b\n%Y"
		}
	case span <= 11*peryear:
		var (
			yearStart    = periodBreak(dates, period.Period.Year)
			quarterStart = periodBreak(dates, period.Period.Quarter)
		)
		for _, i := range quarterStart {
			info.Min[i] = true
		}
		for _, i := range yearStart {
			info.Maj[i] = true
			info.Min[i] = false
			info.Fmt[i] = "%Y"
		}
	default:
		var (
			yearStart    = periodBreak(dates, period.Period.Year)
			minSp, majSp = annualSpacing(span / peryear)
		)
		for _, i := range yearStart {
			year := int64(dates[i].Year())
			if num.Mod(year, majSp) == 0 {
				info.Maj[i] = true
				info.Fmt[i] = "%Y"
			}
			if num.Mod(year, minSp) == 0 {
				info.Min[i] = true
			}
		}
	}
	return info, nil
}

func monthlyFinder(vmin, vmax float64, f freq.Freq) (*Info, error) {
	const peryear = 12
	var (
		vminOrig = vmin
		first    = int64(math.Floor(vmin))
		last     = int64(math.Floor(vmax))
		span     = float64(last - first + 1)
		info     = makeInfo(first, last)
	)
	var yearStart []int
	for i, v := range info.Val {
		if num.Mod(v, 12) == 0 {
			yearStart = append(yearStart, i)
		}
	}

	switch {
	case span <= 1.15*peryear:
		for _, i := range yearStart {
			info.Maj[i] = true
		}
		for i := range info.Min {
			info.Min[i] = true
			info.Fmt[i] = "%b"
		}
		for _, i := range yearStart {
			info.Fmt[i] = "%b\n%Y"
		}
		if !hasLevelLabel(yearStart, vminOrig) {
			var idx int
			if info.Len() > 1 {
				idx = 1
			}
			info.Fmt[idx] = "%b\n%Y"
		}
	case span < 2.5*peryear:
		for _, i := range yearStart {
			info.Maj[i] = true
		}
		for i, v := range info.Val {
			info.Min[i] = true
			if num.Mod(v, 3) == 0 {
				info.Fmt[i] = "%b"
			}
		}
		for _, i := range yearStart {
			info.Fmt[i] = "%b\n%Y"
		}
	case span <= 4*peryear:
		for _, i := range yearStart {
			info.Maj[i] = true
		}
		for i, v := range info.Val {
			info.Min[i] = true
			if m := num.Mod(v, 12); m == 0 || m == 6 {
				info.Fmt[i] = "%b"
			}
		}
		for _, i := range yearStart {
			info.Fmt[i] = "%b\n%Y"
		}
	case span <= 11*peryear:
		for i, v := range info.Val {
			if num.Mod(v, 3) == 0 {
				info.Min[i] = true
			}
		}
		for _, i := range yearStart {
			info.Maj[i] = true
			info.Fmt[i] = "%Y"
		}
	default:
		minSp, majSp := annualSpacing(span / peryear)
		for _, i := range yearStart {
			year := num.FloorDiv(info.Val[i], 12) + 1
			if num.Mod(year, majSp) == 0 {
				info.Maj[i] = true
				info.Fmt[i] = "%Y"
			}
			if num.Mod(year, minSp) == 0 {
				info.Min[i] = true
			}
		}
	}
	return info, nil
}

func quarterlyFinder(vmin, vmax float64, f freq.Freq) (*Info, error) {
	const peryear = 4
	var (
		vminOrig = vmin
		first    = int64(math.Floor(vmin))
		last     = int64(math.Floor(vmax))
		span     = float64(last - first + 1)
		info     = makeInfo(first, last)
	)
	var yearStart []int
	for i, v := range info.Val {
		if num.Mod(v, 4) == 0 {
			yearStart = append(yearStart, i)
		}
	}

	switch {
	case span <= 3.5*peryear:
		for _, i := range yearStart {
			info.Maj[i] = true
		}
		for i := range info.Min {
			info.Min[i] = true
			info.Fmt[i] = "Q%q"
		}
		for _, i := range yearStart {
			info.Fmt[i] = "Q%q\n%F"
		}
		if !hasLevelLabel(yearStart, vminOrig) {
			var idx int
			if info.Len() > 1 {
				idx = 1
			}
			info.Fmt[idx] = "Q%q\n%F"
		}
	case span <= 11*peryear:
		for _, i := range yearStart {
			info.Maj[i] = true
		}
		for i := range info.Min {
			info.Min[i] = true
		}
		for _, i := range yearStart {
			info.Fmt[i] = "%F"
		}
	default:
		minSp, majSp := annualSpacing(span / peryear)
		for _, i := range yearStart {
			year := num.FloorDiv(info.Val[i], 4) + 1
			if num.Mod(year, majSp) == 0 {
				info.Maj[i] = true
				info.Fmt[i] = "%F"
			}
			if num.Mod(year, minSp) == 0 {
				info.Min[i] = true
			}
		}
	}
	return info, nil
}

func annualFinder(vmin, vmax float64, f freq.Freq) (*Info, error) {
	var (
		first        = int64(math.Floor(vmin))
		last         = int64(math.Floor(vmax + 1))
		info         = makeInfo(first, last)
		minSp, majSp = annualSpacing(float64(last - first + 1))
	)
	for i, v := range info.Val {
		if num.Mod(v, majSp) == 0 {
			info.Maj[i] = true
			info.Fmt[i] = "%Y"
		}
		if num.Mod(v, minSp) == 0 {
			info.Min[i] = true
		}
	}
	return info, nil
}
