package value

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

type Clock struct {
	Hour  int
	Min   int
	Sec   int
	Micro int
}

func ClockFromTime(t time.Time) Clock {
	return Clock{
		Hour:  t.Hour(),
		Min:   t.Minute(),
		Sec:   t.Second(),
		Micro: t.Nanosecond() / 1000,
	}
}

// ClockFromSeconds rebuilds a clock time from a fractional
// seconds-of-day coordinate.
func ClockFromSeconds(x float64) Clock {
	var (
		sec   = int(x)
		micro = int(math.Round((x - float64(sec)) * 1e6))
	)
	if micro >= 1e6 {
		micro -= 1e6
		sec++
	}
	var c Clock
	c.Micro = micro
	c.Min, c.Sec = sec/60, sec%60
	c.Hour, c.Min = c.Min/60, c.Min%60
	return c
}

func (Clock) Kind() Kind {
	return KindClock
}

func (c Clock) String() string {
	str := fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Min, c.Sec)
	if c.Micro != 0 {
		str += fmt.Sprintf(".%06d", c.Micro)
	}
	return str
}

// Seconds gives the seconds-of-day coordinate of the clock time,
// microseconds included.
func (c Clock) Seconds() float64 {
	sec := c.Hour*3600 + c.Min*60 + c.Sec
	return float64(sec) + float64(c.Micro)/1e6
}

type Stamp time.Time

func (Stamp) Kind() Kind {
	return KindStamp
}

func (s Stamp) String() string {
	return time.Time(s).Format(time.RFC3339)
}

func (s Stamp) Time() time.Time {
	return time.Time(s)
}

type Number float64

func (Number) Kind() Kind {
	return KindNumber
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
