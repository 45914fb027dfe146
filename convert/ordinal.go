package convert

import (
	"time"

	"github.com/midbel/taxis/internal/num"
	"github.com/midbel/taxis/value"
)

const (
	hoursPerDay   = 24
	minutesPerDay = 60 * hoursPerDay
	secondsPerDay = 60 * minutesPerDay
	microsPerDay  = 1e6 * secondsPerDay

	// day number of 1970-01-01 in the proleptic Gregorian calendar,
	// where 0001-01-01 is day 1. Keeps calendar coordinates
	// interoperable with the host library's date axes.
	epochOrdinal = 719163
)

// TimeToNum maps a clock time to its seconds-of-day coordinate.
func TimeToNum(c value.Clock) float64 {
	return c.Seconds()
}

// DateToNum maps a timestamp to a fractional-day coordinate. Zoned
// values are normalized to their UTC equivalent first.
func DateToNum(t time.Time) float64 {
	t = t.UTC()
	var (
		days = num.FloorDiv(t.Unix(), secondsPerDay)
		base = float64(days + epochOrdinal)
	)
	return base +
		float64(t.Hour())/hoursPerDay +
		float64(t.Minute())/minutesPerDay +
		float64(t.Second())/secondsPerDay +
		float64(t.Nanosecond()/1000)/microsPerDay
}

// clockToNum maps a bare clock time to a fraction of a day.
func clockToNum(c value.Clock) float64 {
	return c.Seconds() / secondsPerDay
}
