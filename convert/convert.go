package convert

import (
	"time"

	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/period"
	"github.com/midbel/taxis/ticks"
	"github.com/midbel/taxis/value"
)

// Unit tags the quantity plotted along an axis.
type Unit string

const (
	UnitNone   Unit = ""
	UnitTime   Unit = "time"
	UnitDate   Unit = "date"
	UnitPeriod Unit = "period"
)

type Axis = ticks.Axis

// FreqAxis is an axis configured with a plotting frequency.
type FreqAxis interface {
	Axis
	Freq() (freq.Freq, bool)
}

type Locator interface {
	Locations() ([]float64, error)
}

type Labeler interface {
	Label(x float64) (string, error)
}

// AxisInfo carries the default tick behaviour a converter suggests for
// an axis unit.
type AxisInfo struct {
	MajorLocator   Locator
	MajorFormatter Labeler
	Label          string
}

// Converter adapts raw time-like values to numeric axis coordinates.
// Convert handles scalars and sequences alike; values it does not
// recognize pass through unchanged unless the adapter documents
// otherwise.
type Converter interface {
	Convert(v any, unit Unit, ax Axis) (any, error)
	DefaultUnit(v any, ax Axis) Unit
	AxisInfo(unit Unit, ax Axis) (*AxisInfo, error)
}

// For returns the converter registered for the type of v, or nil when
// v is not time-like.
func For(v any) Converter {
	switch v.(type) {
	case value.Clock:
		return TimeConverter{}
	case time.Time, value.Stamp:
		return DatetimeConverter{}
	case period.Period, value.Span:
		return PeriodConverter{}
	default:
		return nil
	}
}
