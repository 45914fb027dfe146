package convert

import (
	"fmt"

	"github.com/midbel/taxis/parse"
	"github.com/midbel/taxis/ticks"
	"github.com/midbel/taxis/value"
)

// TimeConverter adapts clock times to a seconds-of-day axis.
type TimeConverter struct{}

func (c TimeConverter) Convert(v any, _ Unit, _ Axis) (any, error) {
	switch vs := v.(type) {
	case []any:
		res := make([]any, len(vs))
		for i := range vs {
			x, err := timeToNum(vs[i])
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case []string:
		res := make([]float64, len(vs))
		for i := range vs {
			x, err := timeToNum(vs[i])
			if err != nil {
				return nil, err
			}
			res[i] = x.(float64)
		}
		return res, nil
	case []value.Clock:
		res := make([]float64, len(vs))
		for i := range vs {
			res[i] = vs[i].Seconds()
		}
		return res, nil
	default:
		return timeToNum(v)
	}
}

func (c TimeConverter) DefaultUnit(_ any, _ Axis) Unit {
	return UnitTime
}

// AxisInfo activates for the literal "time" unit only.
func (c TimeConverter) AxisInfo(unit Unit, _ Axis) (*AxisInfo, error) {
	if unit != UnitTime {
		return nil, nil
	}
	info := AxisInfo{
		MajorLocator:   ticks.NewAutoLocator(),
		MajorFormatter: ClockFormatter{},
		Label:          "time",
	}
	return &info, nil
}

func timeToNum(v any) (any, error) {
	switch v := v.(type) {
	case string:
		t, err := parse.ParseClock(v)
		if err != nil {
			return nil, fmt.Errorf("could not parse time %s: %w", v, err)
		}
		return value.ClockFromTime(t).Seconds(), nil
	case value.Clock:
		return v.Seconds(), nil
	case value.Number:
		return float64(v), nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return v, nil
	}
}

// ClockFormatter renders a seconds-of-day coordinate as HH:MM:SS,
// appending microseconds only when there is a fractional remainder.
type ClockFormatter struct{}

func (ClockFormatter) Label(x float64) (string, error) {
	return value.ClockFromSeconds(x).String(), nil
}
