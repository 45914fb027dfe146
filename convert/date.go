package convert

import (
	"time"

	"github.com/midbel/taxis/parse"
	"github.com/midbel/taxis/value"
)

// DatetimeConverter adapts calendar dates and timestamps to
// fractional-day coordinates. Strings are parsed best effort: a value
// that does not parse is returned unchanged so heterogeneous sequences
// degrade gracefully instead of failing the whole conversion.
type DatetimeConverter struct{}

func (c DatetimeConverter) Convert(v any, _ Unit, _ Axis) (any, error) {
	switch vs := v.(type) {
	case []any:
		res := make([]any, len(vs))
		for i := range vs {
			res[i] = dateToNum(vs[i])
		}
		return res, nil
	case []string:
		res := make([]any, len(vs))
		for i := range vs {
			res[i] = dateToNum(vs[i])
		}
		return res, nil
	case []time.Time:
		res := make([]float64, len(vs))
		for i := range vs {
			res[i] = DateToNum(vs[i])
		}
		return res, nil
	default:
		return dateToNum(v), nil
	}
}

func (c DatetimeConverter) DefaultUnit(_ any, _ Axis) Unit {
	return UnitDate
}

func (c DatetimeConverter) AxisInfo(_ Unit, _ Axis) (*AxisInfo, error) {
	return nil, nil
}

func dateToNum(v any) any {
	switch v := v.(type) {
	case time.Time:
		return DateToNum(v)
	case value.Stamp:
		return DateToNum(v.Time())
	case value.Clock:
		return clockToNum(v)
	case value.Number:
		return float64(v)
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		t, err := parse.Parse(v)
		if err != nil {
			return v
		}
		return DateToNum(t)
	default:
		return v
	}
}
