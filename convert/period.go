package convert

import (
	"errors"
	"fmt"
	"time"

	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/parse"
	"github.com/midbel/taxis/period"
	"github.com/midbel/taxis/value"
)

var (
	ErrNoFreq       = errors.New("axis must have a frequency configured")
	ErrUnrecognized = errors.New("unrecognizable date")
)

// PeriodConverter adapts values to period ordinals under the
// frequency configured on the target axis.
type PeriodConverter struct{}

func (c PeriodConverter) Convert(v any, _ Unit, ax Axis) (any, error) {
	f, err := axisFreq(ax)
	if err != nil {
		return nil, err
	}
	switch vs := v.(type) {
	case []any:
		res := make([]any, len(vs))
		for i := range vs {
			if res[i], err = dateValue(vs[i], f); err != nil {
				return nil, err
			}
		}
		return res, nil
	case []string:
		res := make([]any, len(vs))
		for i := range vs {
			if res[i], err = dateValue(vs[i], f); err != nil {
				return nil, err
			}
		}
		return res, nil
	case []time.Time:
		res := make([]float64, len(vs))
		for i := range vs {
			res[i] = float64(period.FromTime(vs[i], f).Ordinal())
		}
		return res, nil
	case []period.Period:
		res := make([]float64, len(vs))
		for i := range vs {
			res[i] = float64(vs[i].AsFreqEnd(f).Ordinal())
		}
		return res, nil
	case []float64:
		return vs, nil
	case []int:
		res := make([]float64, len(vs))
		for i := range vs {
			res[i] = float64(vs[i])
		}
		return res, nil
	case []int64:
		res := make([]float64, len(vs))
		for i := range vs {
			res[i] = float64(vs[i])
		}
		return res, nil
	default:
		return dateValue(v, f)
	}
}

func (c PeriodConverter) DefaultUnit(_ any, _ Axis) Unit {
	return UnitPeriod
}

func (c PeriodConverter) AxisInfo(_ Unit, _ Axis) (*AxisInfo, error) {
	return nil, nil
}

func axisFreq(ax Axis) (freq.Freq, error) {
	fax, ok := ax.(FreqAxis)
	if !ok {
		return freq.Undefined, ErrNoFreq
	}
	f, ok := fax.Freq()
	if !ok {
		return freq.Undefined, ErrNoFreq
	}
	return f, nil
}

func dateValue(v any, f freq.Freq) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case period.Period:
		return float64(v.AsFreqEnd(f).Ordinal()), nil
	case value.Span:
		return float64(v.AsFreqEnd(f).Ordinal()), nil
	case time.Time:
		return float64(period.FromTime(v, f).Ordinal()), nil
	case value.Stamp:
		return float64(period.FromTime(v.Time(), f).Ordinal()), nil
	case value.Clock:
		t := time.Date(1970, time.January, 1, v.Hour, v.Min, v.Sec, v.Micro*1000, time.UTC)
		return float64(period.FromTime(t, f).Ordinal()), nil
	case string:
		t, err := parse.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("%w '%s'", ErrUnrecognized, v)
		}
		return float64(period.FromTime(t, f).Ordinal()), nil
	case value.Number:
		return float64(v), nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return nil, fmt.Errorf("%w '%v'", ErrUnrecognized, v)
	}
}
