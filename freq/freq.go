package freq

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupported = errors.New("unsupported frequency")

type Freq int8

const (
	Undefined Freq = iota
	Annual
	Quarterly
	Monthly
	Weekly
	Business
	Daily
	Hourly
	Minutely
	Secondly
)

func (f Freq) String() string {
	switch f {
	case Annual:
		return "annual"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	case Weekly:
		return "weekly"
	case Business:
		return "business"
	case Daily:
		return "daily"
	case Hourly:
		return "hourly"
	case Minutely:
		return "minutely"
	case Secondly:
		return "secondly"
	default:
		return "undefined"
	}
}

type Group int8

const (
	GroupUndefined Group = iota
	GroupAnnual
	GroupQuarterly
	GroupMonthly
	GroupWeekly
	GroupDaily
	GroupSubDaily
)

// Group classifies a frequency into the family that decides which
// tick finder applies to it.
func (f Freq) Group() Group {
	switch f {
	case Annual:
		return GroupAnnual
	case Quarterly:
		return GroupQuarterly
	case Monthly:
		return GroupMonthly
	case Weekly:
		return GroupWeekly
	case Business, Daily:
		return GroupDaily
	case Hourly, Minutely, Secondly:
		return GroupSubDaily
	default:
		return GroupUndefined
	}
}

func (f Freq) SubDaily() bool {
	return f.Group() == GroupSubDaily
}

// FromString resolves a frequency code. Anchored codes such as W-MON
// or Q-DEC are accepted, the anchor is ignored.
func FromString(str string) (Freq, error) {
	code, _, _ := strings.Cut(str, "-")
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "A", "Y", "AS", "YS", "YEAR", "ANNUAL":
		return Annual, nil
	case "Q", "QS", "QUARTER":
		return Quarterly, nil
	case "M", "MS", "MONTH":
		return Monthly, nil
	case "W", "WEEK":
		return Weekly, nil
	case "B", "BUSINESS":
		return Business, nil
	case "D", "DAY":
		return Daily, nil
	case "H", "HOUR":
		return Hourly, nil
	case "T", "MIN", "MINUTE":
		return Minutely, nil
	case "S", "SEC", "SECOND":
		return Secondly, nil
	case "U", "UND", "UNDEFINED":
		return Undefined, nil
	default:
		return Undefined, fmt.Errorf("%w: %s", ErrUnsupported, str)
	}
}
