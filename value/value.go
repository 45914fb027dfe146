package value

import (
	"fmt"

	"github.com/midbel/taxis/period"
)

type Kind int8

const (
	KindClock Kind = 1 << iota
	KindStamp
	KindSpan
	KindNumber
)

// Value is a time-like value as accepted by the axis converters: a
// clock time, a calendar timestamp, a fixed-frequency period or an
// already numeric coordinate.
type Value interface {
	Kind() Kind
	fmt.Stringer
}

type Span struct {
	period.Period
}

func (Span) Kind() Kind {
	return KindSpan
}
