package parse

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrParse = errors.New("not a recognizable date/time")

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2006-01",
	"2006",
}

var clockLayouts = []string{
	"15:04:05.999999",
	"15:04:05",
	"15:04",
}

// Parse resolves a date/time string against a fixed list of layouts.
func Parse(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s", ErrParse, str)
}

// ParseClock resolves a string to a time of day. Full timestamps are
// accepted, only the clock part is kept.
func ParseClock(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return Parse(str)
}
