package series

import (
	"errors"
	"strings"
	"testing"

	"github.com/midbel/taxis/freq"
)

const sample = `date,value
2020-01-01,1.5
2020-01-02,2.5
2020-01-10,0.5
`

func TestLoad(t *testing.T) {
	sr, err := Load(strings.NewReader(sample), freq.Daily)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if sr.Len() != 3 {
		t.Fatalf("length mismatched! want 3 - got %d", sr.Len())
	}
	rg := sr.DataRange()
	if rg.Min != 18262 || rg.Max != 18271 {
		t.Errorf("data range mismatched! want [18262, 18271] - got [%g, %g]", rg.Min, rg.Max)
	}
	lo, hi := sr.ValueRange()
	if lo != 0.5 || hi != 2.5 {
		t.Errorf("value range mismatched! want [0.5, 2.5] - got [%g, %g]", lo, hi)
	}
	ax := sr.Axis()
	if f, ok := ax.Freq(); !ok || f != freq.Daily {
		t.Errorf("axis frequency mismatched: got %v (%t)", f, ok)
	}
}

func TestLoadNoHeader(t *testing.T) {
	sr, err := Load(strings.NewReader("2020-01-01,1.5\n2020-01-02,2.5\n"), freq.Daily)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if sr.Len() != 2 {
		t.Errorf("length mismatched! want 2 - got %d", sr.Len())
	}
}

func TestLoadEmpty(t *testing.T) {
	if _, err := Load(strings.NewReader("date,value\n"), freq.Daily); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty error expected, got %v", err)
	}
}

func TestLoadBadValue(t *testing.T) {
	if _, err := Load(strings.NewReader("2020-01-01,abc\n"), freq.Daily); err == nil {
		t.Errorf("error expected on unparsable value")
	}
}

func TestPoints(t *testing.T) {
	sr, err := Load(strings.NewReader(sample), freq.Daily)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var count int
	for p := range sr.Points() {
		if p.Stamp.IsZero() {
			t.Errorf("point %d: zero timestamp", count)
		}
		count++
	}
	if count != sr.Len() {
		t.Errorf("iterated %d points, want %d", count, sr.Len())
	}
}
