package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"time"

	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/parse"
	"github.com/midbel/taxis/period"
	"github.com/midbel/taxis/ticks"
)

var ErrEmpty = errors.New("empty series")

type Point struct {
	Stamp time.Time
	Value float64
}

// Series is an in-memory time series bound to a plotting frequency,
// loaded from delimited (timestamp, value) records.
type Series struct {
	freq   freq.Freq
	points []Point
}

func Load(r io.Reader, f freq.Freq) (*Series, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	sr := Series{
		freq: f,
	}
	for lino := 1; ; lino++ {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("line %d: two fields expected, got %d", lino, len(row))
		}
		when, err := parse.Parse(row[0])
		if err != nil {
			if lino == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", lino, err)
		}
		val, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lino, err)
		}
		sr.points = append(sr.points, Point{
			Stamp: when,
			Value: val,
		})
	}
	if len(sr.points) == 0 {
		return nil, ErrEmpty
	}
	return &sr, nil
}

func LoadFile(name string, f freq.Freq) (*Series, error) {
	r, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Load(r, f)
}

func (s *Series) Len() int {
	return len(s.points)
}

func (s *Series) Freq() freq.Freq {
	return s.freq
}

func (s *Series) Points() iter.Seq[Point] {
	it := func(yield func(Point) bool) {
		for _, p := range s.points {
			if !yield(p) {
				return
			}
		}
	}
	return it
}

// Ordinals gives the axis coordinate of every point under the series
// frequency.
func (s *Series) Ordinals() []float64 {
	res := make([]float64, len(s.points))
	for i, p := range s.points {
		res[i] = float64(period.FromTime(p.Stamp, s.freq).Ordinal())
	}
	return res
}

func (s *Series) Values() []float64 {
	res := make([]float64, len(s.points))
	for i, p := range s.points {
		res[i] = p.Value
	}
	return res
}

func (s *Series) DataRange() ticks.Range {
	ords := s.Ordinals()
	rg := ticks.NewRange(ords[0], ords[0])
	for _, o := range ords[1:] {
		rg.Min = min(rg.Min, o)
		rg.Max = max(rg.Max, o)
	}
	return rg
}

func (s *Series) ValueRange() (float64, float64) {
	lo, hi := s.points[0].Value, s.points[0].Value
	for _, p := range s.points[1:] {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}
	return lo, hi
}

// Axis configures a time axis showing the whole series.
func (s *Series) Axis() *ticks.SimpleAxis {
	ax := ticks.SimpleAxis{
		View: s.DataRange(),
		Data: s.DataRange(),
	}
	ax.SetFreq(s.freq)
	return &ax
}
