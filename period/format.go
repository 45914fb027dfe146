package period

import (
	"strconv"
	"strings"
	"time"
)

type fieldWriter func(*strings.Builder, Period)

var fieldWriters = map[byte]fieldWriter{
	'Y': writeYearLong,
	'y': writeYearShort,
	'm': writeMonth,
	'b': writeMonthNameShort,
	'B': writeMonthNameLong,
	'd': writeDay,
	'e': writeDayBlank,
	'j': writeYearDay,
	'H': writeHour,
	'M': writeMinute,
	'S': writeSecond,
	'q': writeQuarter,
	'F': writeFiscalYear,
}

// Format renders the period with a strftime-style pattern. Beside the
// usual date and time fields, %q gives the quarter number and %F the
// fiscal year label. Unknown directives are kept verbatim.
func (p Period) Format(pattern string) (string, error) {
	var str strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 >= len(pattern) {
			str.WriteByte(pattern[i])
			continue
		}
		i++
		switch c := pattern[i]; c {
		case '%':
			str.WriteByte('%')
		case 'n':
			str.WriteByte('\n')
		default:
			write, ok := fieldWriters[c]
			if !ok {
				str.WriteByte('%')
				str.WriteByte(c)
				break
			}
			write(&str, p)
		}
	}
	return str.String(), nil
}

func writeYearLong(w *strings.Builder, p Period) {
	w.WriteString(strconv.Itoa(p.Year()))
}

func writeYearShort(w *strings.Builder, p Period) {
	writePadded(w, p.Year()%100, 2)
}

func writeMonth(w *strings.Builder, p Period) {
	writePadded(w, p.Month(), 2)
}

func writeMonthNameShort(w *strings.Builder, p Period) {
	name := time.Month(p.Month()).String()
	w.WriteString(name[:3])
}

func writeMonthNameLong(w *strings.Builder, p Period) {
	w.WriteString(time.Month(p.Month()).String())
}

func writeDay(w *strings.Builder, p Period) {
	writePadded(w, p.Day(), 2)
}

func writeDayBlank(w *strings.Builder, p Period) {
	d := p.Day()
	if d < 10 {
		w.WriteByte(' ')
	}
	w.WriteString(strconv.Itoa(d))
}

func writeYearDay(w *strings.Builder, p Period) {
	writePadded(w, p.Time().YearDay(), 3)
}

func writeHour(w *strings.Builder, p Period) {
	writePadded(w, p.Hour(), 2)
}

func writeMinute(w *strings.Builder, p Period) {
	writePadded(w, p.Minute(), 2)
}

func writeSecond(w *strings.Builder, p Period) {
	writePadded(w, p.Second(), 2)
}

func writeQuarter(w *strings.Builder, p Period) {
	w.WriteString(strconv.Itoa(p.Quarter()))
}

func writeFiscalYear(w *strings.Builder, p Period) {
	w.WriteString(strconv.Itoa(p.Year()))
}

func writePadded(w *strings.Builder, v, width int) {
	str := strconv.Itoa(v)
	for n := width - len(str); n > 0; n-- {
		w.WriteByte('0')
	}
	w.WriteString(str)
}
