package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/midbel/cli"
	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/series"
	"github.com/midbel/taxis/ticks"
)

var (
	chartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

type RenderCommand struct {
	Freq   string
	Width  int
	Height int
}

func (c RenderCommand) Run(args []string) error {
	set := cli.NewFlagSet("render")
	set.StringVar(&c.Freq, "f", "D", "frequency")
	set.IntVar(&c.Width, "w", 72, "chart width")
	set.IntVar(&c.Height, "h", 12, "chart height")
	if err := set.Parse(args); err != nil {
		return err
	}
	f, err := freq.FromString(c.Freq)
	if err != nil {
		return err
	}
	sr, err := series.LoadFile(set.Arg(0), f)
	if err != nil {
		return err
	}
	if c.Width < 8 {
		c.Width = 8
	}
	if c.Height < 2 {
		c.Height = 2
	}
	axis := sr.Axis()
	loc, form, err := ticks.NewPair(f, false)
	if err != nil {
		return err
	}
	loc.SetAxis(axis)
	form.SetAxis(axis)

	locs, err := loc.Locations()
	if err != nil {
		return err
	}
	if err := form.SetLocations(locs); err != nil {
		return err
	}
	for _, line := range plotRows(sr, c.Width, c.Height) {
		fmt.Fprintln(os.Stdout, chartStyle.Render(line))
	}
	base, labels := axisRows(axis, locs, form, c.Width)
	fmt.Fprintln(os.Stdout, axisStyle.Render(base))
	for _, line := range labels {
		fmt.Fprintln(os.Stdout, labelStyle.Render(line))
	}
	return nil
}

// plotRows rasterizes the series into rows of bar columns, highest
// row first.
func plotRows(sr *series.Series, width, height int) []string {
	var (
		rg       = sr.DataRange()
		lo, hi   = sr.ValueRange()
		ords     = sr.Ordinals()
		vals     = sr.Values()
		bars     = make([]int, width)
		occupied = make([]bool, width)
	)
	for i := range ords {
		col := column(ords[i], rg, width)
		level := 1
		if hi > lo {
			level = 1 + int((vals[i]-lo)/(hi-lo)*float64(height-1))
		}
		if !occupied[col] || level > bars[col] {
			bars[col] = level
			occupied[col] = true
		}
	}
	rows := make([]string, height)
	for y := range rows {
		var line strings.Builder
		limit := height - y
		for x := 0; x < width; x++ {
			if occupied[x] && bars[x] >= limit {
				line.WriteRune('█')
			} else {
				line.WriteByte(' ')
			}
		}
		rows[y] = line.String()
	}
	return rows
}

// axisRows draws the baseline with tick marks and up to two label
// rows underneath.
func axisRows(axis *ticks.SimpleAxis, locs []float64, form *ticks.Formatter, width int) (string, []string) {
	var (
		rg     = axis.View.Normalize()
		base   = []rune(strings.Repeat("─", width))
		labels = make([][]rune, 2)
	)
	for i := range labels {
		labels[i] = []rune(strings.Repeat(" ", width))
	}
	for _, x := range locs {
		col := column(x, rg, width)
		base[col] = '┴'
		str, err := form.Label(x)
		if err != nil || str == "" {
			continue
		}
		for i, part := range strings.SplitN(str, "\n", 3) {
			if i >= len(labels) {
				break
			}
			writeAt(labels[i], col, part)
		}
	}
	rows := make([]string, len(labels))
	for i := range labels {
		rows[i] = strings.TrimRight(string(labels[i]), " ")
	}
	return string(base), rows
}

func column(x float64, rg ticks.Range, width int) int {
	span := rg.Span()
	if span <= 0 {
		return 0
	}
	col := int((x - rg.Min) / span * float64(width-1))
	if col < 0 {
		col = 0
	}
	if col >= width {
		col = width - 1
	}
	return col
}

func writeAt(row []rune, col int, str string) {
	for i, r := range []rune(str) {
		if col+i >= len(row) {
			return
		}
		row[col+i] = r
	}
}
