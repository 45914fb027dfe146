package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/midbel/cli"
	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/parse"
	"github.com/midbel/taxis/period"
	"github.com/midbel/taxis/ticks"
)

type PreviewCommand struct {
	Freq string
}

func (c PreviewCommand) Run(args []string) error {
	set := cli.NewFlagSet("preview")
	set.StringVar(&c.Freq, "f", "D", "frequency")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() < 2 {
		return fmt.Errorf("from and to dates expected")
	}
	f, err := freq.FromString(c.Freq)
	if err != nil {
		return err
	}
	from, err := parse.Parse(set.Arg(0))
	if err != nil {
		return err
	}
	to, err := parse.Parse(set.Arg(1))
	if err != nil {
		return err
	}
	axis := ticks.SimpleAxis{
		View: ticks.NewRange(
			float64(period.FromTime(from, f).Ordinal()),
			float64(period.FromTime(to, f).Ordinal()),
		),
	}
	axis.Data = axis.View
	axis.SetFreq(f)

	model, err := newPreviewModel(f, &axis)
	if err != nil {
		return err
	}
	prog := tea.NewProgram(model, tea.WithAltScreen())
	_, err = prog.Run()
	return err
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	majStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	minStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

type previewModel struct {
	freq freq.Freq
	axis *ticks.SimpleAxis

	locator   *ticks.Locator
	minors    *ticks.Locator
	formatter *ticks.Formatter

	view  viewport.Model
	ready bool
	err   error
}

func newPreviewModel(f freq.Freq, axis *ticks.SimpleAxis) (*previewModel, error) {
	loc, form, err := ticks.NewPair(f, false)
	if err != nil {
		return nil, err
	}
	minors, err := ticks.NewLocator(f, true, ticks.NewState())
	if err != nil {
		return nil, err
	}
	loc.SetAxis(axis)
	form.SetAxis(axis)
	minors.SetAxis(axis)

	m := previewModel{
		freq:      f,
		axis:      axis,
		locator:   loc,
		minors:    minors,
		formatter: form,
	}
	return &m, nil
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - 4
		}
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.pan(-0.1)
		case "right", "l":
			m.pan(0.1)
		case "+", "=":
			m.zoom(0.8)
		case "-":
			m.zoom(1.25)
		case "r":
			m.axis.View = m.axis.Data
		}
		m.refresh()
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *previewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	var (
		rg    = m.axis.View.Normalize()
		title = fmt.Sprintf("%s ticks, view [%.2f, %.2f]", m.freq, rg.Min, rg.Max)
		hint  = "←/→ pan, +/- zoom, r reset, q quit"
	)
	if m.err != nil {
		title = m.err.Error()
	}
	return titleStyle.Render(title) + "\n\n" + m.view.View() + "\n" + helpStyle.Render(hint)
}

func (m *previewModel) pan(ratio float64) {
	shift := m.axis.View.Span() * ratio
	m.axis.View.Min += shift
	m.axis.View.Max += shift
}

func (m *previewModel) zoom(factor float64) {
	var (
		rg     = m.axis.View.Normalize()
		center = (rg.Min + rg.Max) / 2
		half   = rg.Span() / 2 * factor
	)
	m.axis.View = ticks.NewRange(center-half, center+half)
}

// refresh recomputes tick placement for the current view. The shared
// cache makes the locator and formatter reuse one finder run; panning
// or zooming invalidates it.
func (m *previewModel) refresh() {
	majors, err := m.locator.Locations()
	if err != nil {
		m.err = err
		return
	}
	if err := m.formatter.SetLocations(majors); err != nil {
		m.err = err
		return
	}
	minors, err := m.minors.Locations()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil

	rows := make(map[int64]string)
	for _, x := range majors {
		label, err := m.formatter.Label(x)
		if err != nil {
			m.err = err
			return
		}
		label = strings.ReplaceAll(label, "\n", " ")
		rows[int64(x)] = majStyle.Render(fmt.Sprintf("%12.0f  + %s", x, label))
	}
	for _, x := range minors {
		if _, ok := rows[int64(x)]; !ok {
			rows[int64(x)] = minStyle.Render(fmt.Sprintf("%12.0f  *", x))
		}
	}
	var lines []string
	for _, at := range slices.Sorted(maps.Keys(rows)) {
		lines = append(lines, rows[at])
	}
	m.view.SetContent(strings.Join(lines, "\n"))
}
