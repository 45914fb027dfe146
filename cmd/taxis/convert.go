package main

import (
	"fmt"
	"os"

	"github.com/midbel/cli"
	"github.com/midbel/taxis/convert"
	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/ticks"
)

type ConvertCommand struct {
	Freq string
	Kind string
}

func (c ConvertCommand) Run(args []string) error {
	set := cli.NewFlagSet("convert")
	set.StringVar(&c.Freq, "f", "", "axis frequency (period kind only)")
	set.StringVar(&c.Kind, "k", "date", "kind of values given (time, date, period)")
	if err := set.Parse(args); err != nil {
		return err
	}
	var (
		conv convert.Converter
		axis ticks.SimpleAxis
	)
	switch c.Kind {
	case "time":
		conv = convert.TimeConverter{}
	case "", "date":
		conv = convert.DatetimeConverter{}
	case "period":
		conv = convert.PeriodConverter{}
		f, err := freq.FromString(c.Freq)
		if err != nil {
			return err
		}
		axis.SetFreq(f)
	default:
		return fmt.Errorf("%s: unsupported kind", c.Kind)
	}
	for _, a := range set.Args() {
		res, err := conv.Convert(a, convert.UnitNone, &axis)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%-24s %v\n", a, res)
	}
	return nil
}
