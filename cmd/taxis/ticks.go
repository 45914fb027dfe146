package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/taxis/freq"
	"github.com/midbel/taxis/parse"
	"github.com/midbel/taxis/period"
	"github.com/midbel/taxis/ticks"
)

type TickTableCommand struct {
	Freq string
	All  bool
}

func (c TickTableCommand) Run(args []string) error {
	set := cli.NewFlagSet("ticks")
	set.StringVar(&c.Freq, "f", "D", "frequency")
	set.BoolVar(&c.All, "a", false, "print unmarked positions too")
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
	finder, err := ticks.ForFreq(f)
	if err != nil {
		return err
	}
	var (
		fst = period.FromTime(from, f)
		lst = period.FromTime(to, f)
	)
	info, err := finder(float64(fst.Ordinal()), float64(lst.Ordinal()), f)
	if err != nil {
		return err
	}
	for i := range info.Val {
		if !c.All && !info.Maj[i] && !info.Min[i] {
			continue
		}
		var (
			mark  = tickMark(info.Maj[i], info.Min[i])
			label string
		)
		if info.Fmt[i] != "" {
			label, err = period.New(info.Val[i], f).Format(info.Fmt[i])
			if err != nil {
				return err
			}
			label = strings.ReplaceAll(label, "\n", " ")
		}
		fmt.Fprintf(os.Stdout, "%-12d %-5s %-16q %s\n", info.Val[i], mark, info.Fmt[i], label)
	}
	return nil
}

func tickMark(major, minor bool) string {
	switch {
	case major && minor:
		return "+*"
	case major:
		return "+"
	case minor:
		return "*"
	default:
		return ""
	}
}
