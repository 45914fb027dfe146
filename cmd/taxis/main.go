package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"
)

var errFail = errors.New("fail")

var (
	summary = "taxis"
	help    = ""
)

func main() {
	var (
		set  = cli.NewFlagSet("taxis")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"ticks"}, &ticksCmd)
	root.Register([]string{"convert"}, &convertCmd)
	root.Register([]string{"render"}, &renderCmd)
	root.Register([]string{"preview"}, &previewCmd)

	return root
}

var ticksCmd = cli.Command{
	Name:    "ticks",
	Alias:   []string{"table"},
	Summary: "print the tick table for a date range and frequency",
	Usage:   "ticks [-f frequency] [-a] <from> <to>",
	Handler: &TickTableCommand{},
}

var convertCmd = cli.Command{
	Name:    "convert",
	Summary: "convert time-like values to numeric axis coordinates",
	Usage:   "convert [-f frequency] [-k kind] <value,...>",
	Handler: &ConvertCommand{},
}

var renderCmd = cli.Command{
	Name:    "render",
	Alias:   []string{"plot"},
	Summary: "draw a csv time series as a terminal chart with a labeled time axis",
	Usage:   "render [-f frequency] [-w width] [-h height] <file>",
	Handler: &RenderCommand{},
}

var previewCmd = cli.Command{
	Name:    "preview",
	Summary: "browse tick placement interactively, panning and zooming the view",
	Usage:   "preview [-f frequency] <from> <to>",
	Handler: &PreviewCommand{},
}
