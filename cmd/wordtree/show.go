package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/wordtree/report"
	"github.com/npillmayer/wordtree/words"
	"github.com/urfave/cli/v2"
)

var cmdShow = &cli.Command{
	Name:      "show",
	Usage:     "print a words file to the terminal",
	ArgsUsage: `<words.csv>`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "by-count",
			Usage: "order by number of occurrences",
		},
		&cli.StringFlag{
			Name:  "json",
			Usage: "dump the words as JSON to this path instead",
		},
	},
	Action: runShow,
}

func runShow(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("expected a words file as argument")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	records, err := report.ReadRecords(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if cctx.Bool("by-count") {
		report.SortByCount(records)
	}
	if out := cctx.String("json"); out != "" {
		return dumpJSON(out, records)
	}
	return report.NewConsole(os.Stdout, report.ConfigFromTerminal(), nil).Print(records)
}

var cmdTree = &cli.Command{
	Name:      "tree",
	Usage:     "print the word tree of a form export",
	ArgsUsage: `<form.csv>`,
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "dot",
			Usage: "print in Graphviz DOT format",
		},
	}, parseFlags...),
	Action: runTree,
}

func runTree(cctx *cli.Context) error {
	corpus, err := parseForm(cctx)
	if err != nil {
		return err
	}
	label := func(w *words.WordInfo) string {
		return fmt.Sprintf("%s (%d)", w.Word, w.Count)
	}
	if cctx.Bool("dot") {
		return corpus.Tree().ToDot(os.Stdout, label)
	}
	fmt.Print(corpus.Tree().Sketch(label))
	return nil
}
