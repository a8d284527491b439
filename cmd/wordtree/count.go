package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/wordtree/report"
	"github.com/npillmayer/wordtree/survey"
	"github.com/npillmayer/wordtree/words"
	"github.com/urfave/cli/v2"
)

var parseFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "phrases",
		Usage: "count two-word phrases instead of words",
	},
	&cli.BoolFlag{
		Name:  "html",
		Usage: "responses are HTML fragments",
	},
	&cli.BoolFlag{
		Name:    "fold",
		Usage:   "ignore diacritics",
		EnvVars: []string{"WORDTREE_FOLD"},
	},
}

var cmdCount = &cli.Command{
	Name:      "count",
	Usage:     "count the words of a form export and write them to a words file",
	ArgsUsage: `<form.csv>`,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "path of the words file",
			Value:   "words.csv",
			EnvVars: []string{"WORDTREE_OUTPUT"},
		},
		&cli.StringFlag{
			Name:  "json",
			Usage: "also dump the words as JSON to this path",
		},
		&cli.BoolFlag{
			Name:  "by-count",
			Usage: "order JSON and console output by number of occurrences",
		},
		&cli.BoolFlag{
			Name:  "console",
			Usage: "print the words to the terminal",
		},
	}, parseFlags...),
	Action: runCount,
}

func runCount(cctx *cli.Context) error {
	corpus, err := parseForm(cctx)
	if err != nil {
		return err
	}
	out := cctx.String("output")
	if err := corpus.WriteWords(out); err != nil {
		return err
	}
	gtrace.CoreTracer.Infof("wrote %d words to %s", corpus.Len(), out)
	records := corpus.Records()
	if cctx.Bool("by-count") {
		report.SortByCount(records)
	}
	if path := cctx.String("json"); path != "" {
		if err := dumpJSON(path, records); err != nil {
			return err
		}
	}
	if cctx.Bool("console") {
		return report.NewConsole(os.Stdout, report.ConfigFromTerminal(), nil).Print(records)
	}
	return nil
}

// parseForm loads the form export named by the first argument and parses
// every response into a new corpus.
func parseForm(cctx *cli.Context) (*words.Corpus, error) {
	path := cctx.Args().First()
	if path == "" {
		return nil, fmt.Errorf("expected a form export as argument")
	}
	format := survey.PlainText
	if cctx.Bool("html") {
		format = survey.HTML
	}
	ctx, cancel := context.WithCancel(cctx.Context)
	defer cancel()
	responses, wait, err := survey.Stream(ctx, path, format)
	if err != nil {
		return nil, err
	}
	corpus := words.NewCorpus(words.Tokenizer{Fold: cctx.Bool("fold")})
	phrases := cctx.Bool("phrases")
	for r := range responses {
		corpus.SetInput(r.Text, r.Person)
		corpus.Parse(phrases)
	}
	if err := wait(); err != nil {
		return nil, err
	}
	return corpus, nil
}

func dumpJSON(path string, records []report.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return report.DumpJSON(f, records)
}
