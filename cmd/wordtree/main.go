// Command wordtree counts the words of survey responses and tells who used
// which word.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var debugFlag = &cli.BoolFlag{
	Name:    "debug",
	Usage:   "trace the word tree and the loading of responses",
	EnvVars: []string{"WORDTREE_DEBUG"},
}

func run(args []string) error {

	app := cli.App{
		Name:    "wordtree",
		Usage:   "word frequencies of survey responses",
		Version: versioninfo.Short(),
		Flags:   []cli.Flag{debugFlag},
		Before:  setupTracing,
	}
	app.Commands = []*cli.Command{
		cmdCount,
		cmdShow,
		cmdTree,
	}
	return app.Run(args)
}

func setupTracing(cctx *cli.Context) error {
	gtrace.CoreTracer = gologadapter.New()
	if cctx.Bool("debug") {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}
	return nil
}
