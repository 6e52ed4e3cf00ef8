// package main is the kaleido command line tool: a tokenizer and expression
// calculator for a small Kaleidoscope-flavored language.
package main

import (
	"github.com/urfave/cli/v2"

	kaleidocli "go.skia.org/kaleido/cmd/kaleido/cli"
)

func main() {
	app := &cli.App{
		Name:  "kaleido",
		Usage: `kaleido tokenizes and evaluates expressions in a small Kaleidoscope-flavored language.`,
		Commands: []*cli.Command{
			kaleidocli.TokensCommand(),
			kaleidocli.EvalCommand(),
			kaleidocli.ReplCommand(),
			kaleidocli.DemoCommand(),
		},
	}
	app.RunAndExitOnError()
}
