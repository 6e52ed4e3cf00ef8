package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"go.skia.org/kaleido/go/calc"
	"go.skia.org/kaleido/go/lexer"
	"go.skia.org/kaleido/go/skerr"
	"go.skia.org/kaleido/go/urfavecli"
)

const configFlagName = "config"

// demoCmd holds the flag values for the `demo` subcommand, which walks the
// samples in a config file, tokenizing each and evaluating the ones marked
// for it.
type demoCmd struct {
	config string
}

// DemoCommand returns a [*cli.Command] running the canned demonstration.
func DemoCommand() *cli.Command {
	cmd := &demoCmd{}
	return &cli.Command{
		Name:        "demo",
		Description: "demo tokenizes, and where marked evaluates, the samples in a config file.",
		Usage:       "kaleido demo --config configs/demo.json5",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *demoCmd) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        configFlagName,
			Value:       "configs/demo.json5",
			Usage:       "Path to a JSON5 samples config.",
			Destination: &cmd.config,
		},
	}
}

func (cmd *demoCmd) action(ctx *cli.Context) error {
	urfavecli.LogFlags(ctx)
	samples, err := LoadSamples(cmd.config)
	if err != nil {
		return skerr.Wrap(err)
	}
	return cmd.run(ctx.App.Writer, samples)
}

func (cmd *demoCmd) run(w io.Writer, samples *Samples) error {
	heading := color.New(color.Bold)
	tokens := &tokensCmd{}
	for i, s := range samples.Samples {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, heading.Sprintf("== %s ==", s.Name))
		fmt.Fprintln(w, s.Source)
		if err := tokens.print(w, lexer.Tokenize(s.Source)); err != nil {
			return skerr.Wrap(err)
		}
		if !s.Eval {
			continue
		}
		v, err := calc.EvalString(s.Source)
		if err != nil {
			// A sample wrongly marked evaluable is a config mistake, not a
			// reason to stop the walk.
			fmt.Fprintln(w, renderEvalError(s.Source, err))
			continue
		}
		fmt.Fprintf(w, "= %s\n", v)
	}
	return nil
}
