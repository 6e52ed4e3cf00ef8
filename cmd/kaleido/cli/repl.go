package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"go.skia.org/kaleido/go/calc"
	"go.skia.org/kaleido/go/skerr"
	"go.skia.org/kaleido/go/urfavecli"
	"go.skia.org/kaleido/go/util"
)

const prompt = "> "

// replCmd implements the `repl` subcommand, a read-eval-print loop over
// stdin.
type replCmd struct{}

// ReplCommand returns a [*cli.Command] that evaluates expressions line by
// line. With a terminal on stdin it prompts; with a pipe it reads silently.
func ReplCommand() *cli.Command {
	cmd := &replCmd{}
	return &cli.Command{
		Name:        "repl",
		Description: "repl reads one expression per line and prints each value. Blank lines and comment lines are skipped; a failed line is reported and the loop continues.",
		Usage:       "kaleido repl",
		Action:      cmd.action,
	}
}

func (cmd *replCmd) action(ctx *cli.Context) error {
	urfavecli.LogFlags(ctx)
	return cmd.run(ctx.App.Reader, ctx.App.Writer)
}

func (cmd *replCmd) run(in io.Reader, out io.Writer) error {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	promptColor := color.New(color.FgCyan, color.Bold)

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			_, err := fmt.Fprint(out, promptColor.Sprint(prompt))
			util.LogErr(err)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := calc.EvalString(line)
		if err != nil {
			fmt.Fprintln(out, renderEvalError(line, err))
			continue
		}
		fmt.Fprintln(out, v)
	}
	return skerr.Wrap(scanner.Err())
}
