package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"github.com/urfave/cli/v2"

	"go.skia.org/kaleido/go/calc"
	"go.skia.org/kaleido/go/lexer"
	"go.skia.org/kaleido/go/skerr"
	"go.skia.org/kaleido/go/urfavecli"
)

// evalCmd holds the flag values for the `eval` subcommand, which evaluates
// one expression and prints its value.
type evalCmd struct {
	commonCmd
}

// EvalCommand returns a [*cli.Command] that evaluates an expression. On
// failure it prints a position-annotated message and exits nonzero.
func EvalCommand() *cli.Command {
	cmd := &evalCmd{}
	return &cli.Command{
		Name:        "eval",
		Description: "eval evaluates an expression and prints its value.",
		Usage:       "kaleido eval --expr '2 + 3 * 4 - 5 / 2'",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *evalCmd) action(ctx *cli.Context) error {
	urfavecli.LogFlags(ctx)
	src, err := cmd.source(ctx)
	if err != nil {
		return skerr.Wrap(err)
	}
	v, err := calc.EvalString(src)
	if err != nil {
		fmt.Fprintln(ctx.App.ErrWriter, renderEvalError(src, err))
		// The diagnostic is already printed; exit without a second message.
		return cli.Exit("", 1)
	}
	_, err = fmt.Fprintln(ctx.App.Writer, v)
	return skerr.Wrap(err)
}

// renderEvalError formats an evaluation failure for a person at a terminal:
// one line naming the failure and, when the failing token is known, the
// source line with a caret under the token.
func renderEvalError(src string, err error) string {
	var b strings.Builder
	red := color.New(color.FgRed, color.Bold)

	var tokErr *calc.UnexpectedTokenError
	var arithErr *calc.ArithmeticError
	line, col := 0, 0
	hint := ""
	switch {
	case errors.As(err, &tokErr):
		b.WriteString(red.Sprintf("unexpected %s token %q", tokErr.Token.Kind, tokErr.Token.Text))
		if tokErr.Token.Kind == lexer.KindIdentifier {
			if fn, ok := closestFunction(tokErr.Token.Text); ok {
				hint = fmt.Sprintf(" (did you mean %q?)", fn)
			}
		}
		line, col = tokErr.Token.Line, tokErr.Token.Column
	case errors.As(err, &arithErr):
		b.WriteString(red.Sprint(arithErr.Reason))
		line, col = arithErr.Token.Line, arithErr.Token.Column
	case errors.Is(err, calc.ErrUnexpectedEnd):
		b.WriteString(red.Sprint("expression ends unexpectedly"))
	default:
		b.WriteString(red.Sprintf("%s", skerr.Unwrap(err)))
	}
	b.WriteString(hint)
	if line > 0 {
		fmt.Fprintf(&b, " at %d:%d", line, col)
		if srcLine, ok := sourceLine(src, line); ok {
			fmt.Fprintf(&b, "\n  %s\n  %s^", srcLine, strings.Repeat(" ", col-1))
		}
	}
	return b.String()
}

// closestFunction returns the built-in function whose name is within one
// edit of name. A name that already is a built-in gets no suggestion; its
// problem is elsewhere.
func closestFunction(name string) (string, bool) {
	best := ""
	bestDist := 2
	for _, fn := range calc.Functions() {
		if fn == name {
			return "", false
		}
		// DefaultOptionsWithSub counts a substitution as one edit, not an
		// insert plus a delete, so one-letter typos like "cod" stay within
		// range.
		if d := levenshtein.DistanceForStrings([]rune(name), []rune(fn), levenshtein.DefaultOptionsWithSub); d < bestDist {
			best, bestDist = fn, d
		}
	}
	return best, best != ""
}

// sourceLine returns the n'th 1-based line of src.
func sourceLine(src string, n int) (string, bool) {
	lines := strings.Split(src, "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}
