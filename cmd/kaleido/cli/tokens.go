package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"go.skia.org/kaleido/go/lexer"
	"go.skia.org/kaleido/go/skerr"
	"go.skia.org/kaleido/go/sklog"
	"go.skia.org/kaleido/go/urfavecli"
)

const plainFlagName = "plain"

// tokensCmd holds the flag values for the `tokens` subcommand, which prints
// the token stream of one expression.
type tokensCmd struct {
	commonCmd
	plain bool
}

// TokensCommand returns a [*cli.Command] that tokenizes an expression and
// prints one row per token, including the synthetic trailing EOF.
func TokensCommand() *cli.Command {
	cmd := &tokensCmd{}
	return &cli.Command{
		Name:        "tokens",
		Description: "tokens prints the token stream of an expression, one row per token.",
		Usage:       "kaleido tokens --expr '2 + 3 * 4'",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *tokensCmd) flags() []cli.Flag {
	fl := []cli.Flag{
		&cli.BoolFlag{
			Name:        plainFlagName,
			Value:       false,
			Usage:       "One token per line, without table decoration.",
			Destination: &cmd.plain,
		},
	}
	return append(fl, cmd.commonCmd.flags()...)
}

func (cmd *tokensCmd) action(ctx *cli.Context) error {
	urfavecli.LogFlags(ctx)
	src, err := cmd.source(ctx)
	if err != nil {
		return skerr.Wrap(err)
	}
	return cmd.print(ctx.App.Writer, lexer.Tokenize(src))
}

// print renders toks to w. Scanning never fails, so characters that matched
// no rule surface here as UNKNOWN rows, each with a warning.
func (cmd *tokensCmd) print(w io.Writer, toks []lexer.Token) error {
	for _, tok := range toks {
		if tok.Kind == lexer.KindUnknown {
			sklog.Warningf("No rule matches %q at %d:%d; emitting UNKNOWN.", tok.Text, tok.Line, tok.Column)
		}
	}
	if cmd.plain {
		for _, tok := range toks {
			if _, err := fmt.Fprintln(w, tok); err != nil {
				return skerr.Wrap(err)
			}
		}
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"KIND", "TEXT", "LINE", "COL"})
	for _, tok := range toks {
		table.Append([]string{tok.Kind.String(), tok.Text, strconv.Itoa(tok.Line), strconv.Itoa(tok.Column)})
	}
	table.Render()
	return nil
}
