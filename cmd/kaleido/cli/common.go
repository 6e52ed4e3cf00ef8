// Package cli implements the subcommands of the kaleido command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"go.skia.org/kaleido/go/skerr"
	"go.skia.org/kaleido/go/util"
)

// flag names shared by more than one subcommand.
const (
	exprFlagName = "expr"
)

// commonCmd holds the flag values shared by every subcommand that takes one
// expression, either inline or from a file.
type commonCmd struct {
	expr string
}

func (cmd *commonCmd) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        exprFlagName,
			Value:       "",
			Usage:       "Expression source text. Mutually exclusive with a file argument.",
			Destination: &cmd.expr,
		},
	}
}

// source returns the expression text to process: the --expr flag if set,
// otherwise the contents of the file named by the only positional argument.
func (cmd *commonCmd) source(ctx *cli.Context) (string, error) {
	if cmd.expr != "" {
		if ctx.NArg() > 0 {
			return "", skerr.Fmt("pass either --%s or a file, not both", exprFlagName)
		}
		return cmd.expr, nil
	}
	if ctx.NArg() != 1 {
		return "", skerr.Fmt("pass an expression with --%s or name exactly one file", exprFlagName)
	}
	file := ctx.Args().First()
	var src string
	err := util.WithReadFile(file, func(f io.Reader) error {
		b, err := io.ReadAll(f)
		src = string(b)
		return err
	})
	if err != nil {
		return "", skerr.Wrapf(err, "reading expression from %s", file)
	}
	return src, nil
}
