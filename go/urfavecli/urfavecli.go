// Package urfavecli contains utility functions for working with the
// github.com/urfave/cli module.
package urfavecli

import (
	cli "github.com/urfave/cli/v2"

	"go.skia.org/kaleido/go/sklog"
)

// LogFlags logs the name and value of every flag visible to the running
// command. Call it at the top of a command's action so each run records how
// it was invoked.
func LogFlags(ctx *cli.Context) {
	if ctx.App != nil {
		for _, f := range ctx.App.Flags {
			logFlag(ctx, f)
		}
	}
	if ctx.Command != nil {
		for _, f := range ctx.Command.Flags {
			logFlag(ctx, f)
		}
	}
}

func logFlag(ctx *cli.Context, f cli.Flag) {
	name := f.Names()[0]
	sklog.Infof("Flags: --%s=%v", name, ctx.Value(name))
}
