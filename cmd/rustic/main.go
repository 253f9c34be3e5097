package main

import (
	"github.com/alecthomas/kong"

	"github.com/FitzroyWoodruff/rustic/cmd/rustic/commands"
	rerrors "github.com/FitzroyWoodruff/rustic/internal/errors"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("rustic"),
		kong.Description("A simple static site generator that builds HTML from Markdown files."),
		kong.UsageOnError(),
	)

	err := ctx.Run(&commands.Global{}, cli)

	adapter := rerrors.NewCLIErrorAdapter(cli.Verbose, nil)
	adapter.HandleError(err)
}
