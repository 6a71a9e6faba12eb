package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/postindex/cmd/postindex/commands"
	ierrors "git.home.luguber.info/inful/postindex/internal/errors"
	"git.home.luguber.info/inful/postindex/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("postindex"),
		kong.Description("Index the front matter of Markdown blog posts into a JSON file."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	err := ctx.Run(&commands.Global{Stdout: os.Stdout}, cli)
	ierrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
