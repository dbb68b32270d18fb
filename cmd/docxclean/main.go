package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docxclean/cmd/docxclean/commands"
	derrors "git.home.luguber.info/inful/docxclean/internal/errors"
	"git.home.luguber.info/inful/docxclean/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("docxclean"),
		kong.Description("Sanitize .docx documents (SVG extensions, tracked changes, comments, alternate content) for layout import."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&commands.Global{Stdout: os.Stdout}, cli); err != nil {
		derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
