package main

import (
	"github.com/alecthomas/kong"

	"github.com/gastromap/gastromap-backend/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("gastromap"), kong.Description("GastroMap consolidates scraped restaurant listings into one directory."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
