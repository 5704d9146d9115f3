package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/pfrange/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Repl     ReplCmd          `cmd:"" default:"1" help:"Expand ranges interactively (default)"`
	Expand   ExpandCmd        `cmd:"" help:"Expand ranges given as arguments"`
	Chart    ChartCmd         `cmd:"" help:"Expand a per-position preflop chart"`
	GenTable GenTableCmd      `cmd:"gen-table" help:"Generate the canonical hand table as Go source"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pfrange"),
		kong.Description("Expand poker starting-hand range notation such as AQo+, T9s- and TT+"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_path": config.DefaultPath,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
