package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Random   RandomCmd        `cmd:"" help:"Generate a random legal bid set"`
	Even     EvenCmd          `cmd:"" help:"Generate the maximally balanced bid set"`
	Validate ValidateCmd      `cmd:"" help:"Check bids given as POWER=BID pairs"`
	Seeds    SeedsCmd         `cmd:"" help:"Print the seed table for the round's boards"`
	Simulate SimulateCmd      `cmd:"" help:"Run repeated generations and report statistics"`
	Edit     EditCmd          `cmd:"" help:"Enter bids interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("powerauction"),
		kong.Description("Blind power auction bid engine for tournament draft seeding"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
