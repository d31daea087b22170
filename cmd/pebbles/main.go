package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Server  ServerCmd        `cmd:"" help:"Run the pebbles host"`
	Play    PlayCmd          `cmd:"" help:"Play against a host in the terminal"`
	State   StateCmd         `cmd:"" help:"Print the current game state"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pebbles"),
		kong.Description("Hosted pebble-removal game against a program opponent"),
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
