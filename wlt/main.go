// Command wlt values a portfolio's holdings and breaks them down.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/wealth/cmd"
	"github.com/google/subcommands"
)

func main() {
	// answers shell completion requests (COMP_LINE) and exits
	cmd.Completion().Complete("wlt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
