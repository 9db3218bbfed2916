package cmd

import (
	"context"
	"flag"

	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type groupsCmd struct{}

func (*groupsCmd) Name() string     { return "groups" }
func (*groupsCmd) Synopsis() string { return "list the ways positions can be grouped" }
func (*groupsCmd) Usage() string {
	return `wlt groups

  Lists the grouping names accepted by -g, and the position property each one reads.
`
}

func (*groupsCmd) SetFlags(f *flag.FlagSet) {}

func (*groupsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RenderGroups(renderer.NewGroups()))
	return subcommands.ExitSuccess
}
