package cmd

import (
	"context"
	"flag"

	"github.com/etnz/camdash/renderer"
	"github.com/google/subcommands"
)

type dueCmd struct{}

func (*dueCmd) Name() string     { return "due" }
func (*dueCmd) Synopsis() string { return "list accounts still without a decision this week" }
func (*dueCmd) Usage() string {
	return `cab due

  Lists the accounts without a decision in the current Monday-to-Sunday week,
  most urgent first, and flags a passed review deadline.
`
}

func (*dueCmd) SetFlags(f *flag.FlagSet) {}

func (c *dueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := OpenRepository()
	printMarkdown(renderer.DueMarkdown(r.Accounts(), r.Now()))
	return subcommands.ExitSuccess
}
