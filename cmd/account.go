package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/camdash/renderer"
	"github.com/google/subcommands"
)

type accountCmd struct{}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "display the full detail of one account" }
func (*accountCmd) Usage() string {
	return `cab account <account-id>

  Displays one account in full: figures, facilities, health and the
  qualitative background.
`
}

func (*accountCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one account id")
		return subcommands.ExitUsageError
	}
	a, ok := OpenRepository().Account(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: account %q not found\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountMarkdown(a))
	return subcommands.ExitSuccess
}
