package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/camdash"
	"github.com/etnz/camdash/renderer"
	"github.com/google/subcommands"
)

type timelineCmd struct{}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "display an account's decision history" }
func (*timelineCmd) Usage() string {
	return `cab timeline <account-id>

  Displays the account's decisions, newest first, each one annotated with the
  health score and trend in effect on its date.
`
}

func (*timelineCmd) SetFlags(f *flag.FlagSet) {}

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one account id")
		return subcommands.ExitUsageError
	}
	a, ok := OpenRepository().Account(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: account %q not found\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TimelineMarkdown(camdash.NewTimeline(a)))
	return subcommands.ExitSuccess
}
