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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period string
	cam    string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the manager review summary" }
func (*summaryCmd) Usage() string {
	return `cab summary [-period <period>] [-cam <name>]

  Displays every decision in the period with its review standing, rolled up
  per CAM, plus the accounts needing attention.

Usage Examples:
# Last week's decisions for one manager's book.
$ cab summary -period last-week -cam "Sarah Johnson"

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "this-week", "Period: this-week, last-week, last-2-weeks, last-month.")
	f.StringVar(&c.cam, "cam", "", "Narrow the summary to one CAM's book.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := camdash.ParseReviewPeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	r := OpenRepository()
	s := camdash.NewReviewSummary(r.Accounts(), period, c.cam, r.Now())
	printMarkdown(renderer.SummaryMarkdown(s, period))
	return subcommands.ExitSuccess
}
