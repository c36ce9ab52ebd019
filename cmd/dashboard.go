package cmd

import (
	"context"
	"flag"

	"github.com/etnz/camdash"
	"github.com/etnz/camdash/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the aggregate dashboard figures" }
func (*dashboardCmd) Usage() string {
	return `cab dashboard

  Displays the portfolio-wide figures: balances, risk distribution, average
  health and recent decision activity.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := OpenRepository()
	now := r.Now()
	stats := camdash.ComputeStats(r.Accounts(), now)
	printMarkdown(renderer.StatsMarkdown(stats, camdash.ReviewUrgency(now)))
	return subcommands.ExitSuccess
}
