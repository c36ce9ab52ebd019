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

// healthCmd holds the flags for the 'health' subcommand.
type healthCmd struct {
	account       string
	score         int
	date          string
	payment       int
	communication int
	risk          int
	trend         int
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "show or record account health scores" }
func (*healthCmd) Usage() string {
	return `cab health -a <account-id> [-score <0-100> [factor flags]]

  Without -score, shows the account's health score history. With -score,
  records a new snapshot dated -d.

Usage Examples:
# Record this week's snapshot.
$ cab health -a acc-1 -score 45 -payment 30 -communication 50 -risk 40 -trend 35

`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account id. Required.")
	f.IntVar(&c.score, "score", -1, "Overall score, 0-100. Omit to show the history.")
	f.StringVar(&c.date, "d", camdash.Today().String(), "Snapshot date.")
	f.IntVar(&c.payment, "payment", 0, "Payment behavior factor, 0-100.")
	f.IntVar(&c.communication, "communication", 0, "Communication quality factor, 0-100.")
	f.IntVar(&c.risk, "risk", 0, "Risk factor, 0-100.")
	f.IntVar(&c.trend, "trend", 0, "Trend direction factor, 0-100.")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := OpenRepository()
	a, ok := r.Account(c.account)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: account %q not found\n", c.account)
		return subcommands.ExitFailure
	}

	if c.score < 0 {
		printMarkdown(renderer.HealthHistoryMarkdown(a.Name, a.HealthScores))
		return subcommands.ExitSuccess
	}

	date, err := camdash.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	h := camdash.HealthScore{
		Score: c.score,
		Date:  date,
		Factors: camdash.HealthFactors{
			PaymentBehavior:      c.payment,
			CommunicationQuality: c.communication,
			RiskLevel:            c.risk,
			TrendDirection:       c.trend,
		},
	}
	if err := r.AddHealthScore(a.ID, h); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded health score %d for %q on %s\n", c.score, a.Name, date)
	return subcommands.ExitSuccess
}
