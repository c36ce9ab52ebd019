package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/camdash"
	"github.com/google/subcommands"
)

// outcomeCmd holds the flags for the 'outcome' subcommand.
type outcomeCmd struct {
	account  string
	decision string
	date     string
}

func (*outcomeCmd) Name() string     { return "outcome" }
func (*outcomeCmd) Synopsis() string { return "record what actually happened after a decision" }
func (*outcomeCmd) Usage() string {
	return `cab outcome -a <account-id> -id <decision-id> [-d <date>] <text>

  Records the actual outcome of a decision, closing the loop on its expected
  outcome.

Usage Examples:
$ cab outcome -a acc-1 -id dec-1 "payment received in full"

`
}

func (c *outcomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account id. Required.")
	f.StringVar(&c.decision, "id", "", "Decision id. Required.")
	f.StringVar(&c.date, "d", camdash.Today().String(), "Outcome date.")
}

func (c *outcomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: the outcome text is required")
		return subcommands.ExitUsageError
	}
	on, err := camdash.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	actual := strings.Join(f.Args(), " ")
	if err := OpenRepository().RecordOutcome(c.account, c.decision, actual, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded outcome on decision %s\n", c.decision)
	return subcommands.ExitSuccess
}
