package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/camdash"
	"github.com/google/subcommands"
)

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	account  string
	decision string
	status   string
	by       string
	notes    string
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "record a team-lead review on a decision" }
func (*reviewCmd) Usage() string {
	return `cab review -a <account-id> -id <decision-id> -s <pass|fail> -by <reviewer> [-notes <text>]

  Marks a decision passed or failed. A prior review is simply overwritten.

Usage Examples:
$ cab review -a acc-1 -id dec-1 -s fail -by "Jennifer Walsh" -notes "needs follow-up"

`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account id. Required.")
	f.StringVar(&c.decision, "id", "", "Decision id. Required.")
	f.StringVar(&c.status, "s", "", "Review verdict: pass or fail. Required.")
	f.StringVar(&c.by, "by", "", "Reviewer name. Required.")
	f.StringVar(&c.notes, "notes", "", "Review notes.")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := camdash.ParseReviewStatus(c.status)
	if err != nil || status == camdash.ReviewPending {
		fmt.Fprintf(os.Stderr, "Error: verdict must be pass or fail, got %q\n", c.status)
		return subcommands.ExitUsageError
	}
	if c.by == "" {
		fmt.Fprintln(os.Stderr, "Error: a reviewer name is required")
		return subcommands.ExitUsageError
	}
	if err := OpenRepository().ReviewDecision(c.account, c.decision, status, c.by, c.notes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Decision %s marked %s\n", c.decision, status)
	return subcommands.ExitSuccess
}
