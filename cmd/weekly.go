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

// weeklyCmd holds the flags for the 'weekly' subcommand.
type weeklyCmd struct {
	account string
	week    string
	notes   string
	next    string
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "show or record weekly account reviews" }
func (*weeklyCmd) Usage() string {
	return `cab weekly -a <account-id> [-notes <text>] [-next <text>] [-w <date>]

  Without -notes and -next, shows the account's weekly review history. With
  either, records the review for the week containing -w, embedding that
  week's decisions as they stand.

Usage Examples:
$ cab weekly -a acc-1 -notes "stable week" -next "call the CFO"

`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account id. Required.")
	f.StringVar(&c.week, "w", camdash.Today().String(), "Any date in the review week.")
	f.StringVar(&c.notes, "notes", "", "Review notes for the week.")
	f.StringVar(&c.next, "next", "", "Next steps for the week.")
}

func (c *weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := OpenRepository()

	if c.notes == "" && c.next == "" {
		a, ok := r.Account(c.account)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: account %q not found\n", c.account)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.WeeklyReviewsMarkdown(a.Name, r.WeeklyReviewsForAccount(a.ID)))
		return subcommands.ExitSuccess
	}

	weekOf, err := camdash.ParseDate(c.week)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	review, err := r.RecordWeeklyReview(c.account, c.notes, c.next, weekOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded weekly review for week of %s (%d decisions)\n", review.WeekOf, len(review.Decisions))
	return subcommands.ExitSuccess
}
