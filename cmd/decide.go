package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/camdash"
	"github.com/google/subcommands"
)

// decideCmd holds the flags for the 'decide' subcommand.
type decideCmd struct {
	account   string
	date      string
	category  string
	title     string
	desc      string
	rationale string
	expected  string
	by        string
}

func (*decideCmd) Name() string     { return "decide" }
func (*decideCmd) Synopsis() string { return "record a decision on an account" }
func (*decideCmd) Usage() string {
	return `cab decide -a <account-id> -t <title> -desc <text> -r <rationale> [options]

  Records a decision on an account. The decision starts pending team-lead
  review.

Usage Examples:
$ cab decide -a acc-1 -t "Escalate to weekly check-ins" \
    -desc "Move from monthly to weekly contact." \
    -r "Balance is aging past 45 days." \
    -c action_plan -e "Payment within 30 days"

`
}

func (c *decideCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account id. Required.")
	f.StringVar(&c.date, "d", camdash.Today().String(), "Decision date.")
	f.StringVar(&c.category, "c", "action_plan", "Category: status, action_plan, risk_urgency, special_arrangement.")
	f.StringVar(&c.title, "t", "", "Short decision title. Required.")
	f.StringVar(&c.desc, "desc", "", "What was decided. Required.")
	f.StringVar(&c.rationale, "r", "", "Why it was decided. Required.")
	f.StringVar(&c.expected, "e", "", "Expected outcome.")
	f.StringVar(&c.by, "by", "", "Who made the decision.")
}

func (c *decideCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := camdash.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := camdash.ParseDecisionCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	d := camdash.Decision{
		Date:            date,
		Category:        category,
		Title:           c.title,
		Description:     c.desc,
		Rationale:       c.rationale,
		ExpectedOutcome: c.expected,
		CreatedBy:       c.by,
	}
	saved, err := OpenRepository().AddDecision(c.account, d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded decision %q (%s)\n", saved.Title, saved.ID)
	return subcommands.ExitSuccess
}
