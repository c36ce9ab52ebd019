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

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	risk   string
	status string
	cam    string
	query  string
	sort   string
	desc   bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list accounts with filtering and sorting" }
func (*listCmd) Usage() string {
	return `cab list [-risk <level>] [-status <status>] [-cam <name>] [-q <text>] [-sort <field>] [-desc]

  Lists accounts. Filters combine; the sort defaults to risk level, most
  urgent first.

Usage Examples:
# Critical accounts by balance, largest first.
$ cab list -risk critical -sort balance -desc

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.risk, "risk", "", "Only accounts at this risk level (critical, high, medium, low).")
	f.StringVar(&c.status, "status", "", "Only accounts in this status (active, on_hold, payment_plan, legal, collections, write_off, closed).")
	f.StringVar(&c.cam, "cam", "", "Only accounts owned by this CAM.")
	f.StringVar(&c.query, "q", "", "Only accounts whose name or CAM owner contains this text.")
	f.StringVar(&c.sort, "sort", "risk", "Sort field: risk, name, balance, dpd, health.")
	f.BoolVar(&c.desc, "desc", false, "Reverse the sort order.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var state camdash.FilterState
	if c.risk != "" {
		r, err := camdash.ParseRiskLevel(c.risk)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		state.RiskLevel = &r
	}
	if c.status != "" {
		s, err := camdash.ParseAccountStatus(c.status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		state.Status = &s
	}
	state.CAMOwner = c.cam
	state.SearchQuery = c.query

	field, err := camdash.ParseSortField(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	dir := camdash.Ascending
	if c.desc {
		dir = camdash.Descending
	}

	accounts := OpenRepository().Accounts()
	accounts = camdash.SortAccounts(camdash.Filter(accounts, state), field, dir)
	printMarkdown(renderer.AccountsMarkdown(accounts))
	return subcommands.ExitSuccess
}
