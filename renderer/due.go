package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/camdash"
)

// DueMarkdown renders the weekly decision checklist: the accounts still
// without a decision in the current week, and whether the review deadline has
// passed.
func DueMarkdown(accounts []camdash.Account, now time.Time) string {
	var b strings.Builder

	week := camdash.Weekly.Range(camdash.DateOf(now))
	fmt.Fprintf(&b, "# Decisions Due for Week of %s\n\n", week.From)
	if camdash.ReviewUrgency(now) {
		fmt.Fprint(&b, "**Review deadline passed** (Tuesday 17:00).\n\n")
	}

	pending := camdash.AccountsNeedingDecision(accounts, now)
	if len(pending) == 0 {
		fmt.Fprintln(&b, "Every account has a decision this week.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Account | Risk | AR Balance | DPD | CAM |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|")
	for _, a := range camdash.SortAccounts(pending, camdash.SortByRiskLevel, camdash.Ascending) {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			a.Name, a.RiskLevel.Label(), a.ARBalance.Compact(), a.DaysPastDue, a.CAMOwner)
	}
	fmt.Fprintf(&b, "\n%d of %d accounts still need a decision.\n", len(pending), len(accounts))

	return b.String()
}
