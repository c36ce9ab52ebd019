package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/camdash"
)

// AccountsMarkdown renders the account list as one table row per account.
func AccountsMarkdown(accounts []camdash.Account) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Accounts (%d)\n\n", len(accounts))
	if len(accounts) == 0 {
		fmt.Fprintln(&b, "No accounts match.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Account | Risk | Status | AR Balance | DPD | Health | CAM |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|:---|:---|")
	for _, a := range accounts {
		name := a.Name
		if a.IsParent {
			name = fmt.Sprintf("%s (%d facilities)", a.Name, len(a.Facilities))
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s | %s |\n",
			name,
			a.RiskLevel.Label(),
			a.Status.Label(),
			a.ARBalance.Compact(),
			a.DaysPastDue,
			healthCell(a),
			a.CAMOwner,
		)
	}
	return b.String()
}

// AccountMarkdown renders the full detail view of one account.
func AccountMarkdown(a camdash.Account) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", a.Name)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Risk Level | %s |\n", a.RiskLevel.Label())
	fmt.Fprintf(&b, "| Status | %s |\n", a.Status.Label())
	fmt.Fprintf(&b, "| AR Balance | %s |\n", a.ARBalance)
	fmt.Fprintf(&b, "| Days Past Due | %d |\n", a.DaysPastDue)
	if !a.CreditLimit.IsZero() {
		fmt.Fprintf(&b, "| Credit Limit | %s |\n", a.CreditLimit)
	}
	fmt.Fprintf(&b, "| CAM Owner | %s |\n", a.CAMOwner)
	if s, ok := a.LatestHealthScore(); ok {
		trend, diff := a.HealthTrend()
		cell := fmt.Sprintf("%d", s.Score)
		if trend != camdash.TrendNone {
			cell = fmt.Sprintf("%d %s (%+d)", s.Score, trendArrow(trend), diff)
		}
		fmt.Fprintf(&b, "| Health | %s |\n", cell)
	}

	if a.IsParent && len(a.Facilities) > 0 {
		fmt.Fprint(&b, "\n## Facilities\n\n")
		fmt.Fprintln(&b, "| Facility | AR Balance | DPD |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, f := range a.Facilities {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", f.Name, f.ARBalance, f.DaysPastDue)
		}
		fmt.Fprintf(&b, "| **Total** | **%s** | |\n", a.FacilityARTotal())
	}

	ctx := a.StaticContext
	if ctx.Background != "" || ctx.PaymentPatterns != "" || ctx.RelationshipNotes != "" || ctx.KeyContacts != "" {
		fmt.Fprint(&b, "\n## Context\n\n")
		section := func(title, text string) {
			if text != "" {
				fmt.Fprintf(&b, "**%s**: %s\n\n", title, text)
			}
		}
		section("Background", ctx.Background)
		section("Payment Patterns", ctx.PaymentPatterns)
		section("Relationship", ctx.RelationshipNotes)
		section("Key Contacts", ctx.KeyContacts)
	}

	return b.String()
}
