package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/camdash"
)

// StatsMarkdown renders the dashboard header figures.
func StatsMarkdown(s camdash.DashboardStats, urgent bool) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Dashboard\n\n")
	if urgent {
		fmt.Fprint(&b, "**Weekly review due.**\n\n")
	}

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Accounts | %d |\n", s.TotalAccounts)
	fmt.Fprintf(&b, "| Total AR Balance | %s |\n", s.TotalARBalance.Compact())
	fmt.Fprintf(&b, "| Average Health | %d |\n", s.AverageHealthScore)
	fmt.Fprintf(&b, "| Decisions (7 days) | %d |\n", s.DecisionsThisWeek)

	fmt.Fprint(&b, "\n## By Risk Level\n\n")
	fmt.Fprintln(&b, "| Risk | Accounts |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, r := range camdash.RiskLevels() {
		fmt.Fprintf(&b, "| %s | %d |\n", r.Label(), s.RiskCount(r))
	}

	return b.String()
}
