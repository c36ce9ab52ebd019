package renderer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/camdash"
)

// SummaryMarkdown renders the manager review dashboard.
func SummaryMarkdown(s *camdash.ReviewSummary, period camdash.ReviewPeriod) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Review Summary: %s\n\n", period.Label())
	fmt.Fprintf(&b, "%s to %s\n\n", s.Period.From, s.Period.To)

	fmt.Fprintln(&b, "| Decisions | Passed | Failed | Pending |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n", s.Total, s.Passed, s.Failed, s.Pending)

	if len(s.ByCAM) > 0 {
		fmt.Fprint(&b, "\n## By CAM\n\n")
		fmt.Fprintln(&b, "| CAM | Decisions | Passed | Failed | Pending |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
		names := make([]string, 0, len(s.ByCAM))
		for name := range s.ByCAM {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			c := s.ByCAM[name]
			fmt.Fprintf(&b, "| %s | %d | %d | %d | %d |\n", name, c.Total, c.Passed, c.Failed, c.Pending)
		}
	}

	if len(s.Decisions) > 0 {
		fmt.Fprint(&b, "\n## Decisions\n\n")
		fmt.Fprintln(&b, "| Date | Account | Title | CAM | Review |")
		fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|")
		for _, d := range s.Decisions {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				d.Date, d.AccountName, d.Title, d.CAMOwner, reviewMark(d.ReviewStatus))
		}
	}

	if len(s.Attention) > 0 {
		fmt.Fprint(&b, "\n## Needs Attention\n\n")
		fmt.Fprintln(&b, "| Account | Risk | AR Balance | DPD | Health |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|")
		for _, a := range s.Attention {
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
				a.Name, a.RiskLevel.Label(), a.ARBalance.Compact(), a.DaysPastDue, healthCell(a))
		}
	}

	if len(s.NeedingDecision) > 0 {
		fmt.Fprint(&b, "\n## No Decision This Week\n\n")
		for _, a := range s.NeedingDecision {
			fmt.Fprintf(&b, "- %s (%s, %s)\n", a.Name, a.RiskLevel.Label(), a.CAMOwner)
		}
	}

	return b.String()
}
