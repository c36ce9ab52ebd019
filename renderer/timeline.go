package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/camdash"
)

// TimelineMarkdown renders an account's decision history, newest first, each
// decision annotated with the health standing at its date.
func TimelineMarkdown(t *camdash.Timeline) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Decision Timeline for %s\n\n", t.AccountName)
	if len(t.Entries) == 0 {
		fmt.Fprintln(&b, "No decisions recorded.")
		return b.String()
	}

	for _, e := range t.Entries {
		d := e.Decision
		fmt.Fprintf(&b, "## %s: %s\n\n", d.Date, d.Title)
		fmt.Fprintf(&b, "*%s*", d.Category.Label())
		if e.Health != nil {
			fmt.Fprintf(&b, " · health %d", e.Health.Score)
			if e.Trend != camdash.TrendNone {
				fmt.Fprintf(&b, " %s", trendArrow(e.Trend))
			}
		}
		fmt.Fprintf(&b, " · review: %s\n\n", reviewMark(d.ReviewStatus))

		fmt.Fprintf(&b, "%s\n\n", d.Description)
		fmt.Fprintf(&b, "**Rationale**: %s\n\n", d.Rationale)
		if d.ExpectedOutcome != "" {
			fmt.Fprintf(&b, "**Expected**: %s\n\n", d.ExpectedOutcome)
		}
		if d.ActualOutcome != "" {
			fmt.Fprintf(&b, "**Actual** (%s): %s\n\n", d.OutcomeDate, d.ActualOutcome)
		}
		if d.ReviewNotes != "" {
			fmt.Fprintf(&b, "**Review notes** (%s): %s\n\n", d.ReviewedBy, d.ReviewNotes)
		}
	}
	return b.String()
}
