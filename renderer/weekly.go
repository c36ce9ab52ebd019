package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/camdash"
)

// WeeklyReviewsMarkdown renders an account's weekly review history.
func WeeklyReviewsMarkdown(accountName string, reviews []camdash.WeeklyReview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weekly Reviews for %s\n\n", accountName)
	if len(reviews) == 0 {
		fmt.Fprintln(&b, "No weekly reviews recorded.")
		return b.String()
	}

	for _, w := range reviews {
		fmt.Fprintf(&b, "## Week of %s\n\n", w.WeekOf)
		if w.Notes != "" {
			fmt.Fprintf(&b, "%s\n\n", w.Notes)
		}
		if w.NextSteps != "" {
			fmt.Fprintf(&b, "**Next steps**: %s\n\n", w.NextSteps)
		}
		if len(w.Decisions) > 0 {
			fmt.Fprintln(&b, "| Date | Title | Review |")
			fmt.Fprintln(&b, "|:---|:---|:---|")
			for _, d := range w.Decisions {
				fmt.Fprintf(&b, "| %s | %s | %s |\n", d.Date, d.Title, reviewMark(d.ReviewStatus))
			}
			fmt.Fprintln(&b)
		}
	}
	return b.String()
}

// HealthHistoryMarkdown renders an account's health score history, newest
// first as stored.
func HealthHistoryMarkdown(accountName string, scores []camdash.HealthScore) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Health History for %s\n\n", accountName)
	if len(scores) == 0 {
		fmt.Fprintln(&b, "No health scores recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Score | Payment | Communication | Risk | Trend |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, s := range scores {
		f := s.Factors
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %d |\n",
			s.Date, s.Score, f.PaymentBehavior, f.CommunicationQuality, f.RiskLevel, f.TrendDirection)
	}
	return b.String()
}
