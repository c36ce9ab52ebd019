package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/camdash"
)

var wednesday = time.Date(2024, 12, 11, 10, 0, 0, 0, time.UTC)

func sample() camdash.Account {
	a := camdash.Account{
		ID:          "acc-1",
		Name:        "Sunrise Healthcare Group",
		RiskLevel:   camdash.RiskHigh,
		Status:      camdash.StatusActive,
		ARBalance:   camdash.USD(575000),
		DaysPastDue: 45,
		CAMOwner:    "Sarah Johnson",
	}
	a.HealthScores = []camdash.HealthScore{
		{Score: 45, Date: camdash.MustParseDate("2024-12-09")},
		{Score: 55, Date: camdash.MustParseDate("2024-12-02")},
	}
	a.Decisions = []camdash.Decision{{
		ID:          "dec-1",
		Date:        camdash.MustParseDate("2024-12-10"),
		Category:    camdash.CategoryActionPlan,
		Title:       "Escalate to weekly payment check-ins",
		Description: "Move from monthly to weekly contact.",
		Rationale:   "Balance is aging past 45 days.",
	}}
	return a
}

func TestAccountsMarkdown(t *testing.T) {
	got := AccountsMarkdown([]camdash.Account{sample()})
	for _, want := range []string{"# Accounts (1)", "Sunrise Healthcare Group", "$575K", "High", "45 ↓"} {
		if !strings.Contains(got, want) {
			t.Errorf("AccountsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestAccountsMarkdown_Empty(t *testing.T) {
	if got := AccountsMarkdown(nil); !strings.Contains(got, "No accounts match.") {
		t.Errorf("AccountsMarkdown(nil) = %q", got)
	}
}

func TestAccountMarkdown_Facilities(t *testing.T) {
	a := sample()
	a.IsParent = true
	a.Facilities = []camdash.Facility{
		{ID: "f1", Name: "Sunrise North", ARBalance: camdash.USD(300000), DaysPastDue: 50},
		{ID: "f2", Name: "Sunrise South", ARBalance: camdash.USD(275000), DaysPastDue: 30},
	}
	got := AccountMarkdown(a)
	for _, want := range []string{"## Facilities", "Sunrise North", "**Total**"} {
		if !strings.Contains(got, want) {
			t.Errorf("AccountMarkdown() missing %q", want)
		}
	}
}

func TestTimelineMarkdown(t *testing.T) {
	got := TimelineMarkdown(camdash.NewTimeline(sample()))
	for _, want := range []string{
		"# Decision Timeline for Sunrise Healthcare Group",
		"Escalate to weekly payment check-ins",
		"Action Plan",
		"health 45 ↓",
		"review: pending",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TimelineMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := camdash.NewReviewSummary([]camdash.Account{sample()}, camdash.ThisWeek, "", wednesday)
	got := SummaryMarkdown(s, camdash.ThisWeek)
	for _, want := range []string{"# Review Summary: This Week", "## By CAM", "Sarah Johnson", "## Needs Attention"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestDueMarkdown(t *testing.T) {
	undecided := camdash.Account{ID: "b", Name: "Meadowbrook", RiskLevel: camdash.RiskLow, CAMOwner: "Mike Chen"}
	got := DueMarkdown([]camdash.Account{sample(), undecided}, wednesday)
	if !strings.Contains(got, "Meadowbrook") || strings.Contains(got, "Sunrise Healthcare Group") {
		t.Errorf("DueMarkdown() should list only undecided accounts:\n%s", got)
	}
	if !strings.Contains(got, "1 of 2 accounts") {
		t.Errorf("DueMarkdown() missing the tally:\n%s", got)
	}
	if !strings.Contains(got, "Review deadline passed") {
		t.Errorf("DueMarkdown() on a Wednesday should flag the deadline:\n%s", got)
	}
}
