package camdash

import (
	"fmt"
	"slices"
	"time"
)

// ReviewPeriod is the time window of the manager dashboard.
type ReviewPeriod int

const (
	ThisWeek ReviewPeriod = iota
	LastWeek
	LastTwoWeeks
	LastMonth
)

func (p ReviewPeriod) String() string {
	switch p {
	case ThisWeek:
		return "this-week"
	case LastWeek:
		return "last-week"
	case LastTwoWeeks:
		return "last-2-weeks"
	case LastMonth:
		return "last-month"
	default:
		return "unknown"
	}
}

// Label returns the human form used in report titles.
func (p ReviewPeriod) Label() string {
	switch p {
	case ThisWeek:
		return "This Week"
	case LastWeek:
		return "Last Week"
	case LastTwoWeeks:
		return "Last 2 Weeks"
	case LastMonth:
		return "Last Month"
	default:
		return "Unknown"
	}
}

// ParseReviewPeriod parses a string into a ReviewPeriod.
func ParseReviewPeriod(s string) (ReviewPeriod, error) {
	switch s {
	case "this-week", "week":
		return ThisWeek, nil
	case "last-week":
		return LastWeek, nil
	case "last-2-weeks":
		return LastTwoWeeks, nil
	case "last-month", "month":
		return LastMonth, nil
	default:
		return 0, fmt.Errorf("unknown review period: %q", s)
	}
}

// Range resolves the period to a date range around the reference time.
// "Last month" is the trailing four full weeks plus the current one.
func (p ReviewPeriod) Range(now time.Time) Range {
	week := Weekly.Range(DateOf(now))
	switch p {
	case ThisWeek:
		return week
	case LastWeek:
		return Range{From: week.From.Add(-7), To: week.To.Add(-7)}
	case LastTwoWeeks:
		return Range{From: week.From.Add(-7), To: week.To}
	case LastMonth:
		return Range{From: week.From.Add(-28), To: week.To}
	default:
		panic("unknown review period")
	}
}

// DecisionRef is a decision flattened out of its account for cross-account
// listings, with the attribution the per-manager rollup needs.
type DecisionRef struct {
	Decision
	AccountID   string
	AccountName string
	CAMOwner    string
}

// CAMReviewStats are per-manager decision review counts.
type CAMReviewStats struct {
	Total, Passed, Failed, Pending int
}

// ReviewSummary is the manager dashboard: every decision in a time window
// with its review standing, rolled up per CAM, plus the accounts that demand
// attention and the ones still without a decision this week.
type ReviewSummary struct {
	Period Range

	Decisions []DecisionRef // newest first
	Total     int
	Passed    int
	Failed    int
	Pending   int
	ByCAM     map[string]CAMReviewStats

	// Attention lists critical and high risk accounts, most urgent first.
	Attention []Account
	// NeedingDecision lists accounts without a decision in the current week.
	NeedingDecision []Account
}

// NewReviewSummary computes the manager dashboard over an account snapshot.
// camOwner narrows the summary to one manager's book; empty means all. It is
// a pure reduction of its inputs.
func NewReviewSummary(accounts []Account, period ReviewPeriod, camOwner string, now time.Time) *ReviewSummary {
	if camOwner != "" {
		accounts = Filter(accounts, FilterState{CAMOwner: camOwner})
	}

	s := &ReviewSummary{
		Period: period.Range(now),
		ByCAM:  make(map[string]CAMReviewStats),
	}

	for _, a := range accounts {
		for _, d := range a.Decisions {
			if !s.Period.Contains(d.Date) {
				continue
			}
			s.Decisions = append(s.Decisions, DecisionRef{
				Decision:    d,
				AccountID:   a.ID,
				AccountName: a.Name,
				CAMOwner:    a.CAMOwner,
			})
		}
	}
	slices.SortStableFunc(s.Decisions, func(x, y DecisionRef) int {
		switch {
		case y.Date.Before(x.Date):
			return -1
		case x.Date.Before(y.Date):
			return 1
		default:
			return 0
		}
	})

	for _, d := range s.Decisions {
		s.Total++
		c := s.ByCAM[d.CAMOwner]
		c.Total++
		switch d.ReviewStatus {
		case ReviewPass:
			s.Passed++
			c.Passed++
		case ReviewFail:
			s.Failed++
			c.Failed++
		default:
			s.Pending++
			c.Pending++
		}
		s.ByCAM[d.CAMOwner] = c
	}

	for _, a := range accounts {
		if a.RiskLevel == RiskCritical || a.RiskLevel == RiskHigh {
			s.Attention = append(s.Attention, a)
		}
	}
	s.Attention = SortAccounts(s.Attention, SortByRiskLevel, Ascending)
	s.NeedingDecision = AccountsNeedingDecision(accounts, now)

	return s
}
