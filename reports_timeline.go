package camdash

// TimelineEntry is a decision annotated with the health score that was in
// effect on its date, and the health trend at that time.
type TimelineEntry struct {
	Decision Decision
	Health   *HealthScore // nil when no score predates the decision
	Trend    Trend
}

// Timeline is the decision history of one account, newest first, correlated
// with the account's health score history.
type Timeline struct {
	AccountID   string
	AccountName string
	Entries     []TimelineEntry
}

// NewTimeline builds the decision timeline for an account. Decisions are
// sorted newest first regardless of stored order.
func NewTimeline(a Account) *Timeline {
	t := &Timeline{AccountID: a.ID, AccountName: a.Name}
	for _, d := range a.decisionsDesc() {
		entry := TimelineEntry{Decision: d, Trend: TrendAsOf(a.HealthScores, d.Date)}
		if score, ok := ScoreAsOf(a.HealthScores, d.Date); ok {
			entry.Health = &score
		}
		t.Entries = append(t.Entries, entry)
	}
	return t
}
