package camdash

import "time"

// NeedsDecisionThisWeek reports whether the account has no decision dated
// within the current Monday-to-Sunday week of the reference time.
func NeedsDecisionThisWeek(a Account, now time.Time) bool {
	week := Weekly.Range(DateOf(now))
	for _, d := range a.Decisions {
		if week.Contains(d.Date) {
			return false
		}
	}
	return true
}

// AccountsNeedingDecision returns the accounts with no decision this week,
// in original order.
func AccountsNeedingDecision(accounts []Account, now time.Time) []Account {
	var out []Account
	for _, a := range accounts {
		if NeedsDecisionThisWeek(a, now) {
			out = append(out, a)
		}
	}
	return out
}

// ReviewUrgency reports whether the weekly-review prompt should be urgent:
// all of Tuesday, and from Tuesday 17:00 onward through Sunday.
func ReviewUrgency(now time.Time) bool {
	if now.Weekday() == time.Tuesday {
		return true
	}
	// This week's Tuesday at 17:00, Monday-start week.
	offset := (int(now.Weekday()) + 6) % 7 // days since Monday
	monday := now.AddDate(0, 0, -offset)
	deadline := time.Date(monday.Year(), monday.Month(), monday.Day()+1, 17, 0, 0, 0, now.Location())
	return now.After(deadline)
}
