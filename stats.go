package camdash

import (
	"math"
	"time"
)

// DashboardStats are the aggregate figures shown at the top of the dashboard,
// always computed over the full unfiltered collection.
type DashboardStats struct {
	TotalAccounts      int
	TotalARBalance     Money
	CriticalAccounts   int
	HighRiskAccounts   int
	MediumRiskAccounts int
	LowRiskAccounts    int
	AverageHealthScore int
	DecisionsThisWeek  int
}

// RiskCount returns the count for one risk level.
func (s DashboardStats) RiskCount(r RiskLevel) int {
	switch r {
	case RiskCritical:
		return s.CriticalAccounts
	case RiskHigh:
		return s.HighRiskAccounts
	case RiskMedium:
		return s.MediumRiskAccounts
	case RiskLow:
		return s.LowRiskAccounts
	default:
		return 0
	}
}

// ComputeStats aggregates the account collection as of a reference time.
//
// The average health score is the rounded mean of each account's most recent
// score; accounts without any score are excluded from the mean, not counted
// as zero. DecisionsThisWeek counts decisions dated within the trailing seven
// days of the reference time, boundary included, at day granularity.
func ComputeStats(accounts []Account, now time.Time) DashboardStats {
	stats := DashboardStats{TotalAccounts: len(accounts), TotalARBalance: USD(0)}

	var scoreSum, scored int
	cutoff := DateOf(now).Add(-7)
	for _, a := range accounts {
		stats.TotalARBalance = stats.TotalARBalance.Add(a.ARBalance)
		switch a.RiskLevel {
		case RiskCritical:
			stats.CriticalAccounts++
		case RiskHigh:
			stats.HighRiskAccounts++
		case RiskMedium:
			stats.MediumRiskAccounts++
		case RiskLow:
			stats.LowRiskAccounts++
		}
		if s, ok := a.LatestHealthScore(); ok {
			scoreSum += s.Score
			scored++
		}
		for _, d := range a.Decisions {
			if !d.Date.Before(cutoff) {
				stats.DecisionsThisWeek++
			}
		}
	}
	if scored > 0 {
		stats.AverageHealthScore = int(math.Round(float64(scoreSum) / float64(scored)))
	}
	return stats
}
