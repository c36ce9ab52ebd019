package camdash

import "testing"

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, wednesday)
	if stats.TotalAccounts != 0 {
		t.Errorf("TotalAccounts = %d, want 0", stats.TotalAccounts)
	}
	if !stats.TotalARBalance.IsZero() {
		t.Errorf("TotalARBalance = %v, want zero", stats.TotalARBalance)
	}
	// no division by zero: the average is simply 0
	if stats.AverageHealthScore != 0 {
		t.Errorf("AverageHealthScore = %d, want 0", stats.AverageHealthScore)
	}
}

func TestComputeStats_Balances(t *testing.T) {
	accounts := []Account{
		acct("a", "A", RiskLow, 100),
		acct("b", "B", RiskLow, 250),
	}
	stats := ComputeStats(accounts, wednesday)
	if !stats.TotalARBalance.Equal(USD(350)) {
		t.Errorf("TotalARBalance = %v, want %v", stats.TotalARBalance, USD(350))
	}
	if stats.TotalAccounts != 2 {
		t.Errorf("TotalAccounts = %d, want 2", stats.TotalAccounts)
	}
}

func TestComputeStats_RiskCounts(t *testing.T) {
	accounts := []Account{
		acct("a", "A", RiskCritical, 0),
		acct("b", "B", RiskCritical, 0),
		acct("c", "C", RiskHigh, 0),
		acct("d", "D", RiskMedium, 0),
		acct("e", "E", RiskLow, 0),
	}
	stats := ComputeStats(accounts, wednesday)
	if stats.CriticalAccounts != 2 || stats.HighRiskAccounts != 1 ||
		stats.MediumRiskAccounts != 1 || stats.LowRiskAccounts != 1 {
		t.Errorf("risk counts = %d/%d/%d/%d, want 2/1/1/1",
			stats.CriticalAccounts, stats.HighRiskAccounts, stats.MediumRiskAccounts, stats.LowRiskAccounts)
	}
}

func TestComputeStats_AverageExcludesUnscored(t *testing.T) {
	scored := acct("a", "A", RiskLow, 0)
	scored.HealthScores = []HealthScore{score(80, "2024-12-09")}
	other := acct("b", "B", RiskLow, 0)
	other.HealthScores = []HealthScore{score(50, "2024-12-09")}
	unscored := acct("c", "C", RiskLow, 0)

	stats := ComputeStats([]Account{scored, other, unscored}, wednesday)
	// mean of 80 and 50, the unscored account does not drag it to 43
	if stats.AverageHealthScore != 65 {
		t.Errorf("AverageHealthScore = %d, want 65", stats.AverageHealthScore)
	}
}

func TestComputeStats_AverageUsesLatestScore(t *testing.T) {
	a := acct("a", "A", RiskLow, 0)
	// stored oldest-first on purpose: the latest score must still win
	a.HealthScores = []HealthScore{score(20, "2024-11-01"), score(90, "2024-12-09")}
	stats := ComputeStats([]Account{a}, wednesday)
	if stats.AverageHealthScore != 90 {
		t.Errorf("AverageHealthScore = %d, want 90", stats.AverageHealthScore)
	}
}

func TestComputeStats_DecisionsThisWeek(t *testing.T) {
	a := acct("a", "A", RiskLow, 0)
	a.Decisions = []Decision{
		decision("in-today", "2024-12-11"),
		decision("in-boundary", "2024-12-04"), // exactly 7 days back, inclusive
		decision("out-old", "2024-12-03"),
	}
	b := acct("b", "B", RiskLow, 0)
	b.Decisions = []Decision{decision("in-recent", "2024-12-10")}

	stats := ComputeStats([]Account{a, b}, wednesday)
	if stats.DecisionsThisWeek != 3 {
		t.Errorf("DecisionsThisWeek = %d, want 3", stats.DecisionsThisWeek)
	}
}
