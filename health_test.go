package camdash

import "testing"

func TestHealthTrend(t *testing.T) {
	tests := []struct {
		name     string
		scores   []HealthScore
		want     Trend
		wantDiff int
	}{
		{"up", []HealthScore{score(80, "2024-12-09"), score(50, "2024-12-02")}, TrendUp, 30},
		{"down", []HealthScore{score(45, "2024-12-09"), score(55, "2024-12-02")}, TrendDown, -10},
		{"stable", []HealthScore{score(52, "2024-12-09"), score(50, "2024-12-02")}, TrendStable, 2},
		{"threshold is exclusive", []HealthScore{score(55, "2024-12-09"), score(50, "2024-12-02")}, TrendStable, 5},
		{"one score", []HealthScore{score(80, "2024-12-09")}, TrendNone, 0},
		{"no scores", nil, TrendNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := acct("a", "A", RiskLow, 0)
			a.HealthScores = tt.scores
			trend, diff := a.HealthTrend()
			if trend != tt.want || diff != tt.wantDiff {
				t.Errorf("HealthTrend() = (%v, %d), want (%v, %d)", trend, diff, tt.want, tt.wantDiff)
			}
		})
	}
}

func TestHealthTrend_UnsortedStorage(t *testing.T) {
	// stored oldest-first: the trend must still compare the two newest
	a := acct("a", "A", RiskLow, 0)
	a.HealthScores = []HealthScore{
		score(62, "2024-11-25"),
		score(55, "2024-12-02"),
		score(45, "2024-12-09"),
	}
	trend, diff := a.HealthTrend()
	if trend != TrendDown || diff != -10 {
		t.Errorf("HealthTrend() = (%v, %d), want (down, -10)", trend, diff)
	}
}

func TestScoreAsOf(t *testing.T) {
	scores := []HealthScore{
		score(45, "2024-12-09"),
		score(55, "2024-12-02"),
		score(62, "2024-11-25"),
	}
	tests := []struct {
		on     string
		want   int
		wantOK bool
	}{
		{"2024-12-10", 45, true},
		{"2024-12-09", 45, true}, // on the date itself
		{"2024-12-05", 55, true},
		{"2024-11-25", 62, true},
		{"2024-11-20", 0, false}, // nothing in effect yet
	}
	for _, tt := range tests {
		got, ok := ScoreAsOf(scores, MustParseDate(tt.on))
		if ok != tt.wantOK {
			t.Errorf("ScoreAsOf(%s) ok = %v, want %v", tt.on, ok, tt.wantOK)
			continue
		}
		if ok && got.Score != tt.want {
			t.Errorf("ScoreAsOf(%s) = %d, want %d", tt.on, got.Score, tt.want)
		}
	}
}

func TestScoreAsOf_TieBreaksByStoredOrder(t *testing.T) {
	first := HealthScore{Score: 70, Date: MustParseDate("2024-12-02")}
	second := HealthScore{Score: 30, Date: MustParseDate("2024-12-02")}
	got, ok := ScoreAsOf([]HealthScore{first, second}, MustParseDate("2024-12-05"))
	if !ok || got.Score != 70 {
		t.Errorf("ScoreAsOf() = (%v, %v), want the first stored score (70)", got, ok)
	}
}

func TestTrendAsOf(t *testing.T) {
	scores := []HealthScore{
		score(45, "2024-12-09"),
		score(55, "2024-12-02"),
		score(62, "2024-11-25"),
	}
	tests := []struct {
		on   string
		want Trend
	}{
		{"2024-12-09", TrendDown}, // 45 vs 55
		{"2024-12-03", TrendDown}, // 55 in effect vs 62 before it
		{"2024-12-02", TrendDown},
		{"2024-11-25", TrendNone}, // no earlier score
		{"2024-11-01", TrendNone}, // no score in effect
	}
	for _, tt := range tests {
		if got := TrendAsOf(scores, MustParseDate(tt.on)); got != tt.want {
			t.Errorf("TrendAsOf(%s) = %v, want %v", tt.on, got, tt.want)
		}
	}
}

func TestHealthScore_Validate(t *testing.T) {
	good := HealthScore{Score: 50, Date: MustParseDate("2024-12-09"),
		Factors: HealthFactors{PaymentBehavior: 40, CommunicationQuality: 60, RiskLevel: 50, TrendDirection: 55}}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	bad := good
	bad.Score = 120
	if err := bad.Validate(); err == nil {
		t.Error("Validate() with score 120 expected an error")
	}
	bad = good
	bad.Factors.TrendDirection = -1
	if err := bad.Validate(); err == nil {
		t.Error("Validate() with negative factor expected an error")
	}
}
