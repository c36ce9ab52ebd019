package camdash

import (
	"slices"
	"testing"
)

func TestFilter_RiskLevel(t *testing.T) {
	accounts := []Account{
		acct("a", "Alpha", RiskCritical, 100),
		acct("b", "Beta", RiskLow, 200),
		acct("c", "Gamma", RiskCritical, 300),
		acct("d", "Delta", RiskHigh, 400),
	}
	critical := RiskCritical
	got := Filter(accounts, FilterState{RiskLevel: &critical})
	want := []string{"a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Filter() returned %d accounts, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Filter()[%d].ID = %q, want %q (original order must be preserved)", i, got[i].ID, id)
		}
	}
}

func TestFilter_SearchQuery(t *testing.T) {
	accounts := []Account{
		acct("a", "Sunrise Healthcare Group", RiskHigh, 100),
		acct("b", "Metro Hospital Network", RiskCritical, 200),
	}
	accounts[1].CAMOwner = "Mike Chen"

	tests := []struct {
		query string
		want  []string
	}{
		{"sunrise", []string{"a"}},
		{"METRO", []string{"b"}},
		{"mike", []string{"b"}}, // matches the CAM owner too
		{"nothing", nil},
		{"", []string{"a", "b"}},
	}
	for _, tt := range tests {
		got := Filter(accounts, FilterState{SearchQuery: tt.query})
		var ids []string
		for _, a := range got {
			ids = append(ids, a.ID)
		}
		if !slices.Equal(ids, tt.want) {
			t.Errorf("Filter(query=%q) = %v, want %v", tt.query, ids, tt.want)
		}
	}
}

func TestFilter_Combined(t *testing.T) {
	accounts := []Account{
		acct("a", "Alpha", RiskCritical, 100),
		acct("b", "Beta", RiskCritical, 200),
	}
	accounts[1].Status = StatusCollections
	status := StatusCollections
	critical := RiskCritical
	got := Filter(accounts, FilterState{RiskLevel: &critical, Status: &status})
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("Filter() = %v, want just %q", got, "b")
	}
}

func TestSortAccounts_RiskRank(t *testing.T) {
	accounts := []Account{
		acct("low", "L", RiskLow, 0),
		acct("crit", "C", RiskCritical, 0),
		acct("med", "M", RiskMedium, 0),
		acct("high", "H", RiskHigh, 0),
	}
	got := SortAccounts(accounts, SortByRiskLevel, Ascending)
	want := []string{"crit", "high", "med", "low"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("SortAccounts(risk, asc)[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
	got = SortAccounts(accounts, SortByRiskLevel, Descending)
	for i, id := range []string{"low", "med", "high", "crit"} {
		if got[i].ID != id {
			t.Errorf("SortAccounts(risk, desc)[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
	// input untouched
	if accounts[0].ID != "low" {
		t.Error("SortAccounts mutated its input")
	}
}

func TestSortAccounts_Stable(t *testing.T) {
	// identical balances inserted in a known order must come out in that order
	accounts := []Account{
		acct("first", "A", RiskLow, 500),
		acct("second", "B", RiskLow, 500),
		acct("third", "C", RiskLow, 500),
		acct("cheap", "D", RiskLow, 100),
	}
	got := SortAccounts(accounts, SortByARBalance, Ascending)
	want := []string{"cheap", "first", "second", "third"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("stable sort[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestSortAccounts_HealthScore(t *testing.T) {
	withScore := acct("scored", "S", RiskLow, 0)
	withScore.HealthScores = []HealthScore{score(80, "2024-12-09"), score(50, "2024-12-02")}
	noScore := acct("unscored", "U", RiskLow, 0)

	got := SortAccounts([]Account{withScore, noScore}, SortByHealthScore, Ascending)
	// an account with no score sorts as 0
	if got[0].ID != "unscored" || got[1].ID != "scored" {
		t.Errorf("SortAccounts(health, asc) = [%s %s], want [unscored scored]", got[0].ID, got[1].ID)
	}
}

func TestSortAccounts_Name(t *testing.T) {
	accounts := []Account{
		acct("b", "meadowbrook", RiskLow, 0),
		acct("a", "Coastal", RiskLow, 0),
		acct("c", "Valley", RiskLow, 0),
	}
	got := SortAccounts(accounts, SortByName, Ascending)
	// collation ignores case: meadowbrook sorts between Coastal and Valley
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("SortAccounts(name)[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestParseSortField(t *testing.T) {
	for _, s := range []string{"name", "balance", "dpd", "risk", "health"} {
		if _, err := ParseSortField(s); err != nil {
			t.Errorf("ParseSortField(%q) error = %v", s, err)
		}
	}
	if _, err := ParseSortField("bogus"); err == nil {
		t.Error("ParseSortField(bogus) expected an error")
	}
}

func TestCAMOwners(t *testing.T) {
	accounts := []Account{
		acct("a", "A", RiskLow, 0),
		acct("b", "B", RiskLow, 0),
		acct("c", "C", RiskLow, 0),
	}
	accounts[1].CAMOwner = "Mike Chen"
	got := CAMOwners(accounts)
	want := []string{"Mike Chen", "Sarah Johnson"}
	if !slices.Equal(got, want) {
		t.Errorf("CAMOwners() = %v, want %v", got, want)
	}
}
