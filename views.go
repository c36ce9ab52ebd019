package camdash

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterState selects a subset of accounts. Nil enum fields and an empty
// CAMOwner mean "all"; the search query matches name or CAM owner,
// case-insensitively, as a substring.
type FilterState struct {
	RiskLevel   *RiskLevel
	Status      *AccountStatus
	CAMOwner    string
	SearchQuery string
}

// Filter keeps the accounts matching every set criterion, in original order.
func Filter(accounts []Account, f FilterState) []Account {
	query := strings.ToLower(f.SearchQuery)
	var out []Account
	for _, a := range accounts {
		if f.RiskLevel != nil && a.RiskLevel != *f.RiskLevel {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		if f.CAMOwner != "" && a.CAMOwner != f.CAMOwner {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Name), query) &&
			!strings.Contains(strings.ToLower(a.CAMOwner), query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// SortField selects the account attribute to order by.
type SortField int

const (
	SortByRiskLevel SortField = iota // most urgent first ascending
	SortByName
	SortByARBalance
	SortByDaysPastDue
	SortByHealthScore
)

func (f SortField) String() string {
	switch f {
	case SortByRiskLevel:
		return "risk"
	case SortByName:
		return "name"
	case SortByARBalance:
		return "balance"
	case SortByDaysPastDue:
		return "dpd"
	case SortByHealthScore:
		return "health"
	default:
		return "unknown"
	}
}

// ParseSortField parses a string into a SortField.
func ParseSortField(s string) (SortField, error) {
	switch s {
	case "risk", "riskLevel":
		return SortByRiskLevel, nil
	case "name":
		return SortByName, nil
	case "balance", "arBalance":
		return SortByARBalance, nil
	case "dpd", "daysPastDue":
		return SortByDaysPastDue, nil
	case "health", "healthScore":
		return SortByHealthScore, nil
	default:
		return 0, fmt.Errorf("unknown sort field: %q", s)
	}
}

// SortDirection orders ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// ParseSortDirection parses "asc" or "desc".
func ParseSortDirection(s string) (SortDirection, error) {
	switch s {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return 0, fmt.Errorf("unknown sort direction: %q", s)
	}
}

// latestScoreOrZero is the health sort key: the most recent score, 0 when the
// account has none.
func latestScoreOrZero(a Account) int {
	if s, ok := a.LatestHealthScore(); ok {
		return s.Score
	}
	return 0
}

// SortAccounts returns a sorted copy of the accounts. The sort is stable:
// equal keys keep their relative input order. Names compare with locale-aware
// collation, ignoring case.
func SortAccounts(accounts []Account, field SortField, direction SortDirection) []Account {
	var compare func(a, b Account) int
	switch field {
	case SortByName:
		c := collate.New(language.AmericanEnglish, collate.IgnoreCase)
		compare = func(a, b Account) int { return c.CompareString(a.Name, b.Name) }
	case SortByARBalance:
		compare = func(a, b Account) int { return a.ARBalance.Cmp(b.ARBalance) }
	case SortByDaysPastDue:
		compare = func(a, b Account) int { return a.DaysPastDue - b.DaysPastDue }
	case SortByRiskLevel:
		compare = func(a, b Account) int { return a.RiskLevel.Rank() - b.RiskLevel.Rank() }
	case SortByHealthScore:
		compare = func(a, b Account) int { return latestScoreOrZero(a) - latestScoreOrZero(b) }
	default:
		panic("unknown sort field")
	}

	sorted := slices.Clone(accounts)
	slices.SortStableFunc(sorted, func(a, b Account) int {
		cmp := compare(a, b)
		if direction == Descending {
			return -cmp
		}
		return cmp
	})
	return sorted
}

// CAMOwners returns the distinct CAM owner names across accounts, sorted.
func CAMOwners(accounts []Account) []string {
	seen := make(map[string]bool)
	var owners []string
	for _, a := range accounts {
		if !seen[a.CAMOwner] {
			seen[a.CAMOwner] = true
			owners = append(owners, a.CAMOwner)
		}
	}
	slices.Sort(owners)
	return owners
}
