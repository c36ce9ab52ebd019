package camdash

import "time"

// wednesday is the fixed reference instant used across tests:
// Wednesday 2024-12-11, inside the Monday 2024-12-09 .. Sunday 2024-12-15 week.
var wednesday = time.Date(2024, 12, 11, 10, 0, 0, 0, time.UTC)

func acct(id, name string, risk RiskLevel, balance float64) Account {
	return Account{
		ID:        id,
		Name:      name,
		Status:    StatusActive,
		RiskLevel: risk,
		ARBalance: USD(balance),
		CAMOwner:  "Sarah Johnson",
	}
}

func score(v int, date string) HealthScore {
	return HealthScore{Score: v, Date: MustParseDate(date)}
}

func decision(id, date string) Decision {
	return Decision{
		ID:          id,
		Date:        MustParseDate(date),
		Category:    CategoryActionPlan,
		Title:       "t",
		Description: "d",
		Rationale:   "r",
	}
}
