package camdash

import (
	"slices"
	"time"
)

// StaticContext is the slow-changing qualitative background of an account,
// distinct from the fast-changing decision and health score history.
type StaticContext struct {
	Background        string `json:"background"`
	PaymentPatterns   string `json:"paymentPatterns"`
	RelationshipNotes string `json:"relationshipNotes"`
	KeyContacts       string `json:"keyContacts"`
}

// Facility is a sub-unit of a parent account with its own receivables.
type Facility struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ARBalance   Money  `json:"arBalance"`
	DaysPastDue int    `json:"daysPastDue"`
}

// Account is a financial account under collection management.
//
// Note that a parent account's ARBalance and DaysPastDue are stored
// independently of its facilities' figures, and nothing reconciles them.
// Callers that want the facilities' view can compare with FacilityARTotal.
type Account struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	ParentID   string     `json:"parentId,omitempty"`
	IsParent   bool       `json:"isParent"`
	Facilities []Facility `json:"facilities,omitempty"`

	ARBalance   Money `json:"arBalance"`
	DaysPastDue int   `json:"daysPastDue"`
	CreditLimit Money `json:"creditLimit,omitzero"`

	Status    AccountStatus `json:"status"`
	RiskLevel RiskLevel     `json:"riskLevel"`

	// CAMOwner is a free-text match to a CAM by name, not a foreign key.
	CAMOwner string `json:"camOwner"`

	StaticContext StaticContext `json:"staticContext"`
	Decisions     []Decision    `json:"decisions"`
	HealthScores  []HealthScore `json:"healthScores"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// FacilityARTotal sums the facilities' AR balances. It is a read-only probe;
// no write path derives the account balance from it.
func (a Account) FacilityARTotal() Money {
	var total Money
	for _, f := range a.Facilities {
		total = total.Add(f.ARBalance)
	}
	return total
}

// healthScoresDesc returns the health scores sorted newest first. Stored
// scores are newest-first by convention only, so every temporal query sorts
// defensively. The sort is stable: equal dates keep their stored order.
func (a Account) healthScoresDesc() []HealthScore {
	scores := slices.Clone(a.HealthScores)
	slices.SortStableFunc(scores, func(x, y HealthScore) int {
		switch {
		case y.Date.Before(x.Date):
			return -1
		case x.Date.Before(y.Date):
			return 1
		default:
			return 0
		}
	})
	return scores
}

// LatestHealthScore returns the most recent health score snapshot, if any.
func (a Account) LatestHealthScore() (HealthScore, bool) {
	scores := a.healthScoresDesc()
	if len(scores) == 0 {
		return HealthScore{}, false
	}
	return scores[0], true
}

// HealthTrend compares the two most recent health scores. It returns the
// trend and the score delta. With fewer than two scores there is no trend.
func (a Account) HealthTrend() (Trend, int) {
	scores := a.healthScoresDesc()
	if len(scores) < 2 {
		return TrendNone, 0
	}
	diff := scores[0].Score - scores[1].Score
	return trendOf(diff), diff
}

// Decision returns the decision with the given id within this account.
func (a Account) Decision(id string) (Decision, bool) {
	for _, d := range a.Decisions {
		if d.ID == id {
			return d, true
		}
	}
	return Decision{}, false
}

// decisionsDesc returns the decisions sorted newest first, stable.
func (a Account) decisionsDesc() []Decision {
	decisions := slices.Clone(a.Decisions)
	slices.SortStableFunc(decisions, func(x, y Decision) int {
		switch {
		case y.Date.Before(x.Date):
			return -1
		case x.Date.Before(y.Date):
			return 1
		default:
			return 0
		}
	})
	return decisions
}
