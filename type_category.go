package camdash

import (
	"encoding/json"
	"fmt"
)

// DecisionCategory classifies a recorded decision.
type DecisionCategory int

const (
	CategoryStatus DecisionCategory = iota
	CategoryActionPlan
	CategoryRiskUrgency
	CategorySpecialArrangement
)

func (c DecisionCategory) String() string {
	switch c {
	case CategoryStatus:
		return "status"
	case CategoryActionPlan:
		return "action_plan"
	case CategoryRiskUrgency:
		return "risk_urgency"
	case CategorySpecialArrangement:
		return "special_arrangement"
	default:
		return "unknown"
	}
}

// Label returns the human form used in timelines.
func (c DecisionCategory) Label() string {
	switch c {
	case CategoryStatus:
		return "Status Change"
	case CategoryActionPlan:
		return "Action Plan"
	case CategoryRiskUrgency:
		return "Risk/Urgency"
	case CategorySpecialArrangement:
		return "Special Arrangement"
	default:
		return "Unknown"
	}
}

// ParseDecisionCategory parses a string into a DecisionCategory.
func ParseDecisionCategory(s string) (DecisionCategory, error) {
	switch s {
	case "status":
		return CategoryStatus, nil
	case "action_plan":
		return CategoryActionPlan, nil
	case "risk_urgency":
		return CategoryRiskUrgency, nil
	case "special_arrangement":
		return CategorySpecialArrangement, nil
	default:
		return 0, fmt.Errorf("unknown decision category: %q", s)
	}
}

func (c DecisionCategory) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *DecisionCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseDecisionCategory(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
