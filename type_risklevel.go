package camdash

import (
	"encoding/json"
	"fmt"
)

// RiskLevel classifies how urgent an account is. The declaration order is the
// urgency rank used for sorting: critical sorts first ascending.
type RiskLevel int

const (
	RiskCritical RiskLevel = iota
	RiskHigh
	RiskMedium
	RiskLow
)

// Rank returns the fixed urgency rank (critical=0, high=1, medium=2, low=3).
func (r RiskLevel) Rank() int { return int(r) }

func (r RiskLevel) String() string {
	switch r {
	case RiskCritical:
		return "critical"
	case RiskHigh:
		return "high"
	case RiskMedium:
		return "medium"
	case RiskLow:
		return "low"
	default:
		return "unknown"
	}
}

// Label returns the human form used in reports.
func (r RiskLevel) Label() string {
	switch r {
	case RiskCritical:
		return "Critical"
	case RiskHigh:
		return "High"
	case RiskMedium:
		return "Medium"
	case RiskLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// ParseRiskLevel parses a string into a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch s {
	case "critical":
		return RiskCritical, nil
	case "high":
		return RiskHigh, nil
	case "medium":
		return RiskMedium, nil
	case "low":
		return RiskLow, nil
	default:
		return 0, fmt.Errorf("unknown risk level: %q", s)
	}
}

// RiskLevels lists all levels in rank order.
func RiskLevels() []RiskLevel { return []RiskLevel{RiskCritical, RiskHigh, RiskMedium, RiskLow} }

func (r RiskLevel) MarshalJSON() ([]byte, error) { return json.Marshal(r.String()) }

func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseRiskLevel(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
