package camdash

import "fmt"

// HealthFactors is the breakdown behind a health score. The overall score is
// supplied alongside, not derived from the factors.
type HealthFactors struct {
	PaymentBehavior      int `json:"paymentBehavior"`
	CommunicationQuality int `json:"communicationQuality"`
	RiskLevel            int `json:"riskLevel"`
	TrendDirection       int `json:"trendDirection"`
}

// HealthScore is a point-in-time wellness snapshot of an account.
type HealthScore struct {
	Score   int           `json:"score"` // 0-100
	Date    Date          `json:"date"`
	Factors HealthFactors `json:"factors"`
}

// Validate checks the 0-100 bounds on the score and each factor.
func (h HealthScore) Validate() error {
	check := func(name string, v int) error {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s must be between 0 and 100, got %d", name, v)
		}
		return nil
	}
	if err := check("score", h.Score); err != nil {
		return err
	}
	if err := check("paymentBehavior", h.Factors.PaymentBehavior); err != nil {
		return err
	}
	if err := check("communicationQuality", h.Factors.CommunicationQuality); err != nil {
		return err
	}
	if err := check("riskLevel", h.Factors.RiskLevel); err != nil {
		return err
	}
	return check("trendDirection", h.Factors.TrendDirection)
}

// Trend qualifies the direction of an account's health between two snapshots.
type Trend int

const (
	TrendNone Trend = iota // not enough history
	TrendUp
	TrendDown
	TrendStable
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	case TrendStable:
		return "stable"
	default:
		return ""
	}
}

// trendSignificance is the score delta magnitude above which a move counts as
// a real trend rather than noise.
const trendSignificance = 5

func trendOf(diff int) Trend {
	switch {
	case diff > trendSignificance:
		return TrendUp
	case diff < -trendSignificance:
		return TrendDown
	default:
		return TrendStable
	}
}

// ScoreAsOf returns the health score in effect on a given date: among scores
// dated on or before it, the one with the latest date. Ties are broken by
// stored order, deterministically.
func ScoreAsOf(scores []HealthScore, on Date) (HealthScore, bool) {
	var best HealthScore
	found := false
	for _, s := range scores {
		if s.Date.After(on) {
			continue
		}
		if !found || best.Date.Before(s.Date) {
			best, found = s, true
		}
	}
	return best, found
}

// TrendAsOf computes the health trend at a given date: the score in effect
// compared with the most recent strictly earlier one. With either side
// missing there is no trend.
func TrendAsOf(scores []HealthScore, on Date) Trend {
	current, ok := ScoreAsOf(scores, on)
	if !ok {
		return TrendNone
	}
	var previous HealthScore
	found := false
	for _, s := range scores {
		if !s.Date.Before(on) {
			continue
		}
		if !found || previous.Date.Before(s.Date) {
			previous, found = s, true
		}
	}
	if !found {
		return TrendNone
	}
	return trendOf(current.Score - previous.Score)
}
