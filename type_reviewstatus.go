package camdash

import (
	"encoding/json"
	"fmt"
)

// ReviewStatus is the team-lead judgment on a decision. The zero value is
// pending, so an absent reviewStatus field means pending.
type ReviewStatus int

const (
	ReviewPending ReviewStatus = iota
	ReviewPass
	ReviewFail
)

func (s ReviewStatus) String() string {
	switch s {
	case ReviewPending:
		return "pending"
	case ReviewPass:
		return "pass"
	case ReviewFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ParseReviewStatus parses a string into a ReviewStatus.
func ParseReviewStatus(s string) (ReviewStatus, error) {
	switch s {
	case "", "pending":
		return ReviewPending, nil
	case "pass":
		return ReviewPass, nil
	case "fail":
		return ReviewFail, nil
	default:
		return 0, fmt.Errorf("unknown review status: %q", s)
	}
}

func (s ReviewStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *ReviewStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParseReviewStatus(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
