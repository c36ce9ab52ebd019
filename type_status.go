package camdash

import (
	"encoding/json"
	"fmt"
)

// AccountStatus is the collection stage an account is in.
type AccountStatus int

const (
	StatusActive AccountStatus = iota
	StatusOnHold
	StatusPaymentPlan
	StatusLegal
	StatusCollections
	StatusWriteOff
	StatusClosed
)

func (s AccountStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusOnHold:
		return "on_hold"
	case StatusPaymentPlan:
		return "payment_plan"
	case StatusLegal:
		return "legal"
	case StatusCollections:
		return "collections"
	case StatusWriteOff:
		return "write_off"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Label returns the human form used in reports.
func (s AccountStatus) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusOnHold:
		return "On Hold"
	case StatusPaymentPlan:
		return "Payment Plan"
	case StatusLegal:
		return "Legal"
	case StatusCollections:
		return "Collections"
	case StatusWriteOff:
		return "Write Off"
	case StatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// ParseAccountStatus parses a string into an AccountStatus.
func ParseAccountStatus(s string) (AccountStatus, error) {
	switch s {
	case "active":
		return StatusActive, nil
	case "on_hold":
		return StatusOnHold, nil
	case "payment_plan":
		return StatusPaymentPlan, nil
	case "legal":
		return StatusLegal, nil
	case "collections":
		return StatusCollections, nil
	case "write_off":
		return StatusWriteOff, nil
	case "closed":
		return StatusClosed, nil
	default:
		return 0, fmt.Errorf("unknown account status: %q", s)
	}
}

func (s AccountStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *AccountStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParseAccountStatus(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
