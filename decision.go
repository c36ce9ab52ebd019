package camdash

import (
	"errors"
	"time"
)

// Decision is a recorded managerial action or judgment about an account.
// It is immutable by convention except for the review and outcome fields,
// which are replaced through the With* constructors.
type Decision struct {
	ID          string           `json:"id"`
	Date        Date             `json:"date"`
	Category    DecisionCategory `json:"category"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Rationale   string           `json:"rationale"`

	ExpectedOutcome string `json:"expectedOutcome,omitempty"`
	ActualOutcome   string `json:"actualOutcome,omitempty"`
	OutcomeDate     Date   `json:"outcomeDate,omitzero"`
	CreatedBy       string `json:"createdBy,omitempty"`

	// Team lead review. An absent reviewStatus means pending.
	ReviewStatus ReviewStatus `json:"reviewStatus,omitzero"`
	ReviewedBy   string       `json:"reviewedBy,omitempty"`
	ReviewedAt   time.Time    `json:"reviewedAt,omitzero"`
	ReviewNotes  string       `json:"reviewNotes,omitempty"`
}

// Pending reports whether the decision still awaits a team-lead review.
func (d Decision) Pending() bool { return d.ReviewStatus == ReviewPending }

// WithReview returns a copy of the decision with the review fields replaced.
// Re-reviewing is allowed: a prior pass/fail is simply overwritten.
func (d Decision) WithReview(status ReviewStatus, reviewer, notes string, at time.Time) Decision {
	d.ReviewStatus = status
	d.ReviewedBy = reviewer
	d.ReviewedAt = at
	d.ReviewNotes = notes
	return d
}

// WithOutcome returns a copy of the decision with the actual outcome recorded.
func (d Decision) WithOutcome(actual string, on Date) Decision {
	d.ActualOutcome = actual
	d.OutcomeDate = on
	return d
}

// Validate checks the fields required at creation time.
func (d Decision) Validate() error {
	var errs []error
	if d.Date.IsZero() {
		errs = append(errs, errors.New("decision date is required"))
	}
	if d.Title == "" {
		errs = append(errs, errors.New("decision title is required"))
	}
	if d.Description == "" {
		errs = append(errs, errors.New("decision description is required"))
	}
	if d.Rationale == "" {
		errs = append(errs, errors.New("decision rationale is required"))
	}
	return errors.Join(errs...)
}
