package camdash

import "time"

// WeeklyReview is a weekly rollup written for an account. It is a write-only
// ledger: persisted and exported, never fed back into the derived views.
type WeeklyReview struct {
	ID        string     `json:"id"`
	AccountID string     `json:"accountId"`
	WeekOf    Date       `json:"weekOf"` // Monday of the reviewed week
	Decisions []Decision `json:"decisions"`
	Notes     string     `json:"notes"`
	NextSteps string     `json:"nextSteps"`
	CreatedAt time.Time  `json:"createdAt,omitzero"`
}
