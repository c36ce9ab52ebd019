package camdash

import (
	"errors"
	"fmt"
)

// Lookup failures on mutation paths. The persisted state is never altered
// when one of these is returned.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDecisionNotFound = errors.New("decision not found")
)

// ReviewDecision applies a team-lead judgment to one decision: the review
// fields are overwritten (a prior pass/fail included), the reviewer identity
// and time are stamped, and the whole account collection is committed as one
// write. The reviewer is whoever the caller says it is; there is no session.
func (r *Repository) ReviewDecision(accountID, decisionID string, status ReviewStatus, reviewer, notes string) error {
	accounts := r.Accounts()
	i, err := findAccount(accounts, accountID)
	if err != nil {
		return err
	}
	now := r.now()
	for j, d := range accounts[i].Decisions {
		if d.ID != decisionID {
			continue
		}
		accounts[i].Decisions[j] = d.WithReview(status, reviewer, notes, now)
		accounts[i].UpdatedAt = now
		r.ReplaceAccounts(accounts)
		return nil
	}
	return fmt.Errorf("%w: %q in account %q", ErrDecisionNotFound, decisionID, accountID)
}

// AddDecision records a new decision on an account. The decision is validated,
// given an id when absent, and prepended so the stored list stays
// newest-first by convention.
func (r *Repository) AddDecision(accountID string, d Decision) (Decision, error) {
	if err := d.Validate(); err != nil {
		return Decision{}, err
	}
	accounts := r.Accounts()
	i, err := findAccount(accounts, accountID)
	if err != nil {
		return Decision{}, err
	}
	if d.ID == "" {
		d.ID = r.NewID()
	}
	accounts[i].Decisions = append([]Decision{d}, accounts[i].Decisions...)
	accounts[i].UpdatedAt = r.now()
	r.ReplaceAccounts(accounts)
	return d, nil
}

// RecordOutcome fills in the actual outcome of an existing decision.
func (r *Repository) RecordOutcome(accountID, decisionID, actual string, on Date) error {
	accounts := r.Accounts()
	i, err := findAccount(accounts, accountID)
	if err != nil {
		return err
	}
	for j, d := range accounts[i].Decisions {
		if d.ID != decisionID {
			continue
		}
		accounts[i].Decisions[j] = d.WithOutcome(actual, on)
		accounts[i].UpdatedAt = r.now()
		r.ReplaceAccounts(accounts)
		return nil
	}
	return fmt.Errorf("%w: %q in account %q", ErrDecisionNotFound, decisionID, accountID)
}

// AddHealthScore records a health score snapshot on an account, prepended,
// newest-first by convention.
func (r *Repository) AddHealthScore(accountID string, h HealthScore) error {
	if err := h.Validate(); err != nil {
		return err
	}
	accounts := r.Accounts()
	i, err := findAccount(accounts, accountID)
	if err != nil {
		return err
	}
	accounts[i].HealthScores = append([]HealthScore{h}, accounts[i].HealthScores...)
	accounts[i].UpdatedAt = r.now()
	r.ReplaceAccounts(accounts)
	return nil
}

// RecordWeeklyReview writes the weekly rollup for an account: the notes and
// next steps for the week containing weekOf, with that week's decisions
// embedded as they stand.
func (r *Repository) RecordWeeklyReview(accountID, notes, nextSteps string, weekOf Date) (WeeklyReview, error) {
	account, ok := r.Account(accountID)
	if !ok {
		return WeeklyReview{}, fmt.Errorf("%w: %q", ErrAccountNotFound, accountID)
	}
	week := Weekly.Range(weekOf)
	var decisions []Decision
	for _, d := range account.Decisions {
		if week.Contains(d.Date) {
			decisions = append(decisions, d)
		}
	}
	review := WeeklyReview{
		AccountID: accountID,
		WeekOf:    week.From,
		Decisions: decisions,
		Notes:     notes,
		NextSteps: nextSteps,
		CreatedAt: r.now(),
	}
	return r.SaveWeeklyReview(review), nil
}

func findAccount(accounts []Account, id string) (int, error) {
	for i, a := range accounts {
		if a.ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrAccountNotFound, id)
}
