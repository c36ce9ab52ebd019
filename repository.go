package camdash

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

// Repository owns the persisted collections. Every read takes a fresh full
// snapshot from the store and every mutation writes a whole collection back,
// so a logical change is always one storage write. Lookups are linear scans;
// the dataset is a book of accounts, not a database.
type Repository struct {
	store *Store
	now   func() time.Time
}

// NewRepository returns a repository over the given store.
func NewRepository(store *Store) *Repository {
	return &Repository{store: store, now: time.Now}
}

// WithClock replaces the repository's clock, for deterministic tests.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// Now returns the repository's current time.
func (r *Repository) Now() time.Time { return r.now() }

// NewID generates an identifier unique enough for cross-account listings:
// millisecond timestamp plus random entropy.
func (r *Repository) NewID() string {
	return fmt.Sprintf("%d-%09x", r.now().UnixMilli(), rand.Uint64()%0x1000000000)
}

// Accounts returns the full persisted account collection, empty if none.
func (r *Repository) Accounts() []Account {
	return Read(r.store, KeyAccounts, []Account{})
}

// Account returns the account with the given id.
func (r *Repository) Account(id string) (Account, bool) {
	for _, a := range r.Accounts() {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// SaveAccount upserts an account. An existing account is replaced in place,
// keeping its list position, with updatedAt refreshed; a new one is appended
// with both timestamps stamped. The stamped account is returned.
func (r *Repository) SaveAccount(account Account) Account {
	now := r.now()
	accounts := r.Accounts()
	if i := slices.IndexFunc(accounts, func(a Account) bool { return a.ID == account.ID }); i >= 0 {
		account.UpdatedAt = now
		accounts[i] = account
	} else {
		account.CreatedAt = now
		account.UpdatedAt = now
		accounts = append(accounts, account)
	}
	Write(r.store, KeyAccounts, accounts)
	return account
}

// ReplaceAccounts atomically replaces the whole account collection. Batch
// mutations go through it so one logical change is one storage write.
func (r *Repository) ReplaceAccounts(accounts []Account) {
	Write(r.store, KeyAccounts, accounts)
}

// DeleteAccount removes the account with the given id, if present.
func (r *Repository) DeleteAccount(id string) {
	accounts := slices.DeleteFunc(r.Accounts(), func(a Account) bool { return a.ID == id })
	Write(r.store, KeyAccounts, accounts)
}

// CAMs returns the persisted manager roster.
func (r *Repository) CAMs() []CAM {
	return Read(r.store, KeyCAMs, []CAM{})
}

// SaveCAMs replaces the manager roster.
func (r *Repository) SaveCAMs(cams []CAM) {
	Write(r.store, KeyCAMs, cams)
}

// AddCAM appends a manager to the roster, generating an id when absent.
func (r *Repository) AddCAM(c CAM) CAM {
	if c.ID == "" {
		c.ID = r.NewID()
	}
	r.SaveCAMs(append(r.CAMs(), c))
	return c
}

// WeeklyReviews returns every persisted weekly review.
func (r *Repository) WeeklyReviews() []WeeklyReview {
	return Read(r.store, KeyWeeklyReviews, []WeeklyReview{})
}

// SaveWeeklyReview upserts a weekly review by id.
func (r *Repository) SaveWeeklyReview(review WeeklyReview) WeeklyReview {
	if review.ID == "" {
		review.ID = r.NewID()
	}
	reviews := r.WeeklyReviews()
	if i := slices.IndexFunc(reviews, func(w WeeklyReview) bool { return w.ID == review.ID }); i >= 0 {
		reviews[i] = review
	} else {
		reviews = append(reviews, review)
	}
	Write(r.store, KeyWeeklyReviews, reviews)
	return review
}

// WeeklyReviewsForAccount returns the weekly reviews written for an account.
func (r *Repository) WeeklyReviewsForAccount(accountID string) []WeeklyReview {
	var out []WeeklyReview
	for _, w := range r.WeeklyReviews() {
		if w.AccountID == accountID {
			out = append(out, w)
		}
	}
	return out
}

// Init seeds the store with the demonstration dataset on first run. It
// reports whether seeding happened; a store that already has accounts is
// left untouched.
func (r *Repository) Init() bool {
	if len(r.Accounts()) > 0 {
		return false
	}
	Write(r.store, KeyAccounts, seedAccounts())
	Write(r.store, KeyCAMs, seedCAMs())
	return true
}
