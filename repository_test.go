package camdash

import (
	"testing"
	"time"
)

func testRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(NewStore(t.TempDir())).WithClock(func() time.Time { return wednesday })
}

func TestRepository_SaveAccount_Insert(t *testing.T) {
	r := testRepository(t)
	saved := r.SaveAccount(acct("a", "Alpha", RiskHigh, 1000))
	if !saved.CreatedAt.Equal(wednesday) || !saved.UpdatedAt.Equal(wednesday) {
		t.Errorf("timestamps = %v/%v, want both %v", saved.CreatedAt, saved.UpdatedAt, wednesday)
	}
	got, ok := r.Account("a")
	if !ok || got.Name != "Alpha" {
		t.Errorf("Account(a) = (%v, %v), want the saved account", got, ok)
	}
}

func TestRepository_SaveAccount_UpdateKeepsPosition(t *testing.T) {
	r := testRepository(t)
	r.SaveAccount(acct("a", "Alpha", RiskHigh, 1000))
	r.SaveAccount(acct("b", "Beta", RiskLow, 2000))

	later := wednesday.Add(time.Hour)
	r.WithClock(func() time.Time { return later })
	updated := acct("a", "Alpha Renamed", RiskCritical, 1500)
	updated.CreatedAt = wednesday
	saved := r.SaveAccount(updated)

	if !saved.UpdatedAt.Equal(later) {
		t.Errorf("UpdatedAt = %v, want refreshed to %v", saved.UpdatedAt, later)
	}
	accounts := r.Accounts()
	if len(accounts) != 2 || accounts[0].ID != "a" || accounts[0].Name != "Alpha Renamed" {
		t.Errorf("Accounts() = %v, want the update in place at index 0", accounts)
	}
}

func TestRepository_DeleteAccount(t *testing.T) {
	r := testRepository(t)
	r.SaveAccount(acct("a", "Alpha", RiskHigh, 0))
	r.SaveAccount(acct("b", "Beta", RiskLow, 0))
	r.DeleteAccount("a")
	accounts := r.Accounts()
	if len(accounts) != 1 || accounts[0].ID != "b" {
		t.Errorf("Accounts() after delete = %v, want just b", accounts)
	}
	// deleting an unknown id is a no-op
	r.DeleteAccount("nope")
	if len(r.Accounts()) != 1 {
		t.Error("deleting an unknown id changed the collection")
	}
}

func TestRepository_Init(t *testing.T) {
	r := testRepository(t)
	if !r.Init() {
		t.Fatal("Init() on an empty store = false, want true")
	}
	if len(r.Accounts()) == 0 || len(r.CAMs()) == 0 {
		t.Fatal("Init() did not seed accounts and CAMs")
	}
	before := len(r.Accounts())
	if r.Init() {
		t.Error("Init() on a seeded store = true, want false")
	}
	if len(r.Accounts()) != before {
		t.Error("second Init() altered the seeded data")
	}
}

func TestRepository_NewID(t *testing.T) {
	r := testRepository(t)
	a, b := r.NewID(), r.NewID()
	if a == "" || a == b {
		t.Errorf("NewID() gave %q then %q, want distinct non-empty ids", a, b)
	}
}

func TestRepository_WeeklyReviewUpsert(t *testing.T) {
	r := testRepository(t)
	saved := r.SaveWeeklyReview(WeeklyReview{AccountID: "a", Notes: "first"})
	if saved.ID == "" {
		t.Fatal("SaveWeeklyReview() did not assign an id")
	}
	saved.Notes = "second"
	r.SaveWeeklyReview(saved)
	reviews := r.WeeklyReviewsForAccount("a")
	if len(reviews) != 1 || reviews[0].Notes != "second" {
		t.Errorf("WeeklyReviewsForAccount() = %v, want one review with the rewrite", reviews)
	}
}

func TestRepository_AddCAM(t *testing.T) {
	r := testRepository(t)
	c := r.AddCAM(CAM{Name: "Lisa Park", Email: "lisa.park@example.com"})
	if c.ID == "" {
		t.Error("AddCAM() did not assign an id")
	}
	if cams := r.CAMs(); len(cams) != 1 || cams[0].Name != "Lisa Park" {
		t.Errorf("CAMs() = %v, want the added manager", cams)
	}
}
