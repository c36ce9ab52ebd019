package camdash

import (
	"encoding/json"
	"fmt"
	"time"
)

// this file contains the backup import/export format: one human-readable JSON
// document holding every stored collection.

// backup mirrors the export document. Pointer slices distinguish an absent
// key from an empty collection: on import, absent keys leave the
// corresponding stored data untouched.
type backup struct {
	Accounts      *[]Account      `json:"accounts,omitempty"`
	CAMs          *[]CAM          `json:"cams,omitempty"`
	WeeklyReviews *[]WeeklyReview `json:"weeklyReviews,omitempty"`
	ExportedAt    time.Time       `json:"exportedAt"`
}

// Export serializes the whole dataset as a single pretty-printed JSON
// document, stamped with the export time.
func (r *Repository) Export() (string, error) {
	accounts := r.Accounts()
	cams := r.CAMs()
	reviews := r.WeeklyReviews()
	doc := backup{
		Accounts:      &accounts,
		CAMs:          &cams,
		WeeklyReviews: &reviews,
		ExportedAt:    r.now(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode backup: %w", err)
	}
	return string(data), nil
}

// Import restores a backup document. It parses first and only then applies
// whichever collections are present, so a malformed document mutates nothing.
// Unknown top-level keys are ignored. The result is a plain success flag;
// Import never fails its caller any harder than that.
func (r *Repository) Import(text string) bool {
	var doc backup
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return false
	}
	if doc.Accounts != nil {
		Write(r.store, KeyAccounts, *doc.Accounts)
	}
	if doc.CAMs != nil {
		Write(r.store, KeyCAMs, *doc.CAMs)
	}
	if doc.WeeklyReviews != nil {
		Write(r.store, KeyWeeklyReviews, *doc.WeeklyReviews)
	}
	return true
}

// BackupFilename is the conventional name for a backup written on a date.
func BackupFilename(on Date) string {
	return fmt.Sprintf("account-dashboard-backup-%s.json", on)
}
