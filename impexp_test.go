package camdash

import (
	"strings"
	"testing"
)

func TestExportImport_RoundTrip(t *testing.T) {
	r := testRepository(t)
	r.Init()
	before := r.Accounts()

	text, err := r.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	for _, key := range []string{`"accounts"`, `"cams"`, `"weeklyReviews"`, `"exportedAt"`} {
		if !strings.Contains(text, key) {
			t.Errorf("export document is missing %s", key)
		}
	}

	fresh := testRepository(t)
	if !fresh.Import(text) {
		t.Fatal("Import() = false, want true")
	}
	after := fresh.Accounts()
	if len(after) != len(before) {
		t.Fatalf("imported %d accounts, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i].ID != before[i].ID || after[i].Name != before[i].Name {
			t.Errorf("account[%d] = %q/%q, want %q/%q", i, after[i].ID, after[i].Name, before[i].ID, before[i].Name)
		}
	}
	if len(fresh.CAMs()) != len(r.CAMs()) {
		t.Errorf("imported %d CAMs, want %d", len(fresh.CAMs()), len(r.CAMs()))
	}
}

func TestImport_Malformed(t *testing.T) {
	r := testRepository(t)
	r.Init()
	before := len(r.Accounts())

	if r.Import("{not json") {
		t.Error("Import(malformed) = true, want false")
	}
	if len(r.Accounts()) != before {
		t.Error("a failed import altered the stored accounts")
	}
}

func TestImport_PartialDocument(t *testing.T) {
	r := testRepository(t)
	r.Init()
	accountsBefore := len(r.Accounts())

	// only the CAM roster is present: accounts must survive untouched
	if !r.Import(`{"cams": [{"id": "cam-9", "name": "Lisa Park", "email": "lisa.park@example.com"}]}`) {
		t.Fatal("Import(partial) = false, want true")
	}
	if len(r.Accounts()) != accountsBefore {
		t.Error("a partial import clobbered the accounts collection")
	}
	cams := r.CAMs()
	if len(cams) != 1 || cams[0].ID != "cam-9" {
		t.Errorf("CAMs() = %v, want just the imported roster", cams)
	}
}

func TestBackupFilename(t *testing.T) {
	got := BackupFilename(MustParseDate("2024-12-11"))
	if got != "account-dashboard-backup-2024-12-11.json" {
		t.Errorf("BackupFilename() = %q", got)
	}
}
