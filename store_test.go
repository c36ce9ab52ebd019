package camdash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	in := []CAM{{ID: "cam-1", Name: "Sarah Johnson", Email: "sarah.johnson@example.com"}}
	Write(s, KeyCAMs, in)
	out := Read(s, KeyCAMs, []CAM{})
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("Read() = %v, want %v", out, in)
	}
}

func TestStore_MissingKeyReturnsDefault(t *testing.T) {
	s := NewStore(t.TempDir())
	got := Read(s, KeyAccounts, []Account{})
	if len(got) != 0 {
		t.Errorf("Read(missing) = %v, want the empty default", got)
	}
}

func TestStore_CorruptDocumentReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "accounts.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	got := Read(NewStore(dir), KeyAccounts, []Account{})
	if len(got) != 0 {
		t.Errorf("Read(corrupt) = %v, want the empty default", got)
	}
}

func TestStore_NilStore(t *testing.T) {
	var s *Store
	// both must be harmless no-ops
	Write(s, KeyAccounts, []Account{acct("a", "A", RiskLow, 0)})
	got := Read(s, KeyAccounts, []Account{})
	if len(got) != 0 {
		t.Errorf("Read(nil store) = %v, want the default", got)
	}
	if s.Dir() != "" {
		t.Errorf("Dir() = %q, want empty", s.Dir())
	}
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(t.TempDir())
	Write(s, KeyAccounts, []Account{acct("a", "A", RiskLow, 0)})
	s.Clear()
	if got := Read(s, KeyAccounts, []Account{}); len(got) != 0 {
		t.Errorf("Read() after Clear() = %v, want empty", got)
	}
}
