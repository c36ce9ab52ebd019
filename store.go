package camdash

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Storage keys. Each key maps to one JSON document in the store directory.
const (
	KeyAccounts      = "accounts"
	KeyCAMs          = "cams"
	KeyWeeklyReviews = "weeklyReviews"
)

// Store is a namespaced key-value store backed by a directory of JSON
// documents. It never fails its callers: reads degrade to the supplied
// default and writes are dropped with a log line. A nil Store behaves like an
// always-empty one, so code paths without a storage backend keep working.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	if s == nil {
		return ""
	}
	return s.dir
}

func (s *Store) path(key string) string { return filepath.Join(s.dir, key+".json") }

// Read returns the value stored under key, or def when the store is absent,
// the key is missing, or the stored document cannot be decoded.
func Read[T any](s *Store, key string, def T) T {
	if s == nil || s.dir == "" {
		return def
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: could not read %q: %v", key, err)
		}
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("warning: corrupt document for %q, using default: %v", key, err)
		return def
	}
	return v
}

// Write stores the value under key as a pretty-printed JSON document.
// Failures are logged and dropped, never surfaced.
func Write[T any](s *Store, key string, v T) {
	if s == nil || s.dir == "" {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("warning: could not encode %q: %v", key, err)
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Printf("warning: could not create store directory %q: %v", s.dir, err)
		return
	}
	if err := os.WriteFile(s.path(key), append(data, '\n'), 0o644); err != nil {
		log.Printf("warning: could not write %q: %v", key, err)
	}
}

// Clear removes every stored collection.
func (s *Store) Clear() {
	if s == nil || s.dir == "" {
		return
	}
	for _, key := range []string{KeyAccounts, KeyCAMs, KeyWeeklyReviews} {
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: could not remove %q: %v", key, err)
		}
	}
}
