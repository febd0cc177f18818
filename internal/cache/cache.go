// Package cache keeps the last successfully fetched resume list on disk so
// a failed list fetch can fall back to stale data instead of an empty state.
// Staleness is always visible to the caller; the cache never masquerades as
// a live response.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-studio/internal/model"
)

// ErrMiss is returned when no cached list exists.
var ErrMiss = errors.New("cache miss")

// Entry is a cached resume list with its capture time.
type Entry struct {
	SavedAt time.Time        `json:"savedAt"`
	Resumes []model.Document `json:"resumes"`
}

// ListCache is a file-backed cache for the resume list, keyed per user so a
// logout/login cycle never shows another account's documents.
type ListCache struct {
	dir string
}

// NewListCache creates a cache rooted at dir. An empty dir defaults to
// ~/.cache/resume-studio.
func NewListCache(dir string) (*ListCache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".cache", "resume-studio")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &ListCache{dir: dir}, nil
}

// Put stores the list for a user, replacing any previous entry.
func (c *ListCache) Put(userID string, resumes []model.Document) error {
	entry := Entry{SavedAt: time.Now(), Resumes: resumes}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	if err := os.WriteFile(c.path(userID), data, 0o600); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Get returns the cached list for a user, or ErrMiss.
func (c *ListCache) Get(userID string) (Entry, error) {
	data, err := os.ReadFile(c.path(userID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Entry{}, ErrMiss
		}
		return Entry{}, fmt.Errorf("failed to read cache entry: %w", err)
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, ErrMiss
	}
	return entry, nil
}

// Clear removes the cached list for a user.
func (c *ListCache) Clear(userID string) error {
	if err := os.Remove(c.path(userID)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear cache entry: %w", err)
	}
	return nil
}

func (c *ListCache) path(userID string) string {
	if userID == "" {
		userID = "anonymous"
	}
	return filepath.Join(c.dir, "resumes-"+userID+".json")
}
