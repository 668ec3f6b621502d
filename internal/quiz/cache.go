package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultCacheMaxAge is how long a cached question list stays fresh.
const DefaultCacheMaxAge = 7 * 24 * time.Hour

// Cache persists a fetched question list to disk with a saved-at timestamp.
// Entries older than MaxAge are treated as missing.
type Cache struct {
	Path   string
	MaxAge time.Duration

	// now is overridable for tests; defaults to time.Now.
	now func() time.Time
}

// NewCache creates a cache at the given path with the default max age.
func NewCache(path string) *Cache {
	return &Cache{Path: path, MaxAge: DefaultCacheMaxAge}
}

// DefaultCachePath returns ~/.quizrun/cache/questions.json, or "" when the
// home directory is unavailable.
func DefaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quizrun", "cache", "questions.json")
}

type cacheEntry struct {
	SavedAt   time.Time  `json:"saved_at"`
	Questions []Question `json:"questions"`
}

// Load returns the cached question list if present and fresh.
func (c *Cache) Load() ([]Question, bool) {
	if c == nil || c.Path == "" {
		return nil, false
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	maxAge := c.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultCacheMaxAge
	}
	if c.timeNow().Sub(entry.SavedAt) > maxAge {
		return nil, false
	}
	if len(entry.Questions) == 0 {
		return nil, false
	}
	return entry.Questions, true
}

// Save writes the question list with the current timestamp, creating
// parent directories as needed.
func (c *Cache) Save(questions []Question) error {
	if c == nil || c.Path == "" {
		return nil
	}

	dir := filepath.Dir(c.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("quiz: cannot create cache directory %s: %w", dir, err)
	}

	entry := cacheEntry{
		SavedAt:   c.timeNow(),
		Questions: questions,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("quiz: cannot encode cache: %w", err)
	}

	if err := os.WriteFile(c.Path, data, 0o644); err != nil {
		return fmt.Errorf("quiz: cannot write cache: %w", err)
	}
	return nil
}

func (c *Cache) timeNow() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}
