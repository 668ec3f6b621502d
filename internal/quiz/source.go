package quiz

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Source provides a question list from somewhere external.
type Source interface {
	Fetch(ctx context.Context) ([]Question, error)
}

// FileSource reads a question document from a local file.
type FileSource struct {
	Path string
}

// Fetch implements Source.
func (s FileSource) Fetch(_ context.Context) ([]Question, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("quiz: cannot read %s: %w", s.Path, err)
	}
	questions, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("quiz: cannot parse %s: %w", s.Path, err)
	}
	return questions, nil
}

// HTTPSource fetches a question document over HTTP.
type HTTPSource struct {
	URL    string
	Client *http.Client
	Logger *log.Logger
}

// Fetch implements Source.
func (s HTTPSource) Fetch(ctx context.Context) ([]Question, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("quiz: bad question URL: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quiz: fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quiz: fetch returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("quiz: cannot read response: %w", err)
	}

	questions, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("quiz: cannot parse response: %w", err)
	}

	if s.Logger != nil {
		s.Logger.Debug("fetched questions", "url", s.URL, "count", len(questions))
	}
	return questions, nil
}

// BuildSource picks the question source for a session. An explicit file
// wins over a URL; a URL gets the default cache wrapped around it; with
// neither configured the embedded fallback set is served.
func BuildSource(file, url string, logger *log.Logger) Source {
	if file != "" {
		return FileSource{Path: file}
	}
	if url != "" {
		return CachedSource{
			Inner:  HTTPSource{URL: url, Logger: logger},
			Cache:  NewCache(DefaultCachePath()),
			Logger: logger,
		}
	}
	return fallbackSource{}
}

// StaticSource serves an already-loaded question list. The SSH server uses
// it to share one fetched set across all sessions.
type StaticSource struct {
	Questions []Question
}

// Fetch implements Source.
func (s StaticSource) Fetch(context.Context) ([]Question, error) {
	return s.Questions, nil
}

// fallbackSource serves the embedded question set.
type fallbackSource struct{}

func (fallbackSource) Fetch(context.Context) ([]Question, error) {
	return FallbackQuestions(), nil
}

// CachedSource wraps another source with a local file cache. A fresh cache
// short-circuits the fetch; a successful fetch refreshes the cache.
type CachedSource struct {
	Inner  Source
	Cache  *Cache
	Logger *log.Logger
}

// Fetch implements Source.
func (s CachedSource) Fetch(ctx context.Context) ([]Question, error) {
	if s.Cache != nil {
		if questions, ok := s.Cache.Load(); ok {
			if s.Logger != nil {
				s.Logger.Debug("using cached questions", "count", len(questions))
			}
			return questions, nil
		}
	}

	questions, err := s.Inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if saveErr := s.Cache.Save(questions); saveErr != nil && s.Logger != nil {
			s.Logger.Warn("cannot cache questions", "error", saveErr)
		}
	}
	return questions, nil
}
