// Package api submits session results to an optional remote leaderboard.
// The remote side is best effort: any failure falls back to a rank computed
// from the local results store, and gameplay is never blocked on it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const defaultTimeout = 5 * time.Second

// Submission is the wire format of one finished session.
type Submission struct {
	Score             int     `json:"score"`
	QuestionsAnswered int     `json:"questions_answered"`
	Accuracy          float64 `json:"accuracy"`
	BestStreak        int     `json:"best_streak"`
	DifficultyReached string  `json:"difficulty_reached"`
}

// SubmitResult is the leaderboard outcome for a submission.
type SubmitResult struct {
	Rank  int  `json:"rank"`
	Local bool `json:"-"` // rank computed locally, not by the server
}

// Ranker provides the local leaderboard position for a score.
// Satisfied by *storage.Store.
type Ranker interface {
	Rank(score int) (int, error)
}

// Client submits scores to a leaderboard endpoint with a local fallback.
// A zero BaseURL disables the remote path entirely.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *log.Logger
	Ranker     Ranker
}

// Submit reports a session result and returns its leaderboard rank.
// Remote failures degrade to the local rank; an error is returned only
// when neither side can produce one.
func (c *Client) Submit(ctx context.Context, sub Submission) (SubmitResult, error) {
	if c.BaseURL != "" {
		result, err := c.submitRemote(ctx, sub)
		if err == nil {
			return result, nil
		}
		if c.Logger != nil {
			c.Logger.Warn("score submission failed, using local rank", "err", err)
		}
	}
	return c.localRank(sub.Score)
}

func (c *Client) submitRemote(ctx context.Context, sub Submission) (SubmitResult, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("api: cannot encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/scores", bytes.NewReader(body))
	if err != nil {
		return SubmitResult{}, fmt.Errorf("api: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("api: submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return SubmitResult{}, fmt.Errorf("api: server returned %s", resp.Status)
	}

	var result SubmitResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&result); err != nil {
		return SubmitResult{}, fmt.Errorf("api: cannot decode response: %w", err)
	}
	if c.Logger != nil {
		c.Logger.Debug("score submitted", "score", sub.Score, "rank", result.Rank)
	}
	return result, nil
}

func (c *Client) localRank(score int) (SubmitResult, error) {
	if c.Ranker == nil {
		return SubmitResult{Rank: 1, Local: true}, nil
	}
	rank, err := c.Ranker.Rank(score)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("api: cannot compute local rank: %w", err)
	}
	return SubmitResult{Rank: rank, Local: true}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: defaultTimeout}
}
