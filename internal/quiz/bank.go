package quiz

import (
	"context"
	"math/rand"
	"sync"
)

// Bank owns the question pool for one session. It tracks which questions
// have been answered, advances target difficulty with progress, and serves
// the next question. The pool resets itself on exhaustion, so a loaded bank
// never runs dry.
//
// Gameplay calls Next from the tick loop only; Load may be called from a
// goroutine and concurrent loads join the same in-flight operation.
type Bank struct {
	mu        sync.Mutex
	all       []Question
	available []Question
	answered  map[int]bool
	rng       *rand.Rand
	loaded    bool
	inflight  chan struct{}
	loadErr   error
}

// NewBank creates an empty bank with a seeded RNG.
func NewBank(seed int64) *Bank {
	return &Bank{
		answered: make(map[int]bool),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// SetQuestions installs a question list directly, replacing any existing
// pool. The available list is shuffled.
func (b *Bank) SetQuestions(questions []Question) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.install(questions)
}

func (b *Bank) install(questions []Question) {
	b.all = make([]Question, len(questions))
	copy(b.all, questions)
	b.available = make([]Question, len(questions))
	copy(b.available, questions)
	Shuffle(b.rng, b.available)
	b.answered = make(map[int]bool)
	b.loaded = len(questions) > 0
}

// Load fetches questions from the source and installs them. On any fetch
// failure the embedded fallback set is installed instead, so the session
// proceeds with degraded content rather than no content. Calls made while
// a load is in flight block until that load finishes and share its result.
func (b *Bank) Load(ctx context.Context, src Source) error {
	b.mu.Lock()
	if ch := b.inflight; ch != nil {
		b.mu.Unlock()
		<-ch
		b.mu.Lock()
		err := b.loadErr
		b.mu.Unlock()
		return err
	}
	ch := make(chan struct{})
	b.inflight = ch
	b.mu.Unlock()

	questions, err := src.Fetch(ctx)
	if err != nil || len(questions) == 0 {
		questions = FallbackQuestions()
	}

	b.mu.Lock()
	b.install(questions)
	b.loadErr = err
	b.inflight = nil
	b.mu.Unlock()
	close(ch)

	return err
}

// Questions returns a copy of the full question pool.
func (b *Bank) Questions() []Question {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Question, len(b.all))
	copy(out, b.all)
	return out
}

// Loaded reports whether the bank holds any questions.
func (b *Bank) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

// Size returns the total number of questions in the pool.
func (b *Bank) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.all)
}

// AnsweredCount returns how many distinct questions have been served.
func (b *Bank) AnsweredCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.answered)
}

// TargetDifficulty returns the difficulty tier the next question aims for.
func (b *Bank) TargetDifficulty() Difficulty {
	b.mu.Lock()
	defer b.mu.Unlock()
	return DifficultyFor(len(b.answered))
}

// Next serves the next question and marks it answered. Selection targets
// the current difficulty tier, falls back to any unanswered question, and
// resets the pool once everything has been served. Returns false only when
// the bank was never loaded.
func (b *Bank) Next() (Question, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.loaded {
		return Question{}, false
	}

	q, ok := b.pick()
	if !ok {
		// Pool exhausted: clear answered, reshuffle, retry once.
		b.answered = make(map[int]bool)
		b.available = make([]Question, len(b.all))
		copy(b.available, b.all)
		Shuffle(b.rng, b.available)
		q, ok = b.pick()
		if !ok {
			return Question{}, false
		}
	}

	b.answered[q.ID] = true
	return q, true
}

// pick selects uniformly among unanswered questions of the target tier,
// or among all unanswered questions when the tier is empty.
func (b *Bank) pick() (Question, bool) {
	target := DifficultyFor(len(b.answered))

	var tierMatch, anyMatch []int
	for i, q := range b.available {
		if b.answered[q.ID] {
			continue
		}
		anyMatch = append(anyMatch, i)
		if q.Difficulty == target {
			tierMatch = append(tierMatch, i)
		}
	}

	candidates := tierMatch
	if len(candidates) == 0 {
		candidates = anyMatch
	}
	if len(candidates) == 0 {
		return Question{}, false
	}

	idx := candidates[b.rng.Intn(len(candidates))]
	return b.available[idx], true
}
