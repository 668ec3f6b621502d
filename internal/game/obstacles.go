package game

import (
	"math/rand"

	"github.com/vovakirdan/quizrun/internal/config"
	"github.com/vovakirdan/quizrun/internal/core"
	"github.com/vovakirdan/quizrun/internal/quiz"
)

// Obstacle is one answer gate on the track. Depth decreases each tick
// until the gate reaches the player.
type Obstacle struct {
	Lane    int
	Depth   float64
	Option  quiz.OptionKey
	Text    string
	Correct bool
}

// Field owns the obstacle wave for the current question. At most one
// question is in flight; while it is active the spawn timer is idle.
type Field struct {
	cfg   config.GameplayConfig
	lanes int
	rng   *rand.Rand

	obstacles  []Obstacle
	emptyLanes []int
	question   *quiz.Question

	spawnTimer  int // ticks until the next wave while idle
	countdown   int // ticks left to answer the active question
	spawnTicks  int
	answerTicks int
	maxDepth    float64
}

// NewField creates an obstacle field for a track with the given lane count.
func NewField(cfg config.GameplayConfig, lanes int, maxDepth float64, tickRate int, rng *rand.Rand) *Field {
	f := &Field{
		cfg:      cfg,
		lanes:    lanes,
		rng:      rng,
		maxDepth: maxDepth,
	}
	f.spawnTicks = core.TicksFor(cfg.SpawnIntervalMs, tickRate)
	f.answerTicks = core.TicksFor(cfg.AnswerTimeMs, tickRate)
	f.Reset()
	return f
}

// Reset clears the field and restarts the spawn timer from a full interval.
func (f *Field) Reset() {
	f.obstacles = nil
	f.emptyLanes = nil
	f.question = nil
	f.countdown = 0
	f.spawnTimer = f.spawnTicks
}

// Active reports whether a question wave is currently on the track.
func (f *Field) Active() bool { return f.question != nil }

// TickSpawn advances the idle spawn timer and reports whether a new wave
// is due. It is a no-op while a question is active.
func (f *Field) TickSpawn() bool {
	if f.Active() {
		return false
	}
	f.spawnTimer--
	if f.spawnTimer <= 0 {
		f.spawnTimer = f.spawnTicks
		return true
	}
	return false
}

// Spawn places a wave of answer gates for the question at the spawn line.
// Early in the session only a subset of answers is shown to keep choices
// simple; the correct answer is always among them. Lane assignment is
// shuffled, and lanes left without a gate are recorded as empty.
func (f *Field) Spawn(q quiz.Question, questionsAnswered int) {
	options := q.PresentOptions()

	shown := f.lanes
	if questionsAnswered < f.cfg.EarlyQuestions {
		shown = f.cfg.EarlyMaxAnswers
	}
	if shown > len(options) {
		shown = len(options)
	}
	if shown > f.lanes {
		shown = f.lanes
	}
	if shown < 1 {
		shown = 1
	}

	var correct quiz.OptionKey
	var incorrect []quiz.OptionKey
	for _, key := range options {
		if key == q.Correct {
			correct = key
		} else {
			incorrect = append(incorrect, key)
		}
	}

	picked := []quiz.OptionKey{correct}
	picked = append(picked, quiz.Sample(f.rng, incorrect, shown-1)...)
	quiz.Shuffle(f.rng, picked)

	lanes := make([]int, f.lanes)
	for i := range lanes {
		lanes[i] = i
	}
	quiz.Shuffle(f.rng, lanes)

	f.obstacles = f.obstacles[:0]
	for i, key := range picked {
		f.obstacles = append(f.obstacles, Obstacle{
			Lane:    lanes[i],
			Depth:   f.maxDepth,
			Option:  key,
			Text:    q.OptionText(key),
			Correct: key == q.Correct,
		})
	}

	f.emptyLanes = f.emptyLanes[:0]
	for _, lane := range lanes[len(picked):] {
		f.emptyLanes = append(f.emptyLanes, lane)
	}

	question := q
	f.question = &question
	f.countdown = f.answerTicks
}

// Advance moves every gate toward the player and counts the answer clock
// down by one tick. Gates that reach the player line are discarded. It
// reports whether the whole wave just slipped past unanswered and whether
// the answer clock ran out.
func (f *Field) Advance(speed, deltaMs float64) (missed, timedOut bool) {
	if !f.Active() {
		return false, false
	}
	step := speed * deltaMs / 100
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.Depth -= step
		if o.Depth > 0 {
			kept = append(kept, o)
		}
	}
	missed = len(kept) == 0 && len(f.obstacles) > 0
	f.obstacles = kept
	f.countdown--
	return missed, f.countdown <= 0
}

// Resolve clears the active wave after the question has been decided.
func (f *Field) Resolve() {
	f.obstacles = f.obstacles[:0]
	f.emptyLanes = f.emptyLanes[:0]
	f.question = nil
	f.countdown = 0
	f.spawnTimer = f.spawnTicks
}

// AtPlayer returns the gate inside the trigger band closest to the lane
// position, or nil when no gate is being crossed. A gate triggers while
// its depth sits in the band just in front of the player and its lane is
// within half a lane of the continuous player position.
func (f *Field) AtPlayer(playerLane float64) *Obstacle {
	for i := range f.obstacles {
		o := &f.obstacles[i]
		if o.Depth > f.cfg.TriggerDepth && o.Depth < f.cfg.TriggerDepth+f.cfg.TriggerBand {
			if diff := playerLane - float64(o.Lane); diff > -0.5 && diff < 0.5 {
				return o
			}
		}
	}
	return nil
}

// InEmptyLane reports whether the player position sits over a lane that
// has no gate while the wave crosses the trigger band.
func (f *Field) InEmptyLane(playerLane float64) bool {
	if len(f.obstacles) == 0 {
		return false
	}
	depth := f.obstacles[0].Depth
	if depth <= f.cfg.TriggerDepth || depth >= f.cfg.TriggerDepth+f.cfg.TriggerBand {
		return false
	}
	for _, lane := range f.emptyLanes {
		if diff := playerLane - float64(lane); diff > -0.5 && diff < 0.5 {
			return true
		}
	}
	return false
}

// Obstacles returns the gates currently on the track.
func (f *Field) Obstacles() []Obstacle { return f.obstacles }

// EmptyLanes returns the lanes left without a gate in the active wave.
func (f *Field) EmptyLanes() []int { return f.emptyLanes }

// Question returns the active question, or nil when the track is idle.
func (f *Field) Question() *quiz.Question { return f.question }

// CountdownTicks returns the ticks left on the answer clock.
func (f *Field) CountdownTicks() int { return f.countdown }

// AnswerTicks returns the full answer window in ticks.
func (f *Field) AnswerTicks() int { return f.answerTicks }

// SpawnTimer returns the ticks until the next wave while idle.
func (f *Field) SpawnTimer() int { return f.spawnTimer }
