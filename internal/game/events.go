package game

import "github.com/vovakirdan/quizrun/internal/quiz"

// Event is something noteworthy that happened during a Step. The session
// accumulates events and hands them to the caller via Events, so the UI
// layer can react (flash, toast, sound) without polling internal state.
type Event interface {
	sessionEvent()
}

// QuestionSpawnedEvent fires when a new answer wave enters the track.
type QuestionSpawnedEvent struct {
	Question quiz.Question
}

// QuestionAnsweredEvent fires when the player crosses an answer gate.
type QuestionAnsweredEvent struct {
	Question quiz.Question
	Option   quiz.OptionKey
	Correct  bool
	Points   int
}

// QuestionTimeoutEvent fires when the answer clock runs out before the
// wave reaches the player.
type QuestionTimeoutEvent struct {
	Question quiz.Question
}

// QuestionMissedEvent fires when every gate rolls off the track without
// being crossed. Missing a wave carries no penalty.
type QuestionMissedEvent struct {
	Question quiz.Question
}

// EmptyLanePenaltyEvent fires when the player dodges the whole wave
// through a gap lane.
type EmptyLanePenaltyEvent struct {
	Question quiz.Question
	Penalty  int
}

// LifeLostEvent fires when damage actually lands.
type LifeLostEvent struct {
	Remaining int
}

// LifeRecoveredEvent fires when a correct-answer streak earns a life back.
type LifeRecoveredEvent struct {
	Lives int
}

// AchievementUnlockedEvent fires once per achievement per session.
type AchievementUnlockedEvent struct {
	Achievement Achievement
}

// GameOverEvent fires on the tick the last life is lost.
type GameOverEvent struct {
	Score int
}

func (QuestionSpawnedEvent) sessionEvent()     {}
func (QuestionAnsweredEvent) sessionEvent()    {}
func (QuestionTimeoutEvent) sessionEvent()     {}
func (QuestionMissedEvent) sessionEvent()      {}
func (EmptyLanePenaltyEvent) sessionEvent()    {}
func (LifeLostEvent) sessionEvent()            {}
func (LifeRecoveredEvent) sessionEvent()       {}
func (AchievementUnlockedEvent) sessionEvent() {}
func (GameOverEvent) sessionEvent()            {}
