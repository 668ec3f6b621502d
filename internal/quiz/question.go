// Package quiz owns the question data model: loading, caching, validation,
// and the session question pool with difficulty progression.
package quiz

import "encoding/json"

// Difficulty is a question difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}

// Multiplier returns the score multiplier for this tier.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2
	case DifficultyExpert:
		return 3
	default:
		return 1
	}
}

// OptionCount returns the number of answer options a question of this
// tier is expected to carry. Enforced by validation, tolerated at runtime.
func (d Difficulty) OptionCount() int {
	switch d {
	case DifficultyEasy:
		return 2
	case DifficultyMedium:
		return 3
	default:
		return 4
	}
}

// Progression thresholds: how many answered questions unlock each tier.
const (
	easyUpTo   = 10
	mediumUpTo = 25
	hardUpTo   = 50
)

// DifficultyFor returns the target difficulty after `answered` questions.
// Non-decreasing in answered.
func DifficultyFor(answered int) Difficulty {
	switch {
	case answered <= easyUpTo:
		return DifficultyEasy
	case answered <= mediumUpTo:
		return DifficultyMedium
	case answered <= hardUpTo:
		return DifficultyHard
	default:
		return DifficultyExpert
	}
}

// OptionKey identifies one answer option within a question.
type OptionKey string

// Option keys in display order. A is always present.
var OptionKeys = []OptionKey{"A", "B", "C", "D"}

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID          int                   `json:"id"`
	Difficulty  Difficulty            `json:"difficulty"`
	Text        string                `json:"question"`
	Options     map[OptionKey]string  `json:"options"`
	Correct     OptionKey             `json:"correct"`
	Explanation string                `json:"explanation"`
	Category    string                `json:"category,omitempty"`
	ImageURL    string                `json:"imageUrl,omitempty"`
}

// PresentOptions returns the keys that carry non-empty option text,
// in display order.
func (q Question) PresentOptions() []OptionKey {
	keys := make([]OptionKey, 0, len(OptionKeys))
	for _, k := range OptionKeys {
		if text, ok := q.Options[k]; ok && text != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// OptionText returns the text for the given key, or "" if absent.
func (q Question) OptionText(k OptionKey) string {
	return q.Options[k]
}

// Document is the wire format of a question source:
// a JSON object with a "questions" array.
type Document struct {
	Questions []Question `json:"questions"`
}

// ParseDocument decodes a question document.
func ParseDocument(data []byte) ([]Question, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Questions, nil
}
