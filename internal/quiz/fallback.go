package quiz

import (
	_ "embed"
)

//go:embed fallback.json
var fallbackJSON []byte

// FallbackQuestions returns the built-in question set used when no source
// or cache is available. The session always has something to serve.
func FallbackQuestions() []Question {
	questions, err := ParseDocument(fallbackJSON)
	if err != nil || len(questions) == 0 {
		// Embedded data is checked in tests; keep a minimal last resort.
		return []Question{{
			ID:          1,
			Difficulty:  DifficultyEasy,
			Text:        "Is the Earth round?",
			Options:     map[OptionKey]string{"A": "Yes", "B": "No"},
			Correct:     "A",
			Explanation: "The Earth is an oblate spheroid.",
		}}
	}
	return questions
}
