package quiz

import (
	"strings"
	"testing"
)

func validQuestion() Question {
	return Question{
		ID:          1,
		Difficulty:  DifficultyMedium,
		Text:        "Which planet is closest to the Sun?",
		Options:     map[OptionKey]string{"A": "Venus", "B": "Mercury", "C": "Mars"},
		Correct:     "B",
		Explanation: "Mercury is the innermost planet.",
		Category:    "science",
	}
}

func TestValidateAccepts(t *testing.T) {
	report := Validate([]Question{validQuestion()})
	if !report.Valid() {
		t.Errorf("valid question rejected: %v", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Question)
		message string
	}{
		{
			name:    "missing id",
			mutate:  func(q *Question) { q.ID = 0 },
			message: "id",
		},
		{
			name:    "bad difficulty",
			mutate:  func(q *Question) { q.Difficulty = "brutal" },
			message: "difficulty",
		},
		{
			name:    "missing text",
			mutate:  func(q *Question) { q.Text = "  " },
			message: "question text",
		},
		{
			name:    "no options",
			mutate:  func(q *Question) { q.Options = nil },
			message: "no options",
		},
		{
			name:    "missing option A",
			mutate:  func(q *Question) { delete(q.Options, "A"); q.Options["D"] = "Jupiter" },
			message: "option A",
		},
		{
			name:    "wrong option count",
			mutate:  func(q *Question) { delete(q.Options, "C") },
			message: "options",
		},
		{
			name: "duplicate option text",
			mutate: func(q *Question) {
				q.Options["C"] = "mercury " // case-insensitive, trimmed
			},
			message: "same text",
		},
		{
			name:    "correct key absent",
			mutate:  func(q *Question) { q.Correct = "D" },
			message: "correct option",
		},
		{
			name:    "missing correct",
			mutate:  func(q *Question) { q.Correct = "" },
			message: "correct option",
		},
		{
			name:    "unknown option key",
			mutate:  func(q *Question) { q.Options["E"] = "Pluto" },
			message: "unknown option key",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuestion()
			tc.mutate(&q)
			report := Validate([]Question{q})
			if report.Valid() {
				t.Fatal("expected validation errors, got none")
			}
			found := false
			for _, issue := range report.Errors {
				if strings.Contains(issue.Message, tc.message) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error mentioning %q in %v", tc.message, report.Errors)
			}
		})
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	q1 := validQuestion()
	q2 := validQuestion() // same id
	q2.Options = map[OptionKey]string{"A": "Red", "B": "Blue", "C": "Green"}
	q2.Text = "Different question?"
	q2.Correct = "A"

	report := Validate([]Question{q1, q2})
	if report.Valid() {
		t.Fatal("duplicate ids should be an error")
	}
	found := false
	for _, issue := range report.Errors {
		if strings.Contains(issue.Message, "duplicate id") {
			found = true
		}
	}
	if !found {
		t.Errorf("no duplicate-id error in %v", report.Errors)
	}
}

func TestValidateWarnings(t *testing.T) {
	q := validQuestion()
	q.Explanation = ""
	q.Category = ""

	report := Validate([]Question{q})
	if !report.Valid() {
		t.Fatalf("missing explanation/category must not be errors: %v", report.Errors)
	}
	if len(report.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", report.Warnings)
	}
}

func TestParseDocument(t *testing.T) {
	data := []byte(`{"questions":[{"id":3,"difficulty":"easy","question":"Q?","options":{"A":"yes","B":"no"},"correct":"A","explanation":"because"}]}`)

	qs, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	q := qs[0]
	if q.ID != 3 || q.Difficulty != DifficultyEasy || q.Correct != "A" {
		t.Errorf("parsed question mismatch: %+v", q)
	}
	if got := q.OptionText("B"); got != "no" {
		t.Errorf("OptionText(B) = %q, expected %q", got, "no")
	}

	if _, err := ParseDocument([]byte("not json")); err == nil {
		t.Error("ParseDocument should fail on malformed input")
	}
}

func TestPresentOptions(t *testing.T) {
	q := Question{
		Options: map[OptionKey]string{"A": "one", "B": "", "C": "three"},
	}
	keys := q.PresentOptions()
	if len(keys) != 2 || keys[0] != "A" || keys[1] != "C" {
		t.Errorf("PresentOptions = %v, expected [A C]", keys)
	}
}
