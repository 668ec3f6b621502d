package quiz

import (
	"fmt"
	"strings"
)

// Issue is a single validation finding for one question.
type Issue struct {
	Index   int    // Position in the input list
	ID      int    // Question id (0 when missing)
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("question %d (id %d): %s", i.Index, i.ID, i.Message)
}

// Report collects validation findings across a question bank.
// Errors make the bank invalid; warnings are advisory.
type Report struct {
	Errors   []Issue
	Warnings []Issue
}

// Valid reports whether the bank passed without errors.
func (r Report) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Report) errorf(index, id int, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Index: index, ID: id, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(index, id int, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Index: index, ID: id, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a question bank against the rules the runtime does not
// enforce: required fields, difficulty tiers, per-tier option counts,
// duplicate option text within a question, and duplicate ids across the
// bank. Intended for the offline `validate` command.
func Validate(questions []Question) Report {
	var report Report

	seenIDs := make(map[int]int, len(questions))
	for i, q := range questions {
		if q.ID <= 0 {
			report.errorf(i, q.ID, "missing or non-positive id")
		} else if prev, dup := seenIDs[q.ID]; dup {
			report.errorf(i, q.ID, "duplicate id (first seen at question %d)", prev)
		} else {
			seenIDs[q.ID] = i
		}

		if !q.Difficulty.Valid() {
			report.errorf(i, q.ID, "unknown difficulty %q", q.Difficulty)
		}

		if strings.TrimSpace(q.Text) == "" {
			report.errorf(i, q.ID, "missing question text")
		}

		validateOptions(&report, i, q)

		if strings.TrimSpace(q.Explanation) == "" {
			report.warnf(i, q.ID, "missing explanation")
		}
		if strings.TrimSpace(q.Category) == "" {
			report.warnf(i, q.ID, "missing category")
		}
	}

	return report
}

func validateOptions(report *Report, index int, q Question) {
	if len(q.Options) == 0 {
		report.errorf(index, q.ID, "no options")
		return
	}

	if _, ok := q.Options["A"]; !ok {
		report.errorf(index, q.ID, "option A must be present")
	}

	present := 0
	seenText := make(map[string]OptionKey, len(q.Options))
	for _, key := range OptionKeys {
		text, ok := q.Options[key]
		if !ok {
			continue
		}
		present++
		if strings.TrimSpace(text) == "" {
			report.errorf(index, q.ID, "option %s has empty text", key)
			continue
		}
		lower := strings.ToLower(strings.TrimSpace(text))
		if other, dup := seenText[lower]; dup {
			report.errorf(index, q.ID, "options %s and %s have the same text", other, key)
		} else {
			seenText[lower] = key
		}
	}

	for key := range q.Options {
		if key != "A" && key != "B" && key != "C" && key != "D" {
			report.errorf(index, q.ID, "unknown option key %q", key)
		}
	}

	if q.Difficulty.Valid() && present != q.Difficulty.OptionCount() {
		report.errorf(index, q.ID, "%s questions need %d options, found %d",
			q.Difficulty, q.Difficulty.OptionCount(), present)
	}

	if q.Correct == "" {
		report.errorf(index, q.ID, "missing correct option")
	} else if text, ok := q.Options[q.Correct]; !ok || strings.TrimSpace(text) == "" {
		report.errorf(index, q.ID, "correct option %q has no text", q.Correct)
	}
}
