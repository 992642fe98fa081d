package question

import "fmt"

// ValidationError describes why a question could not be constructed.
type ValidationError struct {
	Field   string // Field that failed the check, e.g. "answers"
	Message string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question: %s: %s", e.Field, e.Message)
}

// validate checks the construction invariants of a question.
func validate(q *Question) *ValidationError {
	if len(q.Answers) == 0 {
		return &ValidationError{Field: "answers", Message: "at least one answer is required"}
	}
	if !q.Category.Valid() {
		return &ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %d", int(q.Category))}
	}
	if q.Difficulty < 1 {
		return &ValidationError{Field: "difficulty", Message: fmt.Sprintf("must be at least 1, got %d", q.Difficulty)}
	}
	for _, a := range q.Answers {
		if a.Correct {
			return nil
		}
	}
	return &ValidationError{Field: "answers", Message: "at least one answer must be correct"}
}
