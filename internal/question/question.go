package question

import "fmt"

// PointsPerDifficulty is the score awarded per difficulty level for a correct answer.
const PointsPerDifficulty = 10

// Answer is one selectable option of a question.
type Answer struct {
	// Text is the option shown to the player.
	Text string

	// Correct marks the option as an acceptable answer.
	Correct bool

	// Explanation is shown after the option is chosen. May be empty.
	Explanation string
}

// Question is a multiple-choice soft-skills question.
type Question struct {
	// Text is the question prompt.
	Text string

	// Answers holds the options in display order. Never empty and always
	// contains at least one correct answer.
	Answers []Answer

	// Category is the soft-skill topic of the question.
	Category Category

	// Difficulty weights the question's point value (>= 1).
	Difficulty int
}

// New builds a question and checks that it has at least one correct answer.
// Returns a *ValidationError if the invariants do not hold.
func New(text string, answers []Answer, category Category, difficulty int) (*Question, error) {
	q := &Question{
		Text:       text,
		Answers:    append([]Answer(nil), answers...),
		Category:   category,
		Difficulty: difficulty,
	}
	if verr := validate(q); verr != nil {
		return nil, verr
	}
	return q, nil
}

// MustNew is like New but panics if the question is invalid.
// It is meant for hardcoded question data only.
func MustNew(text string, answers []Answer, category Category, difficulty int) *Question {
	q, err := New(text, answers, category, difficulty)
	if err != nil {
		panic(err)
	}
	return q
}

// CorrectAnswers returns the correct answers in display order.
func (q *Question) CorrectAnswers() []Answer {
	var out []Answer
	for _, a := range q.Answers {
		if a.Correct {
			out = append(out, a)
		}
	}
	return out
}

// CheckAnswer reports whether the 0-based index points at a correct answer.
// Out-of-range indexes are simply incorrect.
func (q *Question) CheckAnswer(index int) bool {
	if index < 0 || index >= len(q.Answers) {
		return false
	}
	return q.Answers[index].Correct
}

// Points returns the score awarded for answering this question correctly.
func (q *Question) Points() int {
	return q.Difficulty * PointsPerDifficulty
}

func (q *Question) String() string {
	return fmt.Sprintf("[%s] %s", q.Category.DisplayName(), q.Text)
}
