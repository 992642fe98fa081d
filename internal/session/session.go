package session

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/abhisek/softskills/internal/question"
	"github.com/abhisek/softskills/internal/user"
)

// SoftSkillsQuiz runs a soft-skills quiz for one user over a fixed question list.
type SoftSkillsQuiz struct {
	// id is the UUID for this session.
	id string

	// user is the player. Owned by this session.
	user *user.User

	// questions is the configured question list, in asking order.
	questions []*question.Question

	// current is the index of the next question to ask.
	current int

	// started is set once the first question has been rendered.
	started bool

	in  *bufio.Reader
	out io.Writer
}

var _ Quiz = (*SoftSkillsQuiz)(nil)

// New creates a quiz session reading choices from in and rendering to out.
// An empty question list loads question.Defaults().
func New(u *user.User, questions []*question.Question, in io.Reader, out io.Writer) *SoftSkillsQuiz {
	if len(questions) == 0 {
		questions = question.Defaults()
	}
	return &SoftSkillsQuiz{
		id:        uuid.New().String(),
		user:      u,
		questions: questions,
		in:        bufio.NewReader(in),
		out:       out,
	}
}

// ID returns the session UUID.
func (s *SoftSkillsQuiz) ID() string { return s.id }

// User returns the session's player.
func (s *SoftSkillsQuiz) User() *user.User { return s.user }

// Questions returns the configured question list.
func (s *SoftSkillsQuiz) Questions() []*question.Question { return s.questions }

// CurrentIndex returns the index of the next question to ask.
func (s *SoftSkillsQuiz) CurrentIndex() int { return s.current }

// Score returns the player's current score.
func (s *SoftSkillsQuiz) Score() int { return s.user.Score }

// Phase returns the lifecycle stage of the session.
func (s *SoftSkillsQuiz) Phase() Phase {
	switch {
	case s.current >= len(s.questions):
		return PhaseCompleted
	case s.started:
		return PhaseInProgress
	default:
		return PhaseNotStarted
	}
}

// AskQuestion renders the current question, reads choices until a valid one
// is entered and applies it. Returns the correctness of the choice.
//
// Malformed or out-of-range input is re-prompted and never changes state.
// If the input ends first, ErrInputClosed is returned and nothing is scored.
func (s *SoftSkillsQuiz) AskQuestion() (bool, error) {
	if s.current >= len(s.questions) {
		return false, nil
	}

	q := s.questions[s.current]
	s.started = true
	renderQuestion(s.out, s.current+1, q)

	choice, err := s.readChoice(len(q.Answers))
	if err != nil {
		return false, err
	}

	selected := q.Answers[choice-1]
	if selected.Correct {
		points := q.Points()
		s.user.AddScore(points)
		renderCorrect(s.out, points, selected)
	} else {
		var reveal *question.Answer
		if correct := q.CorrectAnswers(); len(correct) > 0 {
			reveal = &correct[0]
		}
		renderIncorrect(s.out, selected, reveal)
	}

	s.current++
	s.user.Record(q)
	return selected.Correct, nil
}

// Run asks every remaining question and prints the final report.
func (s *SoftSkillsQuiz) Run() error {
	renderWelcome(s.out, s.user.Name)

	for s.current < len(s.questions) {
		if _, err := s.AskQuestion(); err != nil {
			return fmt.Errorf("session %s: question %d: %w", s.id, s.current+1, err)
		}
	}

	RenderSummary(s.out, BuildSummary(s.user, s.questions))
	return nil
}
