package session

import "errors"

// ErrInputClosed is returned when the input ends before a valid choice was read.
var ErrInputClosed = errors.New("input closed")

// Quiz is the capability set of a running quiz.
type Quiz interface {
	// AskQuestion presents the current question, reads a choice and scores it.
	// Returns false without side effects when no questions remain.
	AskQuestion() (bool, error)

	// Score returns the player's current score.
	Score() int
}

// Phase represents the lifecycle stage of a quiz session.
type Phase int

const (
	PhaseNotStarted Phase = iota // No question rendered yet
	PhaseInProgress              // At least one question rendered, more remain
	PhaseCompleted               // Every question answered
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
