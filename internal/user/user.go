package user

import (
	"fmt"

	"github.com/abhisek/softskills/internal/question"
)

// User is the player of a single quiz session.
type User struct {
	Name  string
	Score int

	// Answered lists every question asked, in order, whether or not the
	// answer was correct. A question asked twice appears twice.
	Answered []*question.Question
}

// New creates a user with a zero score and empty history.
func New(name string) *User {
	return &User{Name: name}
}

// AddScore adds points to the user's score. Negative values are ignored so
// the score never decreases.
func (u *User) AddScore(points int) {
	if points <= 0 {
		return
	}
	u.Score += points
}

// Record appends q to the answered history.
func (u *User) Record(q *question.Question) {
	u.Answered = append(u.Answered, q)
}

func (u *User) String() string {
	return fmt.Sprintf("User: %s, Score: %d", u.Name, u.Score)
}
