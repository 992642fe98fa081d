package question

import (
	"math/rand/v2"
	"time"
)

// Communication returns the missed-deadlines question.
func Communication() *Question {
	return MustNew(
		"A colleague keeps missing deadlines on shared work. What do you do?",
		[]Answer{
			{
				Text:        "Do the work for them so the team is not let down",
				Explanation: "This leads to burnout and does not address the root cause",
			},
			{
				Text:        "Talk the problem through openly with the colleague and offer help",
				Correct:     true,
				Explanation: "Direct communication uncovers the cause and lets you solve it together",
			},
			{
				Text:        "Report the situation to your manager right away",
				Explanation: "Try to resolve it directly with the colleague first",
			},
		},
		CategoryCommunication,
		2,
	)
}

// Teamwork returns the meeting-conflict question. It is tagged as conflict
// resolution since that is the skill it exercises.
func Teamwork() *Question {
	return MustNew(
		"Two team members get into a conflict during a meeting. What do you do?",
		[]Answer{
			{
				Text:        "Stop the discussion and move it to another time",
				Explanation: "This may postpone the problem but does not solve it",
			},
			{
				Text:        "Hear both sides out and propose a compromise",
				Correct:     true,
				Explanation: "Active mediation helps find a mutually acceptable solution",
			},
			{
				Text:        "Let them sort out the conflict on their own",
				Explanation: "Without mediation the conflict can escalate",
			},
		},
		CategoryConflictResolution,
		3,
	)
}

// Feedback returns the negative-feedback question.
func Feedback() *Question {
	return MustNew(
		"How do you act when you receive negative feedback about your work?",
		[]Answer{
			{
				Text:        "Defend my position and explain why I did it that way",
				Explanation: "Defensiveness can read as unwillingness to grow",
			},
			{
				Text:        "Listen, ask clarifying questions and draw up an improvement plan",
				Correct:     true,
				Explanation: "A proactive approach to feedback shows maturity and readiness to grow",
			},
			{
				Text:        "Thank them for the feedback but keep working the same way",
				Explanation: "Ignoring feedback holds back professional growth",
			},
		},
		CategoryFeedback,
		2,
	)
}

// Defaults returns the default quiz question set.
func Defaults() []*Question {
	return []*Question{
		Communication(),
		Teamwork(),
		Feedback(),
	}
}

// randomFactories are the constructors Random picks from.
var randomFactories = []func() *Question{
	Communication,
	Teamwork,
}

// Random builds a question from a factory chosen uniformly at random.
// A nil source falls back to a time-seeded one.
func Random(r *rand.Rand) *Question {
	if r == nil {
		r = NewRand(uint64(time.Now().UnixNano()))
	}
	return randomFactories[r.IntN(len(randomFactories))]()
}

// NewRand returns a deterministic random source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
