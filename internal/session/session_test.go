package session

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/softskills/internal/question"
	"github.com/abhisek/softskills/internal/user"
)

func testQuiz(input string) (*SoftSkillsQuiz, *bytes.Buffer) {
	var out bytes.Buffer
	q := New(user.New("Test"), question.Defaults(), strings.NewReader(input), &out)
	return q, &out
}

// lineReader hands out one line per Read call and runs before ahead of each.
type lineReader struct {
	lines  []string
	next   int
	before func(i int)
}

func (r *lineReader) Read(p []byte) (int, error) {
	if r.next >= len(r.lines) {
		return 0, io.EOF
	}
	if r.before != nil {
		r.before(r.next)
	}
	n := copy(p, r.lines[r.next]+"\n")
	r.next++
	return n, nil
}

func TestNew_EmptyQuestionsLoadsDefaults(t *testing.T) {
	q := New(user.New("Test"), nil, strings.NewReader(""), io.Discard)

	require.Len(t, q.Questions(), 3)
	assert.NotEmpty(t, q.ID())
	assert.Equal(t, 0, q.CurrentIndex())
	assert.Equal(t, PhaseNotStarted, q.Phase())
}

func TestAskQuestion_CorrectAddsPoints(t *testing.T) {
	q, out := testQuiz("2\n")

	correct, err := q.AskQuestion()
	require.NoError(t, err)

	assert.True(t, correct)
	assert.Equal(t, 20, q.Score())
	assert.Equal(t, 1, q.CurrentIndex())
	require.Len(t, q.User().Answered, 1)
	assert.Same(t, q.Questions()[0], q.User().Answered[0])

	text := out.String()
	assert.Contains(t, text, "Question 1: [Communication]")
	assert.Contains(t, text, "★★")
	assert.Contains(t, text, "Test, choose an option (1-3):")
	assert.Contains(t, text, "✅ Correct! +20 points")
	assert.Contains(t, text, "Explanation: Direct communication uncovers the cause")
	assert.NotContains(t, text, "Correct answer:")
}

func TestAskQuestion_IncorrectRevealsAnswer(t *testing.T) {
	q, out := testQuiz("3\n")

	correct, err := q.AskQuestion()
	require.NoError(t, err)

	assert.False(t, correct)
	assert.Equal(t, 0, q.Score())
	assert.Equal(t, 1, q.CurrentIndex())
	assert.Len(t, q.User().Answered, 1)

	text := out.String()
	assert.Contains(t, text, "❌ Wrong!")
	assert.Contains(t, text, "Explanation: Try to resolve it directly with the colleague first")
	assert.Contains(t, text, "Correct answer: Talk the problem through openly with the colleague and offer help")
}

func TestAskQuestion_ScoreByDifficulty(t *testing.T) {
	q, _ := testQuiz("2\n2\n1\n")

	want := []struct {
		correct bool
		score   int
	}{
		{true, 20},  // difficulty 2
		{true, 50},  // difficulty 3
		{false, 50}, // wrong answer adds nothing
	}

	for i, w := range want {
		correct, err := q.AskQuestion()
		require.NoError(t, err)
		assert.Equal(t, w.correct, correct, "question %d", i+1)
		assert.Equal(t, w.score, q.Score(), "question %d", i+1)
	}
}

func TestAskQuestion_AfterLastQuestion(t *testing.T) {
	q, out := testQuiz("2\n2\n2\n")
	for i := 0; i < 3; i++ {
		_, err := q.AskQuestion()
		require.NoError(t, err)
	}
	require.Equal(t, 3, q.CurrentIndex())
	require.Equal(t, PhaseCompleted, q.Phase())

	before := out.Len()
	correct, err := q.AskQuestion()
	require.NoError(t, err)

	assert.False(t, correct)
	assert.Equal(t, 3, q.CurrentIndex())
	assert.Equal(t, 70, q.Score())
	assert.Len(t, q.User().Answered, 3)
	assert.Equal(t, before, out.Len(), "no output expected once the quiz is over")
}

func TestAskQuestion_RetriesInvalidInput(t *testing.T) {
	var out bytes.Buffer
	var q *SoftSkillsQuiz
	in := &lineReader{
		lines: []string{"abc", "99", "2"},
		before: func(i int) {
			assert.Equal(t, 0, q.CurrentIndex(), "index changed before line %d", i)
			assert.Equal(t, 0, q.Score(), "score changed before line %d", i)
			assert.Empty(t, q.User().Answered, "history changed before line %d", i)
		},
	}
	q = New(user.New("Test"), question.Defaults(), in, &out)

	correct, err := q.AskQuestion()
	require.NoError(t, err)

	assert.True(t, correct)
	assert.Equal(t, 3, in.next)
	assert.Equal(t, 1, q.CurrentIndex())
	assert.Equal(t, 20, q.Score())

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Please enter a number"))
	assert.Equal(t, 1, strings.Count(text, "Please enter a number from 1 to 3"))
	assert.Equal(t, 3, strings.Count(text, "choose an option (1-3)"))
}

func TestAskQuestion_OverlongLineIsRetried(t *testing.T) {
	q, out := testQuiz(strings.Repeat("x", 70000) + "\n2\n")

	correct, err := q.AskQuestion()
	require.NoError(t, err)

	assert.True(t, correct)
	assert.Equal(t, 1, q.CurrentIndex())
	assert.Equal(t, 20, q.Score())
	assert.Equal(t, 1, strings.Count(out.String(), "Please enter a number"))
}

func TestAskQuestion_InputVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"surrounding whitespace", "  2  \n", true},
		{"zero then valid", "0\n2\n", true},
		{"negative then valid", "-1\n1\n", false},
		{"empty line then valid", "\n2\n", true},
		{"decimal then valid", "2.0\n3\n", false},
		{"no trailing newline", "2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := testQuiz(tt.input)
			correct, err := q.AskQuestion()
			require.NoError(t, err)
			assert.Equal(t, tt.want, correct)
			assert.Equal(t, 1, q.CurrentIndex())
		})
	}
}

func TestAskQuestion_InputClosed(t *testing.T) {
	q, _ := testQuiz("abc\n")

	correct, err := q.AskQuestion()
	require.ErrorIs(t, err, ErrInputClosed)

	assert.False(t, correct)
	assert.Equal(t, 0, q.CurrentIndex())
	assert.Equal(t, 0, q.Score())
	assert.Empty(t, q.User().Answered)
	assert.Equal(t, PhaseInProgress, q.Phase())
}

func TestPhaseTransitions(t *testing.T) {
	q, _ := testQuiz("2\n2\n2\n")
	assert.Equal(t, PhaseNotStarted, q.Phase())

	_, err := q.AskQuestion()
	require.NoError(t, err)
	assert.Equal(t, PhaseInProgress, q.Phase())

	_, err = q.AskQuestion()
	require.NoError(t, err)
	assert.Equal(t, PhaseInProgress, q.Phase())

	_, err = q.AskQuestion()
	require.NoError(t, err)
	assert.Equal(t, PhaseCompleted, q.Phase())
}

func TestAskQuestion_RecordsRepeatedQuestion(t *testing.T) {
	shared := question.Feedback()
	var out bytes.Buffer
	q := New(user.New("Test"), []*question.Question{shared, shared}, strings.NewReader("1\n2\n"), &out)

	_, err := q.AskQuestion()
	require.NoError(t, err)
	_, err = q.AskQuestion()
	require.NoError(t, err)

	require.Len(t, q.User().Answered, 2)
	assert.Same(t, shared, q.User().Answered[0])
	assert.Same(t, shared, q.User().Answered[1])
	assert.Equal(t, 20, q.Score())
}

func TestRun_AllCorrect(t *testing.T) {
	q, out := testQuiz("2\n2\n2\n")

	require.NoError(t, q.Run())
	assert.Equal(t, 70, q.Score())
	assert.Equal(t, PhaseCompleted, q.Phase())

	text := out.String()
	assert.Contains(t, text, "Welcome to the Soft Skills quiz, Test!")
	assert.NotContains(t, text, q.ID(), "transcript must not vary per run")
	assert.Contains(t, text, "QUIZ RESULTS")
	assert.Contains(t, text, "Player: Test")
	assert.Contains(t, text, "Final score: 70")
	assert.Contains(t, text, "Questions answered: 3")
	assert.Contains(t, text, "  Communication: 1 question")
	assert.Contains(t, text, "  Conflict Resolution: 1 question")
	assert.Contains(t, text, "  Working with Feedback: 1 question")
	assert.Contains(t, text, "You scored 100.0% of the maximum possible score!")
	assert.Contains(t, text, VerdictExcellent.Message())
}

func TestRun_AllWrong(t *testing.T) {
	q, out := testQuiz("1\n3\n1\n")

	require.NoError(t, q.Run())
	assert.Equal(t, 0, q.Score())

	text := out.String()
	assert.Contains(t, text, "Final score: 0")
	assert.Contains(t, text, "You scored 0.0% of the maximum possible score!")
	assert.Contains(t, text, VerdictNeedsWork.Message())
}

func TestRun_InputClosed(t *testing.T) {
	q, out := testQuiz("2\n")

	err := q.Run()
	require.ErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, err.Error(), "question 2")
	assert.Contains(t, err.Error(), q.ID())
	assert.Equal(t, 1, q.CurrentIndex())
	assert.NotContains(t, out.String(), "QUIZ RESULTS")
}

func TestRenderQuestionPreview(t *testing.T) {
	var out bytes.Buffer
	RenderQuestionPreview(&out, question.Teamwork())

	text := out.String()
	assert.Contains(t, text, "Question: [Conflict Resolution] Two team members")
	assert.Contains(t, text, "★★★")
	assert.Contains(t, text, "Hear both sides out and propose a compromise")
	assert.NotContains(t, text, "choose an option")
}
