package session

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/softskills/internal/question"
	"github.com/abhisek/softskills/internal/ui/theme"
)

func renderWelcome(w io.Writer, name string) {
	lipgloss.Fprintln(w)
	lipgloss.Fprintln(w, theme.Title.Render(fmt.Sprintf("Welcome to the Soft Skills quiz, %s!", name)))
	lipgloss.Fprintln(w, theme.Body.Render("Answer every question to check your skills."))
	lipgloss.Fprintln(w)
}

// renderQuestion prints the question banner and its numbered options.
func renderQuestion(w io.Writer, number int, q *question.Question) {
	lipgloss.Fprintln(w)
	lipgloss.Fprintln(w, theme.Separator())
	lipgloss.Fprintln(w, theme.Heading.Render(fmt.Sprintf("Question %d: %s", number, q)))
	lipgloss.Fprintln(w, "Difficulty: "+theme.Stars.Render(strings.Repeat("★", q.Difficulty)))
	lipgloss.Fprintln(w, theme.Separator())
	renderOptions(w, q)
}

func renderOptions(w io.Writer, q *question.Question) {
	for i, a := range q.Answers {
		lipgloss.Fprintln(w, theme.OptionNumber.Render(fmt.Sprintf("%d.", i+1))+" "+theme.Body.Render(a.Text))
	}
}

func renderPrompt(w io.Writer, name string, count int) {
	lipgloss.Fprint(w, "\n"+theme.Prompt.Render(fmt.Sprintf("%s, choose an option (1-%d): ", name, count)))
}

func renderNotANumber(w io.Writer) {
	lipgloss.Fprintln(w, theme.Warning.Render("Please enter a number"))
}

func renderOutOfRange(w io.Writer, count int) {
	lipgloss.Fprintln(w, theme.Warning.Render(fmt.Sprintf("Please enter a number from 1 to %d", count)))
}

func renderCorrect(w io.Writer, points int, selected question.Answer) {
	lipgloss.Fprintln(w)
	lipgloss.Fprintln(w, theme.Correct.Render(fmt.Sprintf("✅ Correct! +%d points", points)))
	lipgloss.Fprintln(w, theme.Hint.Render("Explanation: "+selected.Explanation))
}

// renderIncorrect prints the failure feedback. reveal is the first correct
// answer, or nil if the question somehow has none.
func renderIncorrect(w io.Writer, selected question.Answer, reveal *question.Answer) {
	lipgloss.Fprintln(w)
	lipgloss.Fprintln(w, theme.Incorrect.Render("❌ Wrong!"))
	lipgloss.Fprintln(w, theme.Hint.Render("Explanation: "+selected.Explanation))
	if reveal != nil {
		lipgloss.Fprintln(w, theme.Body.Render("Correct answer: "+reveal.Text))
	}
}

// RenderQuestionPreview prints a question and its options without asking it.
func RenderQuestionPreview(w io.Writer, q *question.Question) {
	lipgloss.Fprintln(w, theme.Heading.Render("Question: "+q.String()))
	lipgloss.Fprintln(w, "Difficulty: "+theme.Stars.Render(strings.Repeat("★", q.Difficulty)))
	renderOptions(w, q)
}

// RenderBanner prints a title between two separators.
func RenderBanner(w io.Writer, title string) {
	lipgloss.Fprintln(w)
	lipgloss.Fprintln(w, theme.Separator())
	lipgloss.Fprintln(w, theme.Title.Render(title))
	lipgloss.Fprintln(w, theme.Separator())
}
