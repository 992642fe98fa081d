package session

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/softskills/internal/question"
	"github.com/abhisek/softskills/internal/ui/theme"
	"github.com/abhisek/softskills/internal/user"
)

// Verdict is the qualitative band of a final percentage.
type Verdict int

const (
	VerdictNeedsWork Verdict = iota // Below 60%
	VerdictGood                     // 60% up to 80%
	VerdictExcellent                // 80% and above
)

// Band thresholds in percent.
const (
	ExcellentThreshold = 80.0
	GoodThreshold      = 60.0
)

// VerdictFor returns the verdict band for a percentage (0-100).
func VerdictFor(percentage float64) Verdict {
	switch {
	case percentage >= ExcellentThreshold:
		return VerdictExcellent
	case percentage >= GoodThreshold:
		return VerdictGood
	default:
		return VerdictNeedsWork
	}
}

func (v Verdict) String() string {
	switch v {
	case VerdictExcellent:
		return "excellent"
	case VerdictGood:
		return "good"
	default:
		return "needs-work"
	}
}

// Message returns the text shown to the player for the verdict.
func (v Verdict) Message() string {
	switch v {
	case VerdictExcellent:
		return "🎉 Excellent result! Your soft skills are at a high level."
	case VerdictGood:
		return "👍 Good result! There is room to grow."
	default:
		return "📚 There is work to do. Spend more time on your soft skills."
	}
}

// CategoryCount is the number of answered questions in one category.
type CategoryCount struct {
	Category question.Category
	Count    int
}

// Summary holds the data printed in the final report.
type Summary struct {
	Player   string
	Score    int
	MaxScore int
	Answered int

	// Categories are ordered by first occurrence in the answered history.
	Categories []CategoryCount

	// Percentage is Score/MaxScore*100, or 0 when MaxScore is 0.
	Percentage float64
	Verdict    Verdict
}

// MaxScore returns the highest score reachable over the given questions.
func MaxScore(questions []*question.Question) int {
	total := 0
	for _, q := range questions {
		total += q.Points()
	}
	return total
}

// Percentage returns score as a percentage of maxScore. A zero maxScore yields 0.
func Percentage(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}

// BuildSummary creates a Summary for a user against the configured questions.
func BuildSummary(u *user.User, questions []*question.Question) *Summary {
	var cats []CategoryCount
	index := make(map[question.Category]int)
	for _, q := range u.Answered {
		i, ok := index[q.Category]
		if !ok {
			i = len(cats)
			index[q.Category] = i
			cats = append(cats, CategoryCount{Category: q.Category})
		}
		cats[i].Count++
	}

	maxScore := MaxScore(questions)
	pct := Percentage(u.Score, maxScore)

	return &Summary{
		Player:     u.Name,
		Score:      u.Score,
		MaxScore:   maxScore,
		Answered:   len(u.Answered),
		Categories: cats,
		Percentage: pct,
		Verdict:    VerdictFor(pct),
	}
}

// RenderSummary prints the final report.
func RenderSummary(w io.Writer, sum *Summary) {
	RenderBanner(w, "QUIZ RESULTS")
	lipgloss.Fprintln(w, theme.Body.Render("Player: "+sum.Player))
	lipgloss.Fprintln(w, theme.Body.Render(fmt.Sprintf("Final score: %d", sum.Score)))
	lipgloss.Fprintln(w, theme.Body.Render(fmt.Sprintf("Questions answered: %d", sum.Answered)))

	lipgloss.Fprintln(w)
	lipgloss.Fprintln(w, theme.Heading.Render("Question categories:"))
	for _, c := range sum.Categories {
		lipgloss.Fprintln(w, "  "+theme.Body.Render(fmt.Sprintf("%s: %s", c.Category.DisplayName(), pluralQuestions(c.Count))))
	}

	lipgloss.Fprintln(w)
	lipgloss.Fprintln(w, theme.Title.Render(fmt.Sprintf("You scored %.1f%% of the maximum possible score!", sum.Percentage)))
	lipgloss.Fprintln(w, verdictStyle(sum.Verdict).Render(sum.Verdict.Message()))
}

func verdictStyle(v Verdict) lipgloss.Style {
	switch v {
	case VerdictExcellent:
		return theme.Correct
	case VerdictGood:
		return theme.Warning
	default:
		return theme.Incorrect
	}
}

func pluralQuestions(n int) string {
	if n == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", n)
}
