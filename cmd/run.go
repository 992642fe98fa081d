package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/softskills/internal/question"
	"github.com/abhisek/softskills/internal/session"
	"github.com/abhisek/softskills/internal/user"
)

// runQuiz runs one full session on stdin/stdout, then shows a bonus question
// built by the random factory.
func runQuiz(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("name")
	out := cmd.OutOrStdout()

	quiz := session.New(user.New(name), question.Defaults(), cmd.InOrStdin(), out)
	if err := quiz.Run(); err != nil {
		return fmt.Errorf("run quiz: %w", err)
	}

	session.RenderBanner(out, "BONUS QUESTION FROM THE FACTORY")
	session.RenderQuestionPreview(out, question.Random(resolveRand(cmd)))
	return nil
}
