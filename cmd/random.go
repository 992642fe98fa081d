package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/softskills/internal/question"
	"github.com/abhisek/softskills/internal/session"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print one randomly chosen question without asking it",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		session.RenderQuestionPreview(cmd.OutOrStdout(), question.Random(resolveRand(cmd)))
	},
}
