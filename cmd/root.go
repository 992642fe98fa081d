package cmd

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/softskills/internal/question"
)

// defaultPlayer is the player name used when --name is not given.
const defaultPlayer = "Alex"

var rootCmd = &cobra.Command{
	Use:   "softskills",
	Short: "Workplace soft skills quiz",
	Long:  "Softskills — a console multiple-choice quiz on communication, teamwork, leadership, conflict resolution and feedback.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().String("name", defaultPlayer, "Player name")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for the random question (0 picks a time-based seed)")

	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveRand returns the random source selected by --seed, or nil for the
// time-seeded default.
func resolveRand(cmd *cobra.Command) *rand.Rand {
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		return nil
	}
	return question.NewRand(seed)
}
