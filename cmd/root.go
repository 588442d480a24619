package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quietly",
	Short: "Quietly flags stylistically dubious adverbs in tagged text",
	Long: `Quietly is the decision core of an adverb style linter. Given a tokenized,
POS-tagged, dependency-parsed sentence it flags rare manner adverbs whose head
verb is semantically close to a prototype of evocative communication verbs
("pleaded", "confessed", "muttered"). Tagging and parsing come from an
external NLP pipeline; quietly only consumes its output.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("lexicon", "l", "data/lexicon.toml", "Lexicon file with word probabilities and vectors")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "OpenAI API key (can also be set via OPENAI_API_KEY env var)")
}
