package cmd

import (
	"fmt"
	"os"

	"github.com/jeffrydegrande/quietly/classifier"
	"github.com/jeffrydegrande/quietly/embedding"
	"github.com/jeffrydegrande/quietly/lexicon"
	"github.com/spf13/cobra"
)

var (
	flagSeedsFile string
	flagSeedSet   string
	flagRank      int
	flagTolerance float64
	flagAll       bool
)

var flagCmd = &cobra.Command{
	Use:   "flag [tokens-file]",
	Short: "Flag stylistically dubious adverbs in a parsed token stream",
	Long: `Classify a tagged, dependency-parsed token stream and report the adverbs
judged stylistically dubious: rare adverbs whose head verb is close to the
seed-set prototype. The token stream is a TOML file produced by the external
NLP pipeline.`,
	Args: cobra.ExactArgs(1),
	Run:  flagMain,
}

func init() {
	flagCmd.Flags().StringVarP(&flagSeedsFile, "seeds", "s", "", "Seeds file (defaults to the built-in seed sets)")
	flagCmd.Flags().StringVar(&flagSeedSet, "seed-set", "communication", "Seed set to build the prototype from")
	flagCmd.Flags().IntVarP(&flagRank, "rank", "n", 1000, "Number of most frequent words treated as common")
	flagCmd.Flags().Float64VarP(&flagTolerance, "tolerance", "t", 0.5, "Minimum head-verb similarity for a flag")
	flagCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "Print the decision for every token, not only flags")
	rootCmd.AddCommand(flagCmd)
}

func flagMain(cmd *cobra.Command, args []string) {
	tokensFile := args[0]

	lex := loadLexicon(cmd)
	set := findSeedSet(loadSeedSets(flagSeedsFile), flagSeedSet)

	prototype, err := embedding.BuildPrototype(lex, set.Words)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building prototype for %q: %v\n", set.Name, err)
		os.Exit(1)
	}

	tokens, err := classifier.LoadTokensFile(tokensFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tokens: %v\n", err)
		os.Exit(1)
	}
	tokens = classifier.Enrich(lex, tokens)

	threshold := lexicon.RarityThreshold(lex, flagRank)
	clf := classifier.New(threshold, prototype, flagTolerance)
	decisions := clf.Classify(tokens)

	if flagAll {
		printDecisions(decisions)
		return
	}

	flagged := classifier.Flagged(decisions)
	if len(flagged) == 0 {
		fmt.Println("No dubious adverbs found.")
		return
	}

	fmt.Printf("Found %d dubious adverb(s):\n\n", len(flagged))
	printDecisions(flagged)
}

func printDecisions(decisions []classifier.Decision) {
	for _, d := range decisions {
		marker := " "
		if d.Flagged {
			marker = "!"
		}
		fmt.Printf("%s %-16s rule=%-20s", marker, d.Token.Text, d.Rule)
		if d.Head != "" {
			fmt.Printf(" head=%-12s score=%.4f", d.Head, d.Score)
		}
		fmt.Println()
	}
}
