package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/jeffrydegrande/quietly/embedding"
	"github.com/spf13/cobra"
)

var (
	rankTop      int
	rankSeedsFlg string
	rankSeedSet  string
	rankParallel bool
)

var rankCmd = &cobra.Command{
	Use:   "rank [word]",
	Short: "Rank the vocabulary by similarity to a word or a seed-set prototype",
	Long: `Score every vector-bearing word in the lexicon by cosine similarity to a
query and print the best matches. The query is either a word's own vector or,
with --seed-set, the averaged prototype of a seed set.`,
	Args: cobra.MaximumNArgs(1),
	Run:  rankMain,
}

func init() {
	rankCmd.Flags().IntVarP(&rankTop, "top", "n", 10, "Number of matches to print")
	rankCmd.Flags().StringVarP(&rankSeedsFlg, "seeds", "s", "", "Seeds file (defaults to the built-in seed sets)")
	rankCmd.Flags().StringVar(&rankSeedSet, "seed-set", "", "Rank against this seed set's prototype instead of a word")
	rankCmd.Flags().BoolVarP(&rankParallel, "parallel", "p", false, "Partition the scoring scan across CPUs")
	rootCmd.AddCommand(rankCmd)
}

func rankMain(cmd *cobra.Command, args []string) {
	if rankSeedSet == "" && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Provide a word to rank against, or --seed-set")
		os.Exit(1)
	}

	lex := loadLexicon(cmd)

	ranker := embedding.NewRanker(lex)
	if rankParallel {
		ranker.Workers = runtime.NumCPU()
	}

	var ranking embedding.Ranking
	var err error
	if rankSeedSet != "" {
		set := findSeedSet(loadSeedSets(rankSeedsFlg), rankSeedSet)
		prototype, perr := embedding.BuildPrototype(lex, set.Words)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error building prototype for %q: %v\n", set.Name, perr)
			os.Exit(1)
		}
		ranking, err = ranker.TopK(prototype, rankTop)
	} else {
		query, verr := lex.Lookup(args[0])
		if verr != nil || !query.HasVector() {
			fmt.Fprintf(os.Stderr, "No vector for %q in the lexicon\n", args[0])
			os.Exit(1)
		}
		stream, serr := ranker.Stream(query.Embedding(), rankTop)
		if serr != nil {
			err = serr
		} else {
			for {
				match, ok := stream.Next()
				if !ok {
					break
				}
				ranking.Matches = append(ranking.Matches, match)
			}
			ranking.Skipped = stream.Skipped()
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error ranking: %v\n", err)
		os.Exit(1)
	}

	for i, match := range ranking.Matches {
		fmt.Printf("%3d. %-20s %.4f\n", i+1, match.Word, match.Score)
	}
	if ranking.Skipped > 0 {
		fmt.Printf("(skipped %d zero-norm vectors)\n", ranking.Skipped)
	}
}

var similarityCmd = &cobra.Command{
	Use:   "similarity [wordA] [wordB]",
	Short: "Print the cosine similarity between two lexicon words",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		lex := loadLexicon(cmd)

		score, err := embedding.Similarity(lex, args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%.4f\n", score)
	},
}

func init() {
	rootCmd.AddCommand(similarityCmd)
}
