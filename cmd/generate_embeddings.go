package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jeffrydegrande/quietly/embedding"
	"github.com/jeffrydegrande/quietly/lexicon"
	"github.com/spf13/cobra"
)

var (
	genSeedsFile  string
	genOutputFile string
	genLogProb    float64
)

var generateEmbeddingsCmd = &cobra.Command{
	Use:   "generate-embeddings",
	Short: "Generate embeddings for seed words",
	Long: `Generate embeddings for every seed word using the OpenAI API and write them
as a lexicon file. This covers seed verbs the external pipeline's vector
table is missing, so prototypes can still be built for them.

Corpus log-probabilities are not available from the API; generated entries
carry a fixed out-of-vocabulary value instead.`,
	Run: generateEmbeddingsMain,
}

func init() {
	generateEmbeddingsCmd.Flags().StringVarP(&genSeedsFile, "seeds", "s", "", "Seeds file (defaults to the built-in seed sets)")
	generateEmbeddingsCmd.Flags().StringVarP(&genOutputFile, "output", "o", "data/seed_lexicon.toml", "Output lexicon file")
	generateEmbeddingsCmd.Flags().Float64Var(&genLogProb, "logprob", -17.0, "Log-probability recorded for generated entries")
	rootCmd.AddCommand(generateEmbeddingsCmd)
}

func generateEmbeddingsMain(cmd *cobra.Command, args []string) {
	// Get API key from flag or environment variable
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = embedding.GetAPIKey()
		if apiKey == "" {
			fmt.Fprintln(os.Stderr, "OpenAI API key not provided. Use --api-key flag or set OPENAI_API_KEY environment variable")
			os.Exit(1)
		}
	}

	sets := loadSeedSets(genSeedsFile)

	client := embedding.NewOpenAIClient(apiKey)
	ctx := context.Background()

	seen := make(map[string]bool)
	var entries []lexicon.Entry
	for _, set := range sets {
		for _, word := range set.Words {
			if seen[word] {
				continue
			}
			seen[word] = true

			fmt.Printf("Generating embedding for '%s'...\n", word)

			emb, err := client.GetEmbedding(ctx, word)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating embedding for %s: %v\n", word, err)
				os.Exit(1)
			}

			entries = append(entries, lexicon.Entry{
				Word:    word,
				LogProb: genLogProb,
				Vector:  emb.Vector,
			})
		}
	}

	lex, err := lexicon.FromEntries(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building lexicon: %v\n", err)
		os.Exit(1)
	}

	if err := lexicon.SaveFile(lex, genOutputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving lexicon file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d embedding(s) and saved to %s\n", len(entries), genOutputFile)
}
