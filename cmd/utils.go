package cmd

import (
	"fmt"
	"os"

	"github.com/jeffrydegrande/quietly/lexicon"
	"github.com/jeffrydegrande/quietly/seeds"
	"github.com/spf13/cobra"
)

// loadLexicon reads the lexicon named by the --lexicon flag, exiting on error
func loadLexicon(cmd *cobra.Command) *lexicon.Lexicon {
	path, _ := cmd.Flags().GetString("lexicon")

	lex, err := lexicon.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}
	return lex
}

// loadSeedSets returns the seed sets from the --seeds file when given, the
// built-in defaults otherwise
func loadSeedSets(seedsFile string) []seeds.SeedSet {
	if seedsFile == "" {
		return seeds.DefaultSeedSets()
	}

	sets, err := seeds.LoadSeedsFile(seedsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading seeds file: %v\n", err)
		os.Exit(1)
	}
	return sets
}

// findSeedSet picks the named seed set, exiting when it does not exist
func findSeedSet(sets []seeds.SeedSet, name string) seeds.SeedSet {
	set, err := seeds.Find(sets, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return set
}
