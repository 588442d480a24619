package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeffrydegrande/quietly/embedding"
	"github.com/jeffrydegrande/quietly/seeds"
	"github.com/spf13/cobra"
)

var (
	protoSeedsFile string
	protoOutputDir string
)

var prototypeCmd = &cobra.Command{
	Use:   "prototype",
	Short: "Build and save prototype vectors for seed sets",
	Long: `Build a prototype vector for every seed set by averaging the seed words'
lexicon vectors, and store the results in separate files:
- seeds.toml: the seed set definitions
- prototypes.toml: one prototype vector per seed set

Saved prototypes let repeated runs skip the averaging step.`,
	Run: prototypeMain,
}

func init() {
	prototypeCmd.Flags().StringVarP(&protoSeedsFile, "seeds", "s", "", "Seeds file (defaults to the built-in seed sets)")
	prototypeCmd.Flags().StringVarP(&protoOutputDir, "output-dir", "d", "prototypes", "Output directory for prototype files")
	rootCmd.AddCommand(prototypeCmd)
}

func prototypeMain(cmd *cobra.Command, args []string) {
	lex := loadLexicon(cmd)
	sets := loadSeedSets(protoSeedsFile)

	var prototypes []embedding.PrototypeEntry
	for _, set := range sets {
		fmt.Printf("Building prototype for seed set '%s'...\n", set.Name)

		prototype, err := embedding.BuildPrototype(lex, set.Words)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building prototype for %s: %v\n", set.Name, err)
			os.Exit(1)
		}

		prototypes = append(prototypes, embedding.PrototypeEntry{
			SeedSet:   set.Name,
			Embedding: prototype,
		})
	}

	if err := seeds.SaveSeedsFile(sets, protoOutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving seeds file: %v\n", err)
		os.Exit(1)
	}

	if err := embedding.SavePrototypesFile(prototypes, protoOutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving prototypes file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully built %d prototype(s) and saved to %s\n", len(prototypes), protoOutputDir)
	fmt.Printf("- Seeds: %s\n", filepath.Join(protoOutputDir, "seeds.toml"))
	fmt.Printf("- Prototypes: %s\n", filepath.Join(protoOutputDir, "prototypes.toml"))
}
