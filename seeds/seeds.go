package seeds

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// SeedSet names a semantic class and the seed words whose averaged vectors
// form its prototype
type SeedSet struct {
	Name        string   `toml:"name"`        // Class name (e.g., "communication")
	Description string   `toml:"description"` // Description of the semantic class
	Words       []string `toml:"words"`       // Seed words, each must have a lexicon vector
}

// DefaultSeedSets returns the built-in seed sets
func DefaultSeedSets() []SeedSet {
	return []SeedSet{
		{
			Name:        "communication",
			Description: "Evocative communication verbs whose manner adverbs tend to be stylistically dubious",
			Words:       []string{"pleaded", "confessed", "remonstrated", "begged", "bragged", "confided", "requested"},
		},
	}
}

// Find returns the named seed set from sets, or an error naming what is
// missing
func Find(sets []SeedSet, name string) (SeedSet, error) {
	for _, set := range sets {
		if set.Name == name {
			return set, nil
		}
	}
	return SeedSet{}, fmt.Errorf("no seed set named %q", name)
}

// SaveSeedsFile saves seed set definitions to seeds.toml in outputDir
func SaveSeedsFile(sets []SeedSet, outputDir string) error {
	// Ensure directory exists
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	seedsFile := filepath.Join(outputDir, "seeds.toml")
	file, err := os.Create(seedsFile)
	if err != nil {
		return fmt.Errorf("error creating seeds file: %w", err)
	}
	defer file.Close()

	config := struct {
		Seeds []SeedSet `toml:"seeds"`
	}{
		Seeds: sets,
	}

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding seeds TOML: %w", err)
	}

	return nil
}

// LoadSeedsFile loads seed sets from a TOML file
func LoadSeedsFile(seedsFile string) ([]SeedSet, error) {
	data, err := os.ReadFile(seedsFile)
	if err != nil {
		return nil, fmt.Errorf("error reading seeds file: %w", err)
	}

	var config struct {
		Seeds []SeedSet `toml:"seeds"`
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing seeds file: %w", err)
	}

	return config.Seeds, nil
}
