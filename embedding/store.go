package embedding

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeffrydegrande/quietly/types"
	"github.com/pelletier/go-toml/v2"
)

// PrototypeEntry stores a built prototype vector with the name of the seed
// set it was averaged from
type PrototypeEntry struct {
	SeedSet   string          `toml:"seed_set"`
	Embedding types.Embedding `toml:"embedding"`
}

// SavePrototypesFile saves all prototypes to a single file
func SavePrototypesFile(prototypes []PrototypeEntry, outputDir string) error {
	// Ensure directory exists
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	prototypesFile := filepath.Join(outputDir, "prototypes.toml")
	file, err := os.Create(prototypesFile)
	if err != nil {
		return fmt.Errorf("error creating prototypes file: %w", err)
	}
	defer file.Close()

	config := struct {
		Prototypes []PrototypeEntry `toml:"prototypes"`
	}{
		Prototypes: prototypes,
	}

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding prototypes TOML: %w", err)
	}

	return nil
}

// LoadPrototypesFile loads prototypes from a file
func LoadPrototypesFile(prototypesFile string) ([]PrototypeEntry, error) {
	data, err := os.ReadFile(prototypesFile)
	if err != nil {
		return nil, fmt.Errorf("error reading prototypes file: %w", err)
	}

	var config struct {
		Prototypes []PrototypeEntry `toml:"prototypes"`
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing prototypes file: %w", err)
	}

	return config.Prototypes, nil
}
