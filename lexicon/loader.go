package lexicon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// lexiconFile is the on-disk TOML layout:
//
//	[[words]]
//	word = "quietly"
//	logprob = -11.07
//	vector = [0.12, -0.43, ...]
type lexiconFile struct {
	Words []Entry `toml:"words"`
}

// LoadFile loads a lexicon from a TOML file. The file order becomes the
// lexicon's stable entry order.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}

	var file lexiconFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing lexicon file: %w", err)
	}

	lex, err := build(file.Words)
	if err != nil {
		return nil, err
	}
	return lex, nil
}

// SaveFile writes the lexicon to a TOML file, creating parent directories as
// needed
func SaveFile(lex *Lexicon, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating lexicon file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(lexiconFile{Words: lex.Entries()}); err != nil {
		return fmt.Errorf("error encoding lexicon TOML: %w", err)
	}

	return nil
}
