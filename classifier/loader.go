package classifier

import (
	"fmt"
	"os"

	"github.com/jeffrydegrande/quietly/types"
	"github.com/pelletier/go-toml/v2"
)

// LoadTokensFile reads a tagged, parsed token stream from a TOML file:
//
//	[[tokens]]
//	text = "pleaded"
//	pos = "VERB"
//	head = 3
//	logprob = -13.2
func LoadTokensFile(path string) ([]types.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading tokens file: %w", err)
	}

	var config struct {
		Tokens []types.Token `toml:"tokens"`
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing tokens file: %w", err)
	}

	return config.Tokens, nil
}
