package embedding

import (
	"errors"
	"fmt"

	"github.com/jeffrydegrande/quietly/lexicon"
	"github.com/jeffrydegrande/quietly/types"
)

// ErrEmptySeedList is returned when a prototype is requested for no seed words
var ErrEmptySeedList = errors.New("prototype requires at least one seed word")

// MissingVectorError reports a seed word without an embedding in the lexicon
type MissingVectorError struct {
	Word string
}

func (e *MissingVectorError) Error() string {
	return fmt.Sprintf("no embedding vector for %q", e.Word)
}

// BuildPrototype averages the lexicon vectors of the seed words into a single
// prototype vector representing their semantic class. The mean is
// commutative, so the result does not depend on seed order. Fails with
// MissingVectorError naming the first seed word that lacks a vector.
func BuildPrototype(lex *lexicon.Lexicon, seedWords []string) (types.Embedding, error) {
	if len(seedWords) == 0 {
		return types.Embedding{}, ErrEmptySeedList
	}

	sum := make([]float64, lex.Dim())
	for _, word := range seedWords {
		entry, err := lex.Lookup(word)
		if err != nil || !entry.HasVector() {
			return types.Embedding{}, &MissingVectorError{Word: word}
		}
		for i, v := range entry.Vector {
			sum[i] += float64(v)
		}
	}

	mean := make([]float32, len(sum))
	for i, v := range sum {
		mean[i] = float32(v / float64(len(seedWords)))
	}

	return types.Embedding{Vector: mean}, nil
}
