package lexicon

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/jeffrydegrande/quietly/types"
)

// ErrNotFound is returned by Lookup when a word is absent from the lexicon.
// Callers must treat this as "unknown word", never as a fatal error; for
// rarity filtering an unknown word counts as maximally rare.
var ErrNotFound = errors.New("word not found in lexicon")

// LoadError reports an embedding dimension mismatch discovered at load time
type LoadError struct {
	Word string // The word whose vector has the wrong dimension
	Dim  int    // The dimension found
	Want int    // The dimension established by earlier entries
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("lexicon: vector for %q has dimension %d, want %d", e.Word, e.Dim, e.Want)
}

// Entry holds everything the lexicon knows about one word
type Entry struct {
	Word    string    `toml:"word"`
	LogProb float64   `toml:"logprob"`          // More negative = rarer
	Vector  []float32 `toml:"vector,omitempty"` // nil when the word has no embedding
}

// HasVector reports whether the entry carries an embedding vector
func (e Entry) HasVector() bool {
	return len(e.Vector) > 0
}

// Embedding returns the entry's vector wrapped as an Embedding
func (e Entry) Embedding() types.Embedding {
	return types.Embedding{Vector: e.Vector}
}

// Lexicon is an immutable store of per-word log-probabilities and optional
// embedding vectors. It is populated once by Load or LoadFile and is safe for
// concurrent readers afterwards; nothing mutates it post-load.
type Lexicon struct {
	entries []Entry
	index   map[string]int
	dim     int
}

// Load builds a lexicon from the external pipeline's probability and vector
// tables. The entry order is deterministic: lexicographic over the union of
// both tables. A word present only in the vector table loads with
// log-probability -Inf, the same conservative "maximally rare" treatment
// unknown words get. Fails with LoadError when the vectors do not all share
// one dimension.
func Load(probs map[string]float64, vectors map[string][]float32) (*Lexicon, error) {
	words := make([]string, 0, len(probs))
	for word := range probs {
		words = append(words, word)
	}
	for word := range vectors {
		if _, ok := probs[word]; !ok {
			words = append(words, word)
		}
	}
	sort.Strings(words)

	entries := make([]Entry, 0, len(words))
	for _, word := range words {
		logProb, ok := probs[word]
		if !ok {
			logProb = math.Inf(-1)
		}
		entries = append(entries, Entry{
			Word:    word,
			LogProb: logProb,
			Vector:  vectors[word],
		})
	}

	return build(entries)
}

// FromEntries builds a lexicon from pre-assembled entries, preserving their
// order as the stable iteration order
func FromEntries(entries []Entry) (*Lexicon, error) {
	return build(entries)
}

// build indexes the entries and verifies the shared vector dimension
func build(entries []Entry) (*Lexicon, error) {
	lex := &Lexicon{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, entry := range entries {
		if _, dup := lex.index[entry.Word]; dup {
			return nil, fmt.Errorf("lexicon: duplicate entry for %q", entry.Word)
		}
		lex.index[entry.Word] = i

		if !entry.HasVector() {
			continue
		}
		if lex.dim == 0 {
			lex.dim = len(entry.Vector)
		} else if len(entry.Vector) != lex.dim {
			return nil, &LoadError{Word: entry.Word, Dim: len(entry.Vector), Want: lex.dim}
		}
	}
	return lex, nil
}

// Lookup returns the entry for word, or ErrNotFound when the word is absent
func (l *Lexicon) Lookup(word string) (Entry, error) {
	i, ok := l.index[word]
	if !ok {
		return Entry{}, fmt.Errorf("lexicon: %q: %w", word, ErrNotFound)
	}
	return l.entries[i], nil
}

// HasVector reports whether word is present and carries an embedding vector
func (l *Lexicon) HasVector(word string) bool {
	i, ok := l.index[word]
	return ok && l.entries[i].HasVector()
}

// Entries returns all entries in the lexicon's stable load order. The slice
// is shared; callers must not modify it.
func (l *Lexicon) Entries() []Entry {
	return l.entries
}

// Len returns the number of words in the lexicon
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Dim returns the shared embedding dimension, 0 when no entry has a vector
func (l *Lexicon) Dim() int {
	return l.dim
}
