package lexicon

import (
	"math"
	"sort"
)

// RarityThreshold derives the log-probability boundary between "common" and
// "rare" words: the log-probability of the nth most frequent word in the
// lexicon. Words at or above the threshold are common function words the
// classifier ignores; words below it are rare enough to be interesting.
//
// When n is zero, negative, or covers the whole vocabulary the threshold is
// +Inf: no word clears it, so the common-word filter excludes nothing.
func RarityThreshold(lex *Lexicon, n int) float64 {
	entries := lex.Entries()
	if n <= 0 || n >= len(entries) {
		return math.Inf(1)
	}

	probs := make([]float64, len(entries))
	for i, entry := range entries {
		probs[i] = entry.LogProb
	}
	// Ascending: rarest (most negative) first. Equal values sort to the
	// same positions regardless of input order, keeping the result
	// deterministic.
	sort.Float64s(probs)

	return probs[len(probs)-n]
}
