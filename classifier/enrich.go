package classifier

import (
	"math"
	"strings"

	"github.com/jeffrydegrande/quietly/lexicon"
	"github.com/jeffrydegrande/quietly/types"
)

// Enrich fills in token fields the external pipeline left blank, from the
// lexicon: a nil vector is looked up by surface text (falling back to the
// lowercased form), and a zero log-probability is replaced by the lexicon
// value. Words the lexicon does not know become maximally rare (-Inf), so
// the rarity check alone never filters them out. The input is not modified.
func Enrich(lex *lexicon.Lexicon, tokens []types.Token) []types.Token {
	out := make([]types.Token, len(tokens))
	for i, tok := range tokens {
		entry, err := lex.Lookup(tok.Text)
		if err != nil {
			entry, err = lex.Lookup(strings.ToLower(tok.Text))
		}

		if tok.Vector == nil && err == nil {
			tok.Vector = entry.Vector
		}
		if tok.LogProb == 0 {
			if err == nil {
				tok.LogProb = entry.LogProb
			} else {
				tok.LogProb = math.Inf(-1)
			}
		}
		out[i] = tok
	}
	return out
}
