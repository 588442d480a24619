// Package classifier decides which adverbs in a tagged, dependency-parsed
// sentence are stylistically dubious: rare manner adverbs whose head verb is
// semantically close to a prototype of evocative communication verbs.
package classifier

import (
	"math"

	"github.com/jeffrydegrande/quietly/embedding"
	"github.com/jeffrydegrande/quietly/types"
)

// Rule identifies which step of the decision chain settled a token
type Rule string

const (
	// RuleNotAdverb means the token is not an adverb
	RuleNotAdverb Rule = "not-adverb"
	// RuleNoVerbHead means the adverb has no verbal head (e.g. it modifies an adjective)
	RuleNoVerbHead Rule = "no-verb-head"
	// RuleCommonWord means the adverb is a common function word ("back", "not")
	RuleCommonWord Rule = "common-word"
	// RuleHeadVectorMissing means the head verb has no embedding to compare
	RuleHeadVectorMissing Rule = "head-vector-missing"
	// RuleSimilarity means the similarity comparison itself decided
	RuleSimilarity Rule = "similarity"
)

// Decision records the outcome for one token together with the evidence that
// produced it
type Decision struct {
	Token   types.Token // The token the decision is about
	Flagged bool
	Rule    Rule    // The step that settled the decision
	Head    string  // Surface text of the head verb, when the chain got that far
	Rare    bool    // Whether the token passed the rarity check
	Score   float64 // Cosine similarity of head verb to prototype; -Inf when the head has no usable vector
}

// Classifier flags stylistically dubious adverbs. It is pure: Classify keeps
// no state between calls, so one Classifier may serve any number of
// goroutines over independent sentences.
type Classifier struct {
	// Threshold is the rarity boundary: tokens with log-probability at or
	// above it are common function words, never flagged
	Threshold float64
	// Prototype is the averaged seed vector of the target semantic class
	Prototype types.Embedding
	// Tolerance is the minimum head-verb similarity for a flag
	Tolerance float64
}

// New creates a classifier from a rarity threshold, a prototype vector and a
// similarity tolerance
func New(threshold float64, prototype types.Embedding, tolerance float64) *Classifier {
	return &Classifier{
		Threshold: threshold,
		Prototype: prototype,
		Tolerance: tolerance,
	}
}

// tokenContext carries one token and its resolved head through the guards
type tokenContext struct {
	token types.Token
	index int
	head  *types.Token
}

// guard inspects a token and either settles its decision or passes it on
type guard func(c *Classifier, tc tokenContext) (Decision, bool)

// guards is the ordered decision chain. Each step either settles the token
// or defers to the next; the final similarity step always settles.
var guards = []guard{
	(*Classifier).adverbGuard,
	(*Classifier).headGuard,
	(*Classifier).rarityGuard,
	(*Classifier).similarityGuard,
}

// Classify runs the decision chain over every token, returning one decision
// per token in input order. Per-token vector problems are absorbed into a
// not-flagged outcome; nothing here can abort a document.
func (c *Classifier) Classify(tokens []types.Token) []Decision {
	decisions := make([]Decision, len(tokens))
	for i := range tokens {
		tc := tokenContext{token: tokens[i], index: i, head: resolveHead(tokens, i)}
		for _, g := range guards {
			if d, done := g(c, tc); done {
				decisions[i] = d
				break
			}
		}
	}
	return decisions
}

// resolveHead returns the syntactic head of tokens[i], or nil for roots,
// detached tokens and out-of-range head references
func resolveHead(tokens []types.Token, i int) *types.Token {
	head := tokens[i].Head
	if head < 0 || head == i || head >= len(tokens) {
		return nil
	}
	return &tokens[head]
}

// adverbGuard settles every token that is not an adverb
func (c *Classifier) adverbGuard(tc tokenContext) (Decision, bool) {
	if tc.token.POS == types.POSAdverb {
		return Decision{}, false
	}
	return Decision{Token: tc.token, Rule: RuleNotAdverb}, true
}

// headGuard settles adverbs without a verbal head; an adverb modifying an
// adjective is never flagged
func (c *Classifier) headGuard(tc tokenContext) (Decision, bool) {
	if tc.head != nil && tc.head.POS == types.POSVerb {
		return Decision{}, false
	}
	return Decision{Token: tc.token, Rule: RuleNoVerbHead}, true
}

// rarityGuard settles common function-word adverbs. These are frequent in
// every style and must never be confused with manner adverbs, regardless of
// how similar their head verb is to the prototype.
func (c *Classifier) rarityGuard(tc tokenContext) (Decision, bool) {
	if tc.token.LogProb < c.Threshold {
		return Decision{}, false
	}
	return Decision{
		Token: tc.token,
		Rule:  RuleCommonWord,
		Head:  tc.head.Text,
		Rare:  false,
	}, true
}

// similarityGuard settles every remaining token by comparing its head verb
// to the prototype. A head without a usable vector scores -Inf, below any
// plausible tolerance.
func (c *Classifier) similarityGuard(tc tokenContext) (Decision, bool) {
	d := Decision{
		Token: tc.token,
		Head:  tc.head.Text,
		Rare:  true,
	}

	if !tc.head.HasVector() {
		d.Rule = RuleHeadVectorMissing
		d.Score = math.Inf(-1)
		return d, true
	}

	score, err := embedding.CosineSimilarity(types.Embedding{Vector: tc.head.Vector}, c.Prototype)
	if err != nil {
		d.Rule = RuleHeadVectorMissing
		d.Score = math.Inf(-1)
		return d, true
	}

	d.Rule = RuleSimilarity
	d.Score = score
	d.Flagged = score >= c.Tolerance
	return d, true
}

// Flagged filters a decision sequence down to the flagged tokens
func Flagged(decisions []Decision) []Decision {
	var out []Decision
	for _, d := range decisions {
		if d.Flagged {
			out = append(out, d)
		}
	}
	return out
}
