package classifier_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/jeffrydegrande/quietly/classifier"
	"github.com/jeffrydegrande/quietly/embedding"
	"github.com/jeffrydegrande/quietly/lexicon"
	"github.com/jeffrydegrande/quietly/types"
)

// testLexicon carries the communication verbs with vectors clustered around
// (0.9, 0.1, 0) plus the common function-word adverbs from the frequency
// table
func testLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()

	lex, err := lexicon.Load(
		map[string]float64{
			"pleaded":   -13.2,
			"confessed": -13.4,
			"begged":    -13.6,
			"quietly":   -11.07,
			"abjectly":  -14.0,
			"back":      -7.40,
			"not":       -5.41,
		},
		map[string][]float32{
			"pleaded":   {1.0, 0.0, 0.0},
			"confessed": {0.8, 0.2, 0.0},
			"begged":    {0.9, 0.1, 0.0},
		},
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return lex
}

func testPrototype(t *testing.T, lex *lexicon.Lexicon) types.Embedding {
	t.Helper()

	proto, err := embedding.BuildPrototype(lex, []string{"pleaded", "confessed", "begged"})
	if err != nil {
		t.Fatalf("BuildPrototype() error = %v", err)
	}
	return proto
}

func TestClassifyFlagsRareAdverbOfCommunicationVerb(t *testing.T) {
	lex := testLexicon(t)
	proto := testPrototype(t, lex)

	// "he pleaded abjectly": the adverb is rare and its head verb sits
	// right next to the prototype
	tokens := classifier.Enrich(lex, []types.Token{
		{Text: "he", POS: "PRON", Head: 1},
		{Text: "pleaded", POS: types.POSVerb, Head: 1},
		{Text: "abjectly", POS: types.POSAdverb, Head: 1},
	})

	clf := classifier.New(-9.0, proto, 0.9)
	decisions := clf.Classify(tokens)

	if len(decisions) != len(tokens) {
		t.Fatalf("Expected one decision per token, got %d for %d tokens", len(decisions), len(tokens))
	}

	d := decisions[2]
	if !d.Flagged {
		t.Fatalf("Expected abjectly to be flagged, rule = %s", d.Rule)
	}
	if d.Rule != classifier.RuleSimilarity {
		t.Errorf("Expected the similarity rule to decide, got %s", d.Rule)
	}
	if d.Head != "pleaded" {
		t.Errorf("Expected evidence to name the head verb, got %q", d.Head)
	}
	if d.Score < clf.Tolerance {
		t.Errorf("Expected score >= tolerance %f, got %f", clf.Tolerance, d.Score)
	}
	if !d.Rare {
		t.Errorf("Expected abjectly to pass the rarity check")
	}

	// The pronoun and the verb are settled by the part-of-speech guard
	for _, i := range []int{0, 1} {
		if decisions[i].Flagged || decisions[i].Rule != classifier.RuleNotAdverb {
			t.Errorf("Expected token %d to be settled as not-adverb, got %+v", i, decisions[i])
		}
	}
}

func TestClassifyNeverFlagsCommonAdverbs(t *testing.T) {
	lex := testLexicon(t)
	proto := testPrototype(t, lex)

	// "Give it back": the head verb is as close to the prototype as
	// anything can be, but "back" is a common function word
	tokens := []types.Token{
		{Text: "Give", POS: types.POSVerb, Head: 0, LogProb: -9.0, Vector: []float32{0.9, 0.1, 0.0}},
		{Text: "it", POS: "PRON", Head: 0, LogProb: -4.5},
		{Text: "back", POS: types.POSAdverb, Head: 0, LogProb: -7.40},
	}

	clf := classifier.New(-9.0, proto, 0.5)
	decisions := clf.Classify(tokens)

	d := decisions[2]
	if d.Flagged {
		t.Fatalf("Expected back to never be flagged")
	}
	if d.Rule != classifier.RuleCommonWord {
		t.Errorf("Expected the rarity rule to decide, got %s", d.Rule)
	}
	if d.Rare {
		t.Errorf("Expected back to fail the rarity check")
	}
	if d.Head != "Give" {
		t.Errorf("Expected evidence to name the head, got %q", d.Head)
	}
}

func TestClassifyIgnoresAdverbsWithoutVerbalHead(t *testing.T) {
	lex := testLexicon(t)
	proto := testPrototype(t, lex)
	clf := classifier.New(-9.0, proto, 0.5)

	tokens := []types.Token{
		// Adverb modifying an adjective
		{Text: "remarkably", POS: types.POSAdverb, Head: 1, LogProb: -12.0},
		{Text: "quiet", POS: "ADJ", Head: 1, LogProb: -9.5},
		// Adverb that is its own head (a root)
		{Text: "quietly", POS: types.POSAdverb, Head: 2, LogProb: -11.07},
		// Adverb with a detached head
		{Text: "abjectly", POS: types.POSAdverb, Head: -1, LogProb: -14.0},
		// Adverb with an out-of-range head reference
		{Text: "meekly", POS: types.POSAdverb, Head: 99, LogProb: -13.0},
	}

	for i, d := range clf.Classify(tokens) {
		if d.Flagged {
			t.Errorf("Expected token %d (%s) not to be flagged", i, d.Token.Text)
		}
	}

	decisions := clf.Classify(tokens)
	for _, i := range []int{0, 2, 3, 4} {
		if decisions[i].Rule != classifier.RuleNoVerbHead {
			t.Errorf("Expected token %d to be settled by the head guard, got %s", i, decisions[i].Rule)
		}
	}
}

func TestClassifyAbsorbsMissingHeadVector(t *testing.T) {
	lex := testLexicon(t)
	proto := testPrototype(t, lex)
	clf := classifier.New(-9.0, proto, 0.5)

	tokens := []types.Token{
		{Text: "mumbled", POS: types.POSVerb, Head: 0, LogProb: -13.0}, // no vector
		{Text: "quietly", POS: types.POSAdverb, Head: 0, LogProb: -11.07},
	}

	decisions := clf.Classify(tokens)

	d := decisions[1]
	if d.Flagged {
		t.Fatalf("Expected quietly not to be flagged when its head has no vector")
	}
	if d.Rule != classifier.RuleHeadVectorMissing {
		t.Errorf("Expected the missing-vector rule to decide, got %s", d.Rule)
	}
	if !math.IsInf(d.Score, -1) {
		t.Errorf("Expected score -Inf, got %f", d.Score)
	}
}

func TestClassifyBelowTolerance(t *testing.T) {
	lex := testLexicon(t)
	proto := testPrototype(t, lex)
	clf := classifier.New(-9.0, proto, 0.99999)

	tokens := []types.Token{
		{Text: "confessed", POS: types.POSVerb, Head: 0, LogProb: -13.4, Vector: []float32{0.8, 0.2, 0.0}},
		{Text: "quietly", POS: types.POSAdverb, Head: 0, LogProb: -11.07},
	}

	d := clf.Classify(tokens)[1]
	if d.Flagged {
		t.Fatalf("Expected quietly to stay unflagged below tolerance")
	}
	if d.Rule != classifier.RuleSimilarity {
		t.Errorf("Expected the similarity rule to decide, got %s", d.Rule)
	}
	if d.Score <= 0 {
		t.Errorf("Expected a recorded positive score as evidence, got %f", d.Score)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	lex := testLexicon(t)
	proto := testPrototype(t, lex)
	clf := classifier.New(-9.0, proto, 0.9)

	tokens := classifier.Enrich(lex, []types.Token{
		{Text: "Give", POS: types.POSVerb, Head: 0, LogProb: -9.0},
		{Text: "it", POS: "PRON", Head: 0, LogProb: -4.5},
		{Text: "back", POS: types.POSAdverb, Head: 0},
		{Text: "he", POS: "PRON", Head: 4},
		{Text: "pleaded", POS: types.POSVerb, Head: 4},
		{Text: "abjectly", POS: types.POSAdverb, Head: 4},
	})

	first := clf.Classify(tokens)
	second := clf.Classify(tokens)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify is not idempotent over identical input")
	}

	flagged := classifier.Flagged(first)
	if len(flagged) != 1 || flagged[0].Token.Text != "abjectly" {
		t.Errorf("Expected exactly abjectly to be flagged, got %+v", flagged)
	}
}

func TestEnrich(t *testing.T) {
	lex := testLexicon(t)

	tokens := []types.Token{
		{Text: "Pleaded", POS: types.POSVerb, Head: 0},                 // lowercase fallback lookup
		{Text: "quietly", POS: types.POSAdverb, Head: 0},               // known, no vector in lexicon
		{Text: "florp", POS: types.POSAdverb, Head: 0},                 // unknown word
		{Text: "back", POS: types.POSAdverb, Head: 0, LogProb: -42.0},  // pipeline value wins
	}

	enriched := classifier.Enrich(lex, tokens)

	if enriched[0].LogProb != -13.2 || !enriched[0].HasVector() {
		t.Errorf("Expected Pleaded to be enriched via its lowercased form, got %+v", enriched[0])
	}
	if enriched[1].LogProb != -11.07 {
		t.Errorf("Expected quietly's log-probability to be filled in, got %f", enriched[1].LogProb)
	}
	if !math.IsInf(enriched[2].LogProb, -1) {
		t.Errorf("Expected an unknown word to become maximally rare, got %f", enriched[2].LogProb)
	}
	if enriched[3].LogProb != -42.0 {
		t.Errorf("Expected the pipeline's log-probability to be kept, got %f", enriched[3].LogProb)
	}

	// The input slice is untouched
	if tokens[0].LogProb != 0 || tokens[0].Vector != nil {
		t.Errorf("Expected Enrich to leave its input unmodified")
	}
}
