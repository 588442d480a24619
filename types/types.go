package types

// Embedding represents a vector embedding for a word or a semantic prototype
type Embedding struct {
	Vector []float32 `toml:"vector"` // The embedding vector
}

// Dim returns the dimensionality of the embedding, 0 when it carries no vector
func (e Embedding) Dim() int {
	return len(e.Vector)
}

// HasVector reports whether the embedding carries a vector
func (e Embedding) HasVector() bool {
	return len(e.Vector) > 0
}

// PartOfSpeech is a coarse grammatical category assigned by the external
// tagger. The set is small and closed; only the tags the classifier branches
// on are named here.
type PartOfSpeech string

const (
	// POSAdverb marks adverbs ("quietly", "back", "not")
	POSAdverb PartOfSpeech = "ADV"
	// POSVerb marks verbs ("pleaded", "Give")
	POSVerb PartOfSpeech = "VERB"
)

// Token is one tagged, parsed token as supplied by the external NLP pipeline.
// Tokens are read-only to this engine and live for one analyzed sentence.
type Token struct {
	Text    string       `toml:"text"`             // Surface text
	POS     PartOfSpeech `toml:"pos"`              // Coarse part-of-speech tag
	Head    int          `toml:"head"`             // Index of the syntactic head in the sentence; a root is its own head, -1 means detached
	LogProb float64      `toml:"logprob"`          // Corpus log-probability; more negative = rarer
	Vector  []float32    `toml:"vector,omitempty"` // Optional embedding vector
}

// HasVector reports whether the token carries an embedding vector
func (t Token) HasVector() bool {
	return len(t.Vector) > 0
}

// HasHead reports whether the token has a syntactic head other than itself.
// index is the token's own position in the sentence.
func (t Token) HasHead(index int) bool {
	return t.Head >= 0 && t.Head != index
}
