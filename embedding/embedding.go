package embedding

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/jeffrydegrande/quietly/lexicon"
	"github.com/jeffrydegrande/quietly/types"
	"github.com/sashabaranov/go-openai"
)

// DegenerateVectorError reports a zero-norm vector in a similarity
// computation, where cosine similarity is undefined
type DegenerateVectorError struct {
	Word string // The word whose vector is degenerate, empty for an anonymous query vector
}

func (e *DegenerateVectorError) Error() string {
	if e.Word == "" {
		return "cosine similarity undefined for zero-norm vector"
	}
	return fmt.Sprintf("cosine similarity undefined for zero-norm vector of %q", e.Word)
}

// CosineSimilarity computes dot(a,b) / (|a|*|b|), in [-1, 1]. It fails with
// DegenerateVectorError when either vector has zero norm rather than
// returning NaN.
func CosineSimilarity(a, b types.Embedding) (float64, error) {
	if a.Dim() != b.Dim() {
		return 0, fmt.Errorf("vector dimensions differ: %d vs %d", a.Dim(), b.Dim())
	}

	var dot, normA, normB float64
	for i := 0; i < len(a.Vector); i++ {
		av := float64(a.Vector[i])
		bv := float64(b.Vector[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0, &DegenerateVectorError{}
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Similarity is the pairwise convenience form: the cosine similarity between
// the lexicon vectors of two words, without ranking the full vocabulary.
func Similarity(lex *lexicon.Lexicon, wordA, wordB string) (float64, error) {
	a, err := vectorFor(lex, wordA)
	if err != nil {
		return 0, err
	}
	b, err := vectorFor(lex, wordB)
	if err != nil {
		return 0, err
	}

	score, err := CosineSimilarity(a, b)
	if err != nil {
		return 0, fmt.Errorf("comparing %q and %q: %w", wordA, wordB, err)
	}
	return score, nil
}

func vectorFor(lex *lexicon.Lexicon, word string) (types.Embedding, error) {
	entry, err := lex.Lookup(word)
	if err != nil {
		return types.Embedding{}, err
	}
	if !entry.HasVector() {
		return types.Embedding{}, &MissingVectorError{Word: word}
	}
	return entry.Embedding(), nil
}

// OpenAIClient represents a client for the OpenAI embeddings API, used to
// fetch vectors for seed words the external pipeline's tables do not cover
type OpenAIClient struct {
	Client *openai.Client
}

// NewOpenAIClient creates a new OpenAI client with the provided API key
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		Client: openai.NewClient(apiKey),
	}
}

// GetEmbedding calculates an embedding for the given text using OpenAI's API
func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (types.Embedding, error) {
	resp, err := c.Client.CreateEmbeddings(
		ctx,
		openai.EmbeddingRequest{
			Input: []string{text},
			Model: openai.AdaEmbeddingV2,
		},
	)
	if err != nil {
		return types.Embedding{}, fmt.Errorf("error getting embedding: %w", err)
	}

	if len(resp.Data) == 0 {
		return types.Embedding{}, fmt.Errorf("no embedding data returned")
	}

	// Convert from []float64 to []float32 to save memory
	vector := make([]float32, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vector[i] = float32(v)
	}

	return types.Embedding{Vector: vector}, nil
}

// GetAPIKey retrieves the OpenAI API key from environment variable
func GetAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}
