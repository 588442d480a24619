package embedding_test

import (
	"errors"
	"testing"

	"github.com/jeffrydegrande/quietly/embedding"
	"github.com/jeffrydegrande/quietly/lexicon"
)

func protoLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()

	lex, err := lexicon.Load(
		map[string]float64{
			"pleaded":   -13.0,
			"confessed": -13.4,
			"begged":    -13.5,
			"back":      -7.4,
		},
		map[string][]float32{
			"pleaded":   {1.0, 0.0, 0.0},
			"confessed": {0.0, 1.0, 0.0},
			"begged":    {0.5, 0.5, 0.0},
		},
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return lex
}

func TestBuildPrototype(t *testing.T) {
	lex := protoLexicon(t)

	proto, err := embedding.BuildPrototype(lex, []string{"pleaded", "confessed", "begged"})
	if err != nil {
		t.Fatalf("BuildPrototype() error = %v", err)
	}

	if proto.Dim() != lex.Dim() {
		t.Errorf("Expected prototype dimension %d, got %d", lex.Dim(), proto.Dim())
	}

	want := []float32{0.5, 0.5, 0.0}
	for i, v := range proto.Vector {
		if v != want[i] {
			t.Errorf("Prototype[%d] = %f, want %f", i, v, want[i])
		}
	}
}

func TestBuildPrototypeOrderInvariant(t *testing.T) {
	lex := protoLexicon(t)

	a, err := embedding.BuildPrototype(lex, []string{"pleaded", "confessed", "begged"})
	if err != nil {
		t.Fatalf("BuildPrototype() error = %v", err)
	}
	b, err := embedding.BuildPrototype(lex, []string{"begged", "pleaded", "confessed"})
	if err != nil {
		t.Fatalf("BuildPrototype() error = %v", err)
	}

	for i := range a.Vector {
		if a.Vector[i] != b.Vector[i] {
			t.Errorf("Prototype depends on seed order at component %d: %f vs %f", i, a.Vector[i], b.Vector[i])
		}
	}
}

func TestBuildPrototypeEmptySeedList(t *testing.T) {
	lex := protoLexicon(t)

	_, err := embedding.BuildPrototype(lex, nil)
	if !errors.Is(err, embedding.ErrEmptySeedList) {
		t.Errorf("Expected ErrEmptySeedList, got %v", err)
	}
}

func TestBuildPrototypeMissingVector(t *testing.T) {
	lex := protoLexicon(t)

	// "back" has a probability but no vector; "florp" is absent entirely.
	// Both must fail naming the word.
	for _, word := range []string{"back", "florp"} {
		_, err := embedding.BuildPrototype(lex, []string{"pleaded", word})
		var missing *embedding.MissingVectorError
		if !errors.As(err, &missing) {
			t.Fatalf("Expected a MissingVectorError for %q, got %T: %v", word, err, err)
		}
		if missing.Word != word {
			t.Errorf("Expected the error to name %q, got %q", word, missing.Word)
		}
	}
}
