package features

import (
	"strings"
	"testing"

	"github.com/james-bowman/sparse"

	"github.com/TFMV/SentimentSuite/internal/corpus"
	"github.com/TFMV/SentimentSuite/internal/profile"
	"github.com/TFMV/SentimentSuite/pkg/config"
)

// pruneFixture builds a 4-document matrix over three terms with
// document frequencies 4, 2, and 1. The universal term carries zero
// weights in every cell, the way a zero-IDF column does.
func pruneFixture() *Matrix {
	dok := sparse.NewDOK(4, 3)
	dok.Set(0, 1, 1.5)
	dok.Set(1, 1, 2.5)
	dok.Set(2, 2, 3.0)
	return &Matrix{
		X:      dok.ToCSR(),
		Terms:  []string{"always", "often", "rare"},
		DocIDs: []int{1, 2, 3, 4},
		DF:     []int{4, 2, 1},
	}
}

func TestPruneThresholds(t *testing.T) {
	tests := []struct {
		name     string
		maxEmpty float64
		expected []string
	}{
		{"one removes nothing", 1.0, []string{"always", "often", "rare"}},
		{"above largest gap", 0.8, []string{"always", "often", "rare"}},
		{"middle", 0.6, []string{"always", "often"}},
		{"boundary is inclusive", 0.5, []string{"always", "often"}},
		{"zero keeps universal terms", 0.0, []string{"always"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pruned, err := Prune(pruneFixture(), tt.maxEmpty)
			if err != nil {
				t.Fatalf("Prune(%v) error: %v", tt.maxEmpty, err)
			}
			if strings.Join(pruned.Terms, " ") != strings.Join(tt.expected, " ") {
				t.Errorf("Prune(%v) terms = %v, want %v", tt.maxEmpty, pruned.Terms, tt.expected)
			}
			_, cols := pruned.X.Dims()
			if cols != len(tt.expected) {
				t.Errorf("Prune(%v) cols = %d, want %d", tt.maxEmpty, cols, len(tt.expected))
			}
		})
	}
}

// A term present in every document has IDF zero, so its column holds
// no nonzero cells. Pruning must still keep it because presence, not
// weight, decides sparsity.
func TestPruneKeepsZeroWeightUniversalColumn(t *testing.T) {
	pruned, err := Prune(pruneFixture(), 0.0)
	if err != nil {
		t.Fatalf("Prune(0) error: %v", err)
	}
	if len(pruned.Terms) != 1 || pruned.Terms[0] != "always" {
		t.Fatalf("Prune(0) terms = %v, want [always]", pruned.Terms)
	}
	rows, cols := pruned.X.Dims()
	if rows != 4 || cols != 1 {
		t.Errorf("Prune(0) dims = %dx%d, want 4x1", rows, cols)
	}
	for i := 0; i < rows; i++ {
		if v := pruned.X.At(i, 0); v != 0 {
			t.Errorf("Prune(0) cell (%d,0) = %v, want 0", i, v)
		}
	}
	if pruned.DF[0] != 4 {
		t.Errorf("Prune(0) DF = %v, want [4]", pruned.DF)
	}
}

func TestPruneRemapsWeights(t *testing.T) {
	pruned, err := Prune(pruneFixture(), 0.6)
	if err != nil {
		t.Fatalf("Prune(0.6) error: %v", err)
	}
	if v := pruned.X.At(0, 1); v != 1.5 {
		t.Errorf("cell (0,often) = %v, want 1.5", v)
	}
	if v := pruned.X.At(1, 1); v != 2.5 {
		t.Errorf("cell (1,often) = %v, want 2.5", v)
	}
	if len(pruned.DocIDs) != 4 {
		t.Errorf("DocIDs = %v, want all four documents", pruned.DocIDs)
	}
}

func TestPruneErrors(t *testing.T) {
	if _, err := Prune(pruneFixture(), -0.1); err == nil {
		t.Error("Prune(-0.1) expected threshold error")
	}
	if _, err := Prune(pruneFixture(), 1.1); err == nil {
		t.Error("Prune(1.1) expected threshold error")
	}

	dok := sparse.NewDOK(2, 1)
	dok.Set(0, 0, 1)
	sparseOnly := &Matrix{X: dok.ToCSR(), Terms: []string{"rare"}, DocIDs: []int{1, 2}, DF: []int{1}}
	if _, err := Prune(sparseOnly, 0.0); err == nil {
		t.Error("expected error when pruning removes every term")
	}

	empty := &Matrix{Terms: []string{"a"}, DF: []int{0}}
	if _, err := Prune(empty, 0.5); err == nil {
		t.Error("expected error for matrix with no documents")
	}
}

func TestNewBuilderSelectsStrategy(t *testing.T) {
	c := &corpus.Corpus{Docs: []corpus.Document{
		{ID: 1, Text: "great great great film", Label: corpus.LabelPositive},
		{ID: 2, Text: "bad bad film", Label: corpus.LabelNegative},
	}}
	prof, err := profile.Build(c, 1)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	p := config.Pipeline{Strategy: config.StrategyTidy, TopTerms: 5, MinPolarizingCount: 0}
	builder, err := NewBuilder(p, prof)
	if err != nil {
		t.Fatalf("NewBuilder(tidy) error: %v", err)
	}
	tidy, ok := builder.(*TidyBuilder)
	if !ok {
		t.Fatalf("NewBuilder(tidy) = %T, want *TidyBuilder", builder)
	}
	if strings.Join(tidy.Vocabulary, " ") != "great bad" {
		t.Errorf("tidy vocabulary = %v, want [great bad]", tidy.Vocabulary)
	}

	p = config.Pipeline{Strategy: config.StrategyFull, NGramMin: 1, NGramMax: 3, MaxSparsity: 0.9, NoiseTokens: []string{"br"}}
	builder, err = NewBuilder(p, nil)
	if err != nil {
		t.Fatalf("NewBuilder(full) error: %v", err)
	}
	full, ok := builder.(*FullBuilder)
	if !ok {
		t.Fatalf("NewBuilder(full) = %T, want *FullBuilder", builder)
	}
	if full.NGramMax != 3 || full.MaxSparsity != 0.9 {
		t.Errorf("full builder = %+v, want ngram max 3 and sparsity 0.9", full)
	}

	if _, err := NewBuilder(config.Pipeline{Strategy: "pca"}, nil); err == nil {
		t.Error("NewBuilder(pca) expected unknown strategy error")
	}
	if _, err := NewBuilder(config.Pipeline{Strategy: config.StrategyTidy}, nil); err == nil {
		t.Error("NewBuilder(tidy, nil profile) expected error")
	}
}
