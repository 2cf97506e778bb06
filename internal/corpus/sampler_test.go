package corpus

import (
	"fmt"
	"math"
	"testing"
)

func syntheticCorpus(n int) *Corpus {
	c := &Corpus{Docs: make([]Document, 0, n)}
	for i := 1; i <= n; i++ {
		label := LabelPositive
		if i%2 == 0 {
			label = LabelNegative
		}
		c.Docs = append(c.Docs, Document{
			ID:    i,
			Text:  fmt.Sprintf("review number %d", i),
			Label: label,
			AuxID: fmt.Sprintf("r%d", i),
		})
	}
	return c
}

func TestSampleSize(t *testing.T) {
	tests := []struct {
		n        int
		fraction float64
		expected int
	}{
		{100, 0.1, 10},
		{100, 1.0, 100},
		{100, 0.0, 0},
		{5, 0.5, 3},
		{7, 0.33, 2},
		{0, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d_frac=%v", tt.n, tt.fraction), func(t *testing.T) {
			out, err := Sample(syntheticCorpus(tt.n), tt.fraction, 42)
			if err != nil {
				t.Fatalf("Sample() error = %v", err)
			}
			if out.Len() != tt.expected {
				t.Errorf("Sample() kept %d docs, want round(%d*%v) = %d", out.Len(), tt.n, tt.fraction, tt.expected)
			}
			if want := int(math.Round(tt.fraction * float64(tt.n))); tt.expected != want {
				t.Fatalf("test fixture disagrees with rounding: %d vs %d", tt.expected, want)
			}
		})
	}
}

func TestSampleDeterministic(t *testing.T) {
	c := syntheticCorpus(200)

	first, err := Sample(c, 0.25, 1234)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	second, err := Sample(c, 0.25, 1234)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("same seed produced different sizes: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Docs {
		if first.Docs[i].ID != second.Docs[i].ID {
			t.Fatalf("same seed produced different rows at %d: %d vs %d", i, first.Docs[i].ID, second.Docs[i].ID)
		}
	}
}

func TestSamplePreservesOrder(t *testing.T) {
	out, err := Sample(syntheticCorpus(100), 0.4, 9)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	for i := 1; i < len(out.Docs); i++ {
		if out.Docs[i-1].ID >= out.Docs[i].ID {
			t.Fatalf("documents out of order: %d before %d", out.Docs[i-1].ID, out.Docs[i].ID)
		}
	}
}

func TestSampleFullFraction(t *testing.T) {
	c := syntheticCorpus(10)
	out, err := Sample(c, 1.0, 5)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	for i := range c.Docs {
		if out.Docs[i].ID != c.Docs[i].ID {
			t.Fatalf("fraction 1 should keep every document in order")
		}
	}
}

func TestSampleBadFraction(t *testing.T) {
	for _, fraction := range []float64{-0.1, 1.1} {
		if _, err := Sample(syntheticCorpus(10), fraction, 1); err == nil {
			t.Errorf("Sample(%v) expected an error", fraction)
		}
	}
}
