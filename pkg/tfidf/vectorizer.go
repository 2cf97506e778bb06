package tfidf

import (
	"math"

	"github.com/james-bowman/sparse"
)

// Vectorizer represents a TF-IDF vectorizer over pre-tokenized
// documents. Columns are assigned in first-seen term order, so a
// deterministic input ordering yields a deterministic matrix.
type Vectorizer struct {
	vocabulary map[string]int
	terms      []string
	df         []int
	idf        []float64
	docCount   int
}

// NewVectorizer creates a new Vectorizer
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		vocabulary: make(map[string]int),
	}
}

// Fit learns the vocabulary, per-term document frequency, and
// idf = log2(N/df). Every fitted term has df >= 1, so idf is finite
// and non-negative; a term present in every document gets idf 0.
func (v *Vectorizer) Fit(docs [][]string) {
	v.docCount = len(docs)

	for _, terms := range docs {
		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			idx, exists := v.vocabulary[term]
			if !exists {
				idx = len(v.terms)
				v.vocabulary[term] = idx
				v.terms = append(v.terms, term)
				v.df = append(v.df, 0)
			}
			if !seen[term] {
				v.df[idx]++
				seen[term] = true
			}
		}
	}

	v.idf = make([]float64, len(v.terms))
	for i, df := range v.df {
		v.idf[i] = math.Log2(float64(v.docCount) / float64(df))
	}
}

// Transform converts documents to a sparse document-by-term matrix of
// raw term count times idf, with no length normalization. Terms
// outside the fitted vocabulary are ignored, so transforming unseen
// documents never widens the matrix.
func (v *Vectorizer) Transform(docs [][]string) *sparse.CSR {
	dok := sparse.NewDOK(len(docs), len(v.terms))
	for i, terms := range docs {
		counts := make(map[int]int, len(terms))
		for _, term := range terms {
			if j, ok := v.vocabulary[term]; ok {
				counts[j]++
			}
		}
		for j, count := range counts {
			dok.Set(i, j, float64(count)*v.idf[j])
		}
	}
	return dok.ToCSR()
}

// FitTransform fits the vectorizer to the input documents and then transforms them
func (v *Vectorizer) FitTransform(docs [][]string) *sparse.CSR {
	v.Fit(docs)
	return v.Transform(docs)
}

// Terms returns the fitted vocabulary in column order.
func (v *Vectorizer) Terms() []string {
	return v.terms
}

// DocFreq returns the number of fitted documents each term appears in,
// indexed by column.
func (v *Vectorizer) DocFreq() []int {
	return v.df
}
