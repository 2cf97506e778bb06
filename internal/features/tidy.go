package features

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/TFMV/SentimentSuite/internal/corpus"
	"github.com/TFMV/SentimentSuite/internal/tokenize"
)

// TidyBuilder pivots per-document occurrence counts of a fixed
// vocabulary into the feature matrix. The vocabulary comes from the
// most polarizing tokens of the profiling stage.
type TidyBuilder struct {
	Vocabulary []string
}

func (b *TidyBuilder) Name() string { return "tidy" }

func (b *TidyBuilder) Build(c *corpus.Corpus) (*Matrix, error) {
	if c.Len() == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	if len(b.Vocabulary) == 0 {
		return nil, fmt.Errorf("tidy strategy needs a non-empty vocabulary")
	}

	index := make(map[string]int, len(b.Vocabulary))
	for j, term := range b.Vocabulary {
		index[term] = j
	}

	dok := sparse.NewDOK(c.Len(), len(b.Vocabulary))
	df := make([]int, len(b.Vocabulary))
	docIDs := make([]int, 0, c.Len())

	for i, doc := range c.Docs {
		docIDs = append(docIDs, doc.ID)
		words, err := tokenize.Unigrams(doc.Text)
		if err != nil {
			return nil, fmt.Errorf("document %d: %v", doc.ID, err)
		}
		counts := make(map[int]int)
		for _, w := range words {
			if j, ok := index[w]; ok {
				counts[j]++
			}
		}
		for j, count := range counts {
			dok.Set(i, j, float64(count))
			df[j]++
		}
	}

	terms := append([]string(nil), b.Vocabulary...)
	return &Matrix{X: dok.ToCSR(), Terms: terms, DocIDs: docIDs, DF: df}, nil
}
