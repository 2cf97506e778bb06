// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package features

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/TFMV/SentimentSuite/internal/corpus"
	"github.com/TFMV/SentimentSuite/internal/tokenize"
	"github.com/TFMV/SentimentSuite/pkg/tfidf"
)

// FullBuilder runs the aggressive preprocessing path: normalize every
// document, expand the n-gram range, weight with TF-IDF, then prune
// columns above the sparsity threshold.
type FullBuilder struct {
	NGramMin    int
	NGramMax    int
	MaxSparsity float64
	NoiseTokens []string
}

func (b *FullBuilder) Name() string { return "full" }

func (b *FullBuilder) Build(c *corpus.Corpus) (*Matrix, error) {
	if c.Len() == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	if b.NGramMin < 1 || b.NGramMax < b.NGramMin {
		return nil, fmt.Errorf("ngram range must satisfy 1 <= min <= max, got [%d,%d]", b.NGramMin, b.NGramMax)
	}

	docs := make([][]string, 0, c.Len())
	docIDs := make([]int, 0, c.Len())
	total := 0
	for _, doc := range c.Docs {
		words := strings.Fields(tokenize.Normalize(doc.Text, b.NoiseTokens))
		var grams []string
		tokenize.Span(words, b.NGramMin, b.NGramMax, func(g string) {
			grams = append(grams, g)
		})
		docs = append(docs, grams)
		docIDs = append(docIDs, doc.ID)
		total += len(grams)
	}
	if total == 0 {
		return nil, fmt.Errorf("normalization left no terms in any document")
	}

	vectorizer := tfidf.NewVectorizer()
	x := vectorizer.FitTransform(docs)

	m := &Matrix{X: x, Terms: vectorizer.Terms(), DocIDs: docIDs, DF: vectorizer.DocFreq()}
	pruned, err := Prune(m, b.MaxSparsity)
	if err != nil {
		return nil, err
	}
	log.Debugf("full strategy: %d terms before pruning, %d after (threshold %v)",
		len(m.Terms), len(pruned.Terms), b.MaxSparsity)
	return pruned, nil
}
