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

	"github.com/james-bowman/sparse"

	"github.com/TFMV/SentimentSuite/internal/corpus"
	"github.com/TFMV/SentimentSuite/internal/profile"
	"github.com/TFMV/SentimentSuite/pkg/config"
)

// Matrix is a sparse document-by-term feature matrix. Zero cells mean
// the term is absent from the document. DF carries per-column document
// frequency, which drives sparsity pruning independently of the cell
// weights.
type Matrix struct {
	X      *sparse.CSR
	Terms  []string
	DocIDs []int
	DF     []int
}

// Builder turns a corpus into a feature matrix.
type Builder interface {
	Name() string
	Build(c *corpus.Corpus) (*Matrix, error)
}

// NewBuilder selects the configured feature-building strategy.
func NewBuilder(p config.Pipeline, prof *profile.Profile) (Builder, error) {
	switch p.Strategy {
	case config.StrategyTidy:
		if prof == nil {
			return nil, fmt.Errorf("tidy strategy needs a token profile")
		}
		positive, negative := prof.Polarizing(p.MinPolarizingCount, p.TopTerms)
		vocabulary := profile.Vocabulary(positive, negative)
		return &TidyBuilder{Vocabulary: vocabulary}, nil
	case config.StrategyFull:
		return &FullBuilder{
			NGramMin:    p.NGramMin,
			NGramMax:    p.NGramMax,
			MaxSparsity: p.MaxSparsity,
			NoiseTokens: p.NoiseTokens,
		}, nil
	default:
		return nil, fmt.Errorf("unknown feature strategy %q", p.Strategy)
	}
}

// Prune drops exactly the columns whose empty-cell fraction exceeds
// maxEmpty. A threshold of 1 removes nothing; 0 keeps only terms
// present in every document. Survivors keep their relative order.
// Pruning away the whole vocabulary is an error.
func Prune(m *Matrix, maxEmpty float64) (*Matrix, error) {
	if maxEmpty < 0 || maxEmpty > 1 {
		return nil, fmt.Errorf("sparsity threshold must be in [0,1], got %v", maxEmpty)
	}
	n := len(m.DocIDs)
	if n == 0 {
		return nil, fmt.Errorf("cannot prune an empty matrix")
	}

	keep := make([]int, 0, len(m.Terms))
	for j := range m.Terms {
		emptyFrac := 1 - float64(m.DF[j])/float64(n)
		if emptyFrac > maxEmpty {
			continue
		}
		keep = append(keep, j)
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("sparsity pruning at %v removed every term", maxEmpty)
	}
	if len(keep) == len(m.Terms) {
		return m, nil
	}

	remap := make(map[int]int, len(keep))
	terms := make([]string, len(keep))
	df := make([]int, len(keep))
	for newJ, oldJ := range keep {
		remap[oldJ] = newJ
		terms[newJ] = m.Terms[oldJ]
		df[newJ] = m.DF[oldJ]
	}

	dok := sparse.NewDOK(n, len(keep))
	m.X.DoNonZero(func(i, j int, v float64) {
		if newJ, ok := remap[j]; ok {
			dok.Set(i, newJ, v)
		}
	})

	return &Matrix{X: dok.ToCSR(), Terms: terms, DocIDs: m.DocIDs, DF: df}, nil
}
