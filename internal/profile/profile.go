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

package profile

import (
	"fmt"
	"math"
	"sort"

	"github.com/TFMV/SentimentSuite/internal/corpus"
	"github.com/TFMV/SentimentSuite/internal/tokenize"
)

// TokenStat aggregates one token across the corpus.
type TokenStat struct {
	Token    string
	Count    int
	Positive int
	Negative int
	LogRatio float64
}

// Profile holds per-token statistics for one n-gram size. Stats keeps
// first-seen order, so profiles over the same corpus are identical
// across runs.
type Profile struct {
	N     int
	Stats []TokenStat
}

// Stream calls fn once per (document id, label, token) occurrence for
// n-grams of size n. Tuples are produced lazily; calling Stream again
// restarts the sequence.
func Stream(c *corpus.Corpus, n int, fn func(id int, label, token string) error) error {
	if n < 1 {
		return fmt.Errorf("ngram size must be positive, got %d", n)
	}
	for _, doc := range c.Docs {
		words, err := tokenize.Unigrams(doc.Text)
		if err != nil {
			return fmt.Errorf("document %d: %v", doc.ID, err)
		}
		var innerErr error
		tokenize.NGrams(words, n, func(token string) {
			if innerErr != nil {
				return
			}
			innerErr = fn(doc.ID, doc.Label, token)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	return nil
}

// Build profiles every n-gram of size n: total count, occurrences in
// positive- and negative-labeled documents, and the
// log2(positive/negative) polarity ratio. A zero denominator yields
// +Inf, a zero numerator -Inf, zero over zero NaN; all three flow
// through untouched.
func Build(c *corpus.Corpus, n int) (*Profile, error) {
	index := make(map[string]int)
	p := &Profile{N: n}

	err := Stream(c, n, func(id int, label, token string) error {
		idx, ok := index[token]
		if !ok {
			idx = len(p.Stats)
			index[token] = idx
			p.Stats = append(p.Stats, TokenStat{Token: token})
		}
		stat := &p.Stats[idx]
		stat.Count++
		switch label {
		case corpus.LabelPositive:
			stat.Positive++
		case corpus.LabelNegative:
			stat.Negative++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range p.Stats {
		stat := &p.Stats[i]
		stat.LogRatio = math.Log2(float64(stat.Positive) / float64(stat.Negative))
	}
	return p, nil
}

// Top returns the k most frequent tokens, ties broken alphabetically.
func (p *Profile) Top(k int) []TokenStat {
	return p.byCount(k, true)
}

// Bottom returns the k least frequent tokens, ties broken
// alphabetically.
func (p *Profile) Bottom(k int) []TokenStat {
	return p.byCount(k, false)
}

func (p *Profile) byCount(k int, descending bool) []TokenStat {
	sorted := make([]TokenStat, len(p.Stats))
	copy(sorted, p.Stats)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			if descending {
				return sorted[i].Count > sorted[j].Count
			}
			return sorted[i].Count < sorted[j].Count
		}
		return sorted[i].Token < sorted[j].Token
	})
	if k < len(sorted) {
		sorted = sorted[:k]
	}
	return sorted
}

// Polarizing selects tokens with total count above minTotal and a
// nonzero, defined skew, split by direction and ranked by absolute
// log ratio, strongest first, at most k per side. ±Inf ratios rank
// above every finite ratio on their side. NaN ratios have no defined
// skew and are excluded.
func (p *Profile) Polarizing(minTotal, k int) (positive, negative []TokenStat) {
	for _, stat := range p.Stats {
		if stat.Count <= minTotal || math.IsNaN(stat.LogRatio) {
			continue
		}
		if stat.LogRatio > 0 {
			positive = append(positive, stat)
		} else if stat.LogRatio < 0 {
			negative = append(negative, stat)
		}
	}

	byAbs := func(s []TokenStat) func(i, j int) bool {
		return func(i, j int) bool {
			a, b := math.Abs(s[i].LogRatio), math.Abs(s[j].LogRatio)
			if a != b {
				return a > b
			}
			return s[i].Token < s[j].Token
		}
	}
	sort.Slice(positive, byAbs(positive))
	sort.Slice(negative, byAbs(negative))

	if len(positive) > k {
		positive = positive[:k]
	}
	if len(negative) > k {
		negative = negative[:k]
	}
	return positive, negative
}

// Vocabulary flattens polarizing selections into a deduplicated term
// list, positive side first.
func Vocabulary(positive, negative []TokenStat) []string {
	seen := make(map[string]bool, len(positive)+len(negative))
	terms := make([]string, 0, len(positive)+len(negative))
	for _, stat := range positive {
		if !seen[stat.Token] {
			seen[stat.Token] = true
			terms = append(terms, stat.Token)
		}
	}
	for _, stat := range negative {
		if !seen[stat.Token] {
			seen[stat.Token] = true
			terms = append(terms, stat.Token)
		}
	}
	return terms
}
