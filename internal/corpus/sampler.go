package corpus

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Sample returns a new corpus holding a seeded random fraction of the
// documents. Selected documents keep their original order, so the same
// seed and fraction always reproduce the same corpus.
func Sample(c *Corpus, fraction float64, seed int64) (*Corpus, error) {
	if fraction < 0 || fraction > 1 {
		return nil, fmt.Errorf("sample fraction must be in [0,1], got %v", fraction)
	}

	n := len(c.Docs)
	keep := int(math.Round(fraction * float64(n)))

	rng := rand.New(rand.NewSource(seed))
	indices := rng.Perm(n)[:keep]
	sort.Ints(indices)

	out := &Corpus{Docs: make([]Document, 0, keep)}
	for _, idx := range indices {
		out.Docs = append(out.Docs, c.Docs[idx])
	}
	return out, nil
}
