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

package classify

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/james-bowman/sparse"
	log "github.com/sirupsen/logrus"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/knn"
	"gonum.org/v1/gonum/stat"

	"github.com/TFMV/SentimentSuite/internal/split"
)

// KNN wraps a k-nearest-neighbours classifier. The neighbourhood size
// is not guessed: Fit runs a seeded repeated k-fold search over the
// candidate list and keeps the k with the best mean fold accuracy,
// smaller k winning ties.
type KNN struct {
	folds      int
	repeats    int
	candidates []int
	seed       int64

	k     int
	model *knn.KNNClassifier
}

func NewKNN(folds, repeats int, candidates []int, seed int64) *KNN {
	return &KNN{folds: folds, repeats: repeats, candidates: candidates, seed: seed}
}

func (c *KNN) Name() string { return "knn" }

// K reports the neighbourhood size chosen by the search, zero before
// Fit.
func (c *KNN) K() int { return c.k }

func (c *KNN) Fit(train *split.Dataset) error {
	if c.folds < 2 {
		return fmt.Errorf("knn: need at least 2 folds, got %d", c.folds)
	}
	if c.repeats < 1 {
		return fmt.Errorf("knn: need at least 1 repeat, got %d", c.repeats)
	}
	if len(c.candidates) == 0 {
		return fmt.Errorf("knn: no candidate neighbourhood sizes")
	}
	if train.Len() < c.folds {
		return fmt.Errorf("knn: %d documents cannot fill %d folds", train.Len(), c.folds)
	}

	best, err := c.search(train)
	if err != nil {
		return err
	}

	inst, err := split.Instances(train)
	if err != nil {
		return fmt.Errorf("knn: %v", err)
	}
	model := knn.NewKnnClassifier("euclidean", "linear", best)
	model.Fit(inst)

	c.k = best
	c.model = model
	return nil
}

func (c *KNN) Predict(d *split.Dataset) ([]string, error) {
	if c.model == nil {
		return nil, fmt.Errorf("knn classifier is not fitted")
	}
	inst, err := split.Instances(d)
	if err != nil {
		return nil, fmt.Errorf("knn: %v", err)
	}
	grid, err := c.model.Predict(inst)
	if err != nil {
		return nil, fmt.Errorf("knn: failed to predict: %v", err)
	}
	return gridLabels(grid, d.Len()), nil
}

func (c *KNN) search(train *split.Dataset) (int, error) {
	rng := rand.New(rand.NewSource(c.seed))
	scores := make(map[int][]float64, len(c.candidates))

	for repeat := 0; repeat < c.repeats; repeat++ {
		perm := rng.Perm(train.Len())
		for fold := 0; fold < c.folds; fold++ {
			var holdRows, fitRows []int
			for i, row := range perm {
				if i%c.folds == fold {
					holdRows = append(holdRows, row)
				} else {
					fitRows = append(fitRows, row)
				}
			}
			sort.Ints(holdRows)
			sort.Ints(fitRows)

			fitSet := subsetRows(train, fitRows)
			holdSet := subsetRows(train, holdRows)
			fitInst, err := split.Instances(fitSet)
			if err != nil {
				return 0, fmt.Errorf("knn: %v", err)
			}
			holdInst, err := split.Instances(holdSet)
			if err != nil {
				return 0, fmt.Errorf("knn: %v", err)
			}

			for _, k := range c.candidates {
				if k < 1 || k > fitSet.Len() {
					continue
				}
				model := knn.NewKnnClassifier("euclidean", "linear", k)
				model.Fit(fitInst)
				grid, err := model.Predict(holdInst)
				if err != nil {
					return 0, fmt.Errorf("knn: fold prediction failed for k=%d: %v", k, err)
				}
				scores[k] = append(scores[k], foldAccuracy(grid, holdSet.Y))
			}
		}
	}

	ks := append([]int(nil), c.candidates...)
	sort.Ints(ks)
	best, bestMean := 0, -1.0
	for _, k := range ks {
		accs, ok := scores[k]
		if !ok {
			continue
		}
		mean := stat.Mean(accs, nil)
		sd := stat.StdDev(accs, nil)
		log.Infof("knn search: k=%d mean accuracy %.4f (sd %.4f over %d folds)", k, mean, sd, len(accs))
		if mean > bestMean {
			best, bestMean = k, mean
		}
	}
	if best == 0 {
		return 0, fmt.Errorf("knn: no candidate k fits %d training documents", train.Len())
	}
	log.Infof("knn search: selected k=%d with mean accuracy %.4f", best, bestMean)
	return best, nil
}

func subsetRows(d *split.Dataset, rows []int) *split.Dataset {
	dok := sparse.NewDOK(len(rows), len(d.Terms))
	y := make([]string, len(rows))
	ids := make([]int, len(rows))
	for newI, oldI := range rows {
		y[newI] = d.Y[oldI]
		ids[newI] = d.IDs[oldI]
		for j := range d.Terms {
			if v := d.X.At(oldI, j); v != 0 {
				dok.Set(newI, j, v)
			}
		}
	}
	return &split.Dataset{X: dok.ToCSR(), Y: y, IDs: ids, Terms: d.Terms, Classes: d.Classes}
}

func foldAccuracy(grid base.FixedDataGrid, actual []string) float64 {
	correct := 0
	for i, want := range actual {
		if base.GetClass(grid, i) == want {
			correct++
		}
	}
	return float64(correct) / float64(len(actual))
}
