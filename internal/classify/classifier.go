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
	log "github.com/sirupsen/logrus"
	"github.com/sjwhitworth/golearn/base"

	"github.com/TFMV/SentimentSuite/internal/split"
	"github.com/TFMV/SentimentSuite/pkg/config"
)

// Classifier is the contract every model adapter satisfies. Fit learns
// from the training side of a partition and Predict returns one label
// per row of the given dataset, aligned with its IDs.
type Classifier interface {
	Name() string
	Fit(train *split.Dataset) error
	Predict(d *split.Dataset) ([]string, error)
}

// Suite assembles the configured classifier lineup. KNN joins only
// when enabled because its repeated cross-validated search dominates
// the pipeline's runtime. The lexicon scorer joins when source texts
// are available.
func Suite(p config.Pipeline, texts map[int]string) []Classifier {
	suite := []Classifier{
		NewTree(),
		NewBayes(),
		NewSVM(p.SVMCost, p.SVMGamma),
	}
	if p.EnableKNN {
		suite = append(suite, NewKNN(p.KNNFolds, p.KNNRepeats, p.KNNCandidates, p.Seed))
	} else {
		log.Info("knn classifier disabled, skipping repeated cross-validated search")
	}
	if len(texts) > 0 {
		suite = append(suite, NewVader(texts))
	}
	return suite
}

func gridLabels(grid base.FixedDataGrid, n int) []string {
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = base.GetClass(grid, i)
	}
	return labels
}
