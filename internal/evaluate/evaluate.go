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

package evaluate

import (
	"fmt"
	"math"

	"github.com/bsm/mlmetrics"
)

// Result holds the confusion counts and derived metrics for one
// classifier, measured against its own predictions. Degenerate ratios
// stay NaN instead of being coerced to zero, so a classifier that
// never predicts the positive class is visible as such.
type Result struct {
	Classifier string
	Positive   string

	TP, FP, TN, FN int

	Accuracy    float64
	Precision   float64
	Recall      float64
	F1          float64
	Sensitivity float64
	Specificity float64
}

func (r *Result) String() string {
	return fmt.Sprintf(
		"%s: accuracy=%.4f precision=%.4f recall=%.4f f1=%.4f sensitivity=%.4f specificity=%.4f (tp=%d fp=%d tn=%d fn=%d)",
		r.Classifier, r.Accuracy, r.Precision, r.Recall, r.F1, r.Sensitivity, r.Specificity,
		r.TP, r.FP, r.TN, r.FN)
}

// Evaluate scores predictions against the actual labels. Both slices
// must align row by row and contain only labels from classes.
func Evaluate(name string, actual, predicted []string, classes []string, positive string) (*Result, error) {
	if len(actual) == 0 {
		return nil, fmt.Errorf("nothing to evaluate")
	}
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("got %d predictions for %d documents", len(predicted), len(actual))
	}
	index := make(map[string]int, len(classes))
	for i, class := range classes {
		index[class] = i
	}
	if _, ok := index[positive]; !ok {
		return nil, fmt.Errorf("positive class %q not in classes %v", positive, classes)
	}

	cm := mlmetrics.NewConfusionMatrix()
	r := &Result{Classifier: name, Positive: positive}
	for i := range actual {
		actualIdx, ok := index[actual[i]]
		if !ok {
			return nil, fmt.Errorf("actual label %q at row %d not in classes %v", actual[i], i, classes)
		}
		predictedIdx, ok := index[predicted[i]]
		if !ok {
			return nil, fmt.Errorf("predicted label %q at row %d not in classes %v", predicted[i], i, classes)
		}
		cm.Observe(actualIdx, predictedIdx)

		switch {
		case actual[i] == positive && predicted[i] == positive:
			r.TP++
		case actual[i] != positive && predicted[i] == positive:
			r.FP++
		case actual[i] == positive && predicted[i] != positive:
			r.FN++
		default:
			r.TN++
		}
	}

	r.Accuracy = cm.Accuracy()
	r.Precision = ratio(r.TP, r.TP+r.FP)
	r.Recall = ratio(r.TP, r.TP+r.FN)
	r.Sensitivity = r.Recall
	r.Specificity = ratio(r.TN, r.TN+r.FP)
	if math.IsNaN(r.Precision) || math.IsNaN(r.Recall) || r.Precision+r.Recall == 0 {
		r.F1 = math.NaN()
	} else {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}
	return r, nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return math.NaN()
	}
	return float64(num) / float64(den)
}
