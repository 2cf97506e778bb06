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
	"bufio"
	"fmt"
	"math"
	"os"

	libSvm "github.com/ewalker544/libsvm-go"

	"github.com/TFMV/SentimentSuite/internal/split"
)

// SVM wraps a C-SVC support vector machine with an RBF kernel. The
// training rows go through a temporary file in the sparse libsvm
// format because the library only ingests problems from disk. Labels
// are encoded as class indices and predictions rounded back.
type SVM struct {
	cost  float64
	gamma float64

	model    *libSvm.Model
	classes  []string
	features int
}

// NewSVM builds the adapter. A gamma of zero means 1/#features, the
// libsvm default.
func NewSVM(cost, gamma float64) *SVM {
	return &SVM{cost: cost, gamma: gamma}
}

func (s *SVM) Name() string { return "svm" }

func (s *SVM) Fit(train *split.Dataset) error {
	if train.Len() == 0 {
		return fmt.Errorf("svm: training set is empty")
	}
	if len(train.Terms) == 0 {
		return fmt.Errorf("svm: training set has no terms")
	}

	path, err := writeProblemFile(train)
	if err != nil {
		return fmt.Errorf("svm: %v", err)
	}
	defer os.Remove(path)

	param := libSvm.NewParameter()
	param.C = s.cost
	param.QuietMode = true
	if s.gamma > 0 {
		param.Gamma = s.gamma
	} else {
		param.Gamma = 1 / float64(len(train.Terms))
	}

	problem, err := libSvm.NewProblem(path, param)
	if err != nil {
		return fmt.Errorf("svm: failed to load problem: %v", err)
	}
	model := libSvm.NewModel(param)
	if err := model.Train(problem); err != nil {
		return fmt.Errorf("svm: failed to train: %v", err)
	}

	s.model = model
	s.classes = train.Classes
	s.features = len(train.Terms)
	return nil
}

func (s *SVM) Predict(d *split.Dataset) ([]string, error) {
	if s.model == nil {
		return nil, fmt.Errorf("svm classifier is not fitted")
	}
	labels := make([]string, d.Len())
	for i := 0; i < d.Len(); i++ {
		x := make(map[int]float64)
		for j := 0; j < s.features && j < len(d.Terms); j++ {
			if v := d.X.At(i, j); v != 0 {
				x[j+1] = v
			}
		}
		idx := int(math.Round(s.model.Predict(x)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(s.classes) {
			idx = len(s.classes) - 1
		}
		labels[i] = s.classes[idx]
	}
	return labels, nil
}

// writeProblemFile renders the dataset as one "label index:value" line
// per document, with 1-based feature indices in ascending order.
func writeProblemFile(d *split.Dataset) (string, error) {
	classIndex := make(map[string]int, len(d.Classes))
	for i, class := range d.Classes {
		classIndex[class] = i
	}

	f, err := os.CreateTemp("", "sentimentsuite-*.svm")
	if err != nil {
		return "", fmt.Errorf("failed to create problem file: %v", err)
	}
	w := bufio.NewWriter(f)
	for i := 0; i < d.Len(); i++ {
		idx, ok := classIndex[d.Y[i]]
		if !ok {
			f.Close()
			os.Remove(f.Name())
			return "", fmt.Errorf("label %q not in classes %v", d.Y[i], d.Classes)
		}
		fmt.Fprintf(w, "%d", idx)
		for j := 0; j < len(d.Terms); j++ {
			if v := d.X.At(i, j); v != 0 {
				fmt.Fprintf(w, " %d:%g", j+1, v)
			}
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write problem file: %v", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close problem file: %v", err)
	}
	return f.Name(), nil
}
