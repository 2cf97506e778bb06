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

package split

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/james-bowman/sparse"

	"github.com/TFMV/SentimentSuite/internal/features"
)

// Dataset is one side of a train/test partition. Y and IDs align row
// by row with X; Classes is shared across both sides so downstream
// label encodings agree.
type Dataset struct {
	X       *sparse.CSR
	Y       []string
	IDs     []int
	Terms   []string
	Classes []string
}

func (d *Dataset) Len() int { return len(d.IDs) }

// Split holds both sides of a seeded partition.
type Split struct {
	Train *Dataset
	Test  *Dataset
}

// Partition joins feature rows with their labels and cuts them into
// train and test sets of round(ratio*n) and the remainder. The join
// fails loudly when a document has no label. Rows keep their original
// order within each side.
func Partition(m *features.Matrix, labels map[int]string, ratio float64, seed int64) (*Split, error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, fmt.Errorf("split ratio must be in (0,1), got %v", ratio)
	}
	n := len(m.DocIDs)
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 documents to split, got %d", n)
	}
	if len(m.Terms) == 0 {
		return nil, fmt.Errorf("feature matrix has no terms")
	}

	y := make([]string, n)
	classSet := make(map[string]bool)
	for i, id := range m.DocIDs {
		label, ok := labels[id]
		if !ok {
			return nil, fmt.Errorf("document %d has no sentiment label", id)
		}
		y[i] = label
		classSet[label] = true
	}
	classes := make([]string, 0, len(classSet))
	for class := range classSet {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	size := int(math.Round(ratio * float64(n)))
	if size == 0 || size == n {
		return nil, fmt.Errorf("ratio %v leaves an empty partition for %d documents", ratio, n)
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	trainRows := append([]int(nil), perm[:size]...)
	testRows := append([]int(nil), perm[size:]...)
	sort.Ints(trainRows)
	sort.Ints(testRows)

	return &Split{
		Train: subset(m, trainRows, y, classes),
		Test:  subset(m, testRows, y, classes),
	}, nil
}

func subset(m *features.Matrix, rows []int, y []string, classes []string) *Dataset {
	rowMap := make(map[int]int, len(rows))
	ids := make([]int, len(rows))
	labels := make([]string, len(rows))
	for newI, oldI := range rows {
		rowMap[oldI] = newI
		ids[newI] = m.DocIDs[oldI]
		labels[newI] = y[oldI]
	}

	dok := sparse.NewDOK(len(rows), len(m.Terms))
	m.X.DoNonZero(func(i, j int, v float64) {
		if newI, ok := rowMap[i]; ok {
			dok.Set(newI, j, v)
		}
	})

	return &Dataset{
		X:       dok.ToCSR(),
		Y:       labels,
		IDs:     ids,
		Terms:   m.Terms,
		Classes: classes,
	}
}
