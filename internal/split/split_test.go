package split

import (
	"reflect"
	"strings"
	"testing"

	"github.com/james-bowman/sparse"

	"github.com/TFMV/SentimentSuite/internal/features"
)

// splitFixture builds an 8-document matrix where the first column of
// each row holds its document id, so subset rows can be checked
// against their source.
func splitFixture() (*features.Matrix, map[int]string) {
	dok := sparse.NewDOK(8, 3)
	labels := make(map[int]string, 8)
	ids := make([]int, 8)
	for i := 0; i < 8; i++ {
		ids[i] = i + 1
		dok.Set(i, 0, float64(i+1))
		if i%2 == 0 {
			dok.Set(i, 1, 2)
			labels[i+1] = "positive"
		} else {
			labels[i+1] = "negative"
		}
	}
	m := &features.Matrix{
		X:      dok.ToCSR(),
		Terms:  []string{"alpha", "beta", "gamma"},
		DocIDs: ids,
		DF:     []int{8, 4, 0},
	}
	return m, labels
}

func TestPartitionSizesAndCoverage(t *testing.T) {
	m, labels := splitFixture()
	s, err := Partition(m, labels, 0.75, 42)
	if err != nil {
		t.Fatalf("Partition() error: %v", err)
	}
	if s.Train.Len() != 6 || s.Test.Len() != 2 {
		t.Fatalf("Partition() sizes = %d/%d, want 6/2", s.Train.Len(), s.Test.Len())
	}

	seen := make(map[int]int)
	for _, id := range s.Train.IDs {
		seen[id]++
	}
	for _, id := range s.Test.IDs {
		seen[id]++
	}
	if len(seen) != 8 {
		t.Errorf("partitions cover %d documents, want 8", len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("document %d appears %d times across partitions", id, count)
		}
	}
}

func TestPartitionRowsStayAligned(t *testing.T) {
	m, labels := splitFixture()
	s, err := Partition(m, labels, 0.75, 42)
	if err != nil {
		t.Fatalf("Partition() error: %v", err)
	}

	for _, d := range []*Dataset{s.Train, s.Test} {
		for i, id := range d.IDs {
			if d.Y[i] != labels[id] {
				t.Errorf("row %d label = %s, want %s for document %d", i, d.Y[i], labels[id], id)
			}
			if v := d.X.At(i, 0); v != float64(id) {
				t.Errorf("row %d feature = %v, want %v for document %d", i, v, float64(id), id)
			}
		}
		for i := 1; i < len(d.IDs); i++ {
			if d.IDs[i] <= d.IDs[i-1] {
				t.Errorf("IDs %v not in ascending order", d.IDs)
			}
		}
	}
}

func TestPartitionDeterministic(t *testing.T) {
	m, labels := splitFixture()
	first, err := Partition(m, labels, 0.75, 7)
	if err != nil {
		t.Fatalf("Partition() error: %v", err)
	}
	second, err := Partition(m, labels, 0.75, 7)
	if err != nil {
		t.Fatalf("Partition() error: %v", err)
	}
	if !reflect.DeepEqual(first.Train.IDs, second.Train.IDs) {
		t.Errorf("train IDs differ across runs: %v vs %v", first.Train.IDs, second.Train.IDs)
	}
	if !reflect.DeepEqual(first.Test.IDs, second.Test.IDs) {
		t.Errorf("test IDs differ across runs: %v vs %v", first.Test.IDs, second.Test.IDs)
	}
}

func TestPartitionSharesSortedClasses(t *testing.T) {
	m, labels := splitFixture()
	s, err := Partition(m, labels, 0.75, 42)
	if err != nil {
		t.Fatalf("Partition() error: %v", err)
	}
	expected := []string{"negative", "positive"}
	if !reflect.DeepEqual(s.Train.Classes, expected) {
		t.Errorf("train classes = %v, want %v", s.Train.Classes, expected)
	}
	if !reflect.DeepEqual(s.Test.Classes, expected) {
		t.Errorf("test classes = %v, want %v", s.Test.Classes, expected)
	}
}

func TestPartitionMissingLabel(t *testing.T) {
	m, labels := splitFixture()
	delete(labels, 7)
	_, err := Partition(m, labels, 0.75, 42)
	if err == nil {
		t.Fatal("Partition() expected error for unlabeled document")
	}
	if !strings.Contains(err.Error(), "7") {
		t.Errorf("Partition() error = %v, want it to name document 7", err)
	}
}

func TestPartitionValidation(t *testing.T) {
	m, labels := splitFixture()
	for _, ratio := range []float64{0, 1, -0.5, 1.5} {
		if _, err := Partition(m, labels, ratio, 42); err == nil {
			t.Errorf("Partition(ratio=%v) expected error", ratio)
		}
	}

	dok := sparse.NewDOK(2, 1)
	dok.Set(0, 0, 1)
	tiny := &features.Matrix{X: dok.ToCSR(), Terms: []string{"alpha"}, DocIDs: []int{1, 2}, DF: []int{1}}
	tinyLabels := map[int]string{1: "positive", 2: "negative"}
	if _, err := Partition(tiny, tinyLabels, 0.75, 42); err == nil {
		t.Error("Partition() expected error when rounding empties the test set")
	}

	single := &features.Matrix{X: dok.ToCSR(), Terms: []string{"alpha"}, DocIDs: []int{1}, DF: []int{1}}
	if _, err := Partition(single, tinyLabels, 0.5, 42); err == nil {
		t.Error("Partition() expected error for a single document")
	}
}
