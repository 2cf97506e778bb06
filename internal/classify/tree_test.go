package classify

import (
	"testing"
)

func TestTreeFitPredict(t *testing.T) {
	train := trainFixture()
	tree := NewTree()
	if err := tree.Fit(train); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}
	labels, err := tree.Predict(train)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	assertLabelsInClasses(t, labels, train)
}

func TestTreePredictBeforeFit(t *testing.T) {
	tree := NewTree()
	if _, err := tree.Predict(trainFixture()); err == nil {
		t.Error("Predict() before Fit() expected error")
	}
}
