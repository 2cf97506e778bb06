package classify

import (
	"testing"
)

func TestBayesSeparatesDistinctiveTerms(t *testing.T) {
	train := trainFixture()
	bayes := NewBayes()
	if err := bayes.Fit(train); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}
	labels, err := bayes.Predict(train)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	assertLabelsInClasses(t, labels, train)
	for i, want := range train.Y {
		if labels[i] != want {
			t.Errorf("prediction for document %d = %s, want %s", train.IDs[i], labels[i], want)
		}
	}
}

func TestBayesPredictBeforeFit(t *testing.T) {
	bayes := NewBayes()
	if _, err := bayes.Predict(trainFixture()); err == nil {
		t.Error("Predict() before Fit() expected error")
	}
}
