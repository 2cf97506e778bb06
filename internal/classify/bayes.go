package classify

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/filters"
	"github.com/sjwhitworth/golearn/naive"

	"github.com/TFMV/SentimentSuite/internal/split"
)

// Bayes wraps a Bernoulli naive Bayes model. The model reasons about
// term presence, so every feature runs through a binary conversion
// filter first and any positive weight collapses to 1.
type Bayes struct {
	filter *filters.BinaryConvertFilter
	model  *naive.BernoulliNBClassifier
}

func NewBayes() *Bayes { return &Bayes{} }

func (b *Bayes) Name() string { return "bayes" }

func (b *Bayes) Fit(train *split.Dataset) error {
	inst, err := split.Instances(train)
	if err != nil {
		return fmt.Errorf("bayes: %v", err)
	}

	filter := filters.NewBinaryConvertFilter()
	for _, attr := range base.NonClassAttributes(inst) {
		if err := filter.AddAttribute(attr); err != nil {
			return fmt.Errorf("bayes: failed to add attribute %s to filter: %v", attr.GetName(), err)
		}
	}
	if err := filter.Train(); err != nil {
		return fmt.Errorf("bayes: failed to train binary filter: %v", err)
	}

	model := naive.NewBernoulliNBClassifier()
	model.Fit(base.NewLazilyFilteredInstances(inst, filter))

	b.filter = filter
	b.model = model
	return nil
}

func (b *Bayes) Predict(d *split.Dataset) ([]string, error) {
	if b.model == nil {
		return nil, fmt.Errorf("bayes classifier is not fitted")
	}
	inst, err := split.Instances(d)
	if err != nil {
		return nil, fmt.Errorf("bayes: %v", err)
	}
	grid := b.model.Predict(base.NewLazilyFilteredInstances(inst, b.filter))
	return gridLabels(grid, d.Len()), nil
}
