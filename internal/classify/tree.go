package classify

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/filters"
	"github.com/sjwhitworth/golearn/trees"

	"github.com/TFMV/SentimentSuite/internal/split"
)

const (
	chiMergeSignificance = 0.999
	id3PruneSplit        = 0.6
)

// Tree wraps an ID3 decision tree. ID3 only splits on discrete
// attributes, so the float features pass through a Chi-Merge filter
// trained on the training side and reused verbatim on the test side.
type Tree struct {
	filter *filters.ChiMergeFilter
	model  *trees.ID3DecisionTree
}

func NewTree() *Tree { return &Tree{} }

func (t *Tree) Name() string { return "tree" }

func (t *Tree) Fit(train *split.Dataset) error {
	inst, err := split.Instances(train)
	if err != nil {
		return fmt.Errorf("tree: %v", err)
	}

	filter := filters.NewChiMergeFilter(inst, chiMergeSignificance)
	for _, attr := range base.NonClassFloatAttributes(inst) {
		if err := filter.AddAttribute(attr); err != nil {
			return fmt.Errorf("tree: failed to add attribute %s to filter: %v", attr.GetName(), err)
		}
	}
	if err := filter.Train(); err != nil {
		return fmt.Errorf("tree: failed to train discretization filter: %v", err)
	}

	model := trees.NewID3DecisionTree(id3PruneSplit)
	if err := model.Fit(base.NewLazilyFilteredInstances(inst, filter)); err != nil {
		return fmt.Errorf("tree: failed to fit: %v", err)
	}

	t.filter = filter
	t.model = model
	return nil
}

func (t *Tree) Predict(d *split.Dataset) ([]string, error) {
	if t.model == nil {
		return nil, fmt.Errorf("tree classifier is not fitted")
	}
	inst, err := split.Instances(d)
	if err != nil {
		return nil, fmt.Errorf("tree: %v", err)
	}
	grid, err := t.model.Predict(base.NewLazilyFilteredInstances(inst, t.filter))
	if err != nil {
		return nil, fmt.Errorf("tree: failed to predict: %v", err)
	}
	return gridLabels(grid, d.Len()), nil
}
