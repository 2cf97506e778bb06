package classify

import (
	"fmt"

	"github.com/jonreiter/govader"

	"github.com/TFMV/SentimentSuite/internal/corpus"
	"github.com/TFMV/SentimentSuite/internal/split"
)

// Scores at or above this compound value count as positive; the
// neutral band folds into negative so the output stays binary.
const vaderPositiveCutoff = 0.05

// Vader scores raw review text with a sentiment lexicon instead of
// learning from the feature matrix. It rides along as a no-training
// baseline the fitted models have to beat.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
	texts    map[int]string
}

func NewVader(texts map[int]string) *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer(), texts: texts}
}

func (v *Vader) Name() string { return "vader" }

func (v *Vader) Fit(train *split.Dataset) error { return nil }

func (v *Vader) Predict(d *split.Dataset) ([]string, error) {
	labels := make([]string, d.Len())
	for i, id := range d.IDs {
		text, ok := v.texts[id]
		if !ok {
			return nil, fmt.Errorf("vader: document %d has no source text", id)
		}
		if v.analyzer.PolarityScores(text).Compound >= vaderPositiveCutoff {
			labels[i] = corpus.LabelPositive
		} else {
			labels[i] = corpus.LabelNegative
		}
	}
	return labels, nil
}
