package profile

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/montanaflynn/stats"

	"github.com/TFMV/SentimentSuite/internal/corpus"
	"github.com/TFMV/SentimentSuite/internal/tokenize"
)

// FrequencyRow is one line of the printable frequency table.
type FrequencyRow struct {
	Token string
	Count int
}

// FrequencyFrame returns the k most frequent tokens as a dataframe
// sorted by descending count. An empty profile yields an empty frame.
func (p *Profile) FrequencyFrame(k int) dataframe.DataFrame {
	top := p.Top(k)
	rows := make([]FrequencyRow, 0, len(top))
	for _, stat := range top {
		rows = append(rows, FrequencyRow{Token: stat.Token, Count: stat.Count})
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}
	}
	df := dataframe.LoadStructs(rows)
	return df.Arrange(dataframe.RevSort("Count"))
}

// PolarityRow is one line of the printable polarity table.
type PolarityRow struct {
	Token    string
	Count    int
	Positive int
	Negative int
	LogRatio float64
}

// PolarityFrame returns the top polarizing tokens of both sides as one
// dataframe, positive side first. When no token clears minTotal the
// frame is empty rather than an error.
func (p *Profile) PolarityFrame(minTotal, k int) dataframe.DataFrame {
	positive, negative := p.Polarizing(minTotal, k)
	rows := make([]PolarityRow, 0, len(positive)+len(negative))
	for _, stat := range positive {
		rows = append(rows, polarityRow(stat))
	}
	for _, stat := range negative {
		rows = append(rows, polarityRow(stat))
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}
	}
	return dataframe.LoadStructs(rows)
}

func polarityRow(stat TokenStat) PolarityRow {
	return PolarityRow{
		Token:    stat.Token,
		Count:    stat.Count,
		Positive: stat.Positive,
		Negative: stat.Negative,
		LogRatio: stat.LogRatio,
	}
}

// LengthSummary describes the document length distribution in tokens.
type LengthSummary struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Lengths summarizes document lengths across the corpus.
func Lengths(c *corpus.Corpus) (LengthSummary, error) {
	if c.Len() == 0 {
		return LengthSummary{}, fmt.Errorf("corpus is empty")
	}

	counts := make([]float64, 0, len(c.Docs))
	for _, doc := range c.Docs {
		words, err := tokenize.Unigrams(doc.Text)
		if err != nil {
			return LengthSummary{}, fmt.Errorf("document %d: %v", doc.ID, err)
		}
		counts = append(counts, float64(len(words)))
	}

	var summary LengthSummary
	var err error
	if summary.Mean, err = stats.Mean(counts); err != nil {
		return LengthSummary{}, fmt.Errorf("length mean: %v", err)
	}
	if summary.Median, err = stats.Median(counts); err != nil {
		return LengthSummary{}, fmt.Errorf("length median: %v", err)
	}
	if summary.StdDev, err = stats.StandardDeviation(counts); err != nil {
		return LengthSummary{}, fmt.Errorf("length stddev: %v", err)
	}
	if summary.Min, err = stats.Min(counts); err != nil {
		return LengthSummary{}, fmt.Errorf("length min: %v", err)
	}
	if summary.Max, err = stats.Max(counts); err != nil {
		return LengthSummary{}, fmt.Errorf("length max: %v", err)
	}
	return summary, nil
}
