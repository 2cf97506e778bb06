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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	DBCreds struct {
		Host      string `yaml:"host"`
		Port      string `yaml:"port"`
		Username  string `yaml:"username"`
		Password  string `yaml:"password"`
		Database  string `yaml:"database"`
		LoadTable string `yaml:"load_table"`
	} `yaml:"db_creds"`
	Pipeline Pipeline `yaml:"pipeline"`
}

// Pipeline holds every tunable of the analysis run.
type Pipeline struct {
	DataPath       string  `yaml:"data_path"`
	TextColumn     string  `yaml:"text_column"`
	LabelColumn    string  `yaml:"label_column"`
	IDColumn       string  `yaml:"id_column"`
	SampleFraction float64 `yaml:"sample_fraction"`
	Seed           int64   `yaml:"seed"`

	Strategy    string   `yaml:"strategy"`
	NGramMin    int      `yaml:"ngram_min"`
	NGramMax    int      `yaml:"ngram_max"`
	MaxSparsity float64  `yaml:"max_sparsity"`
	NoiseTokens []string `yaml:"noise_tokens"`

	SplitRatio float64 `yaml:"split_ratio"`

	TopTerms           int `yaml:"top_terms"`
	MinPolarizingCount int `yaml:"min_polarizing_count"`

	EnableKNN     bool  `yaml:"enable_knn"`
	KNNFolds      int   `yaml:"knn_folds"`
	KNNRepeats    int   `yaml:"knn_repeats"`
	KNNCandidates []int `yaml:"knn_candidates"`

	SVMCost  float64 `yaml:"svm_cost"`
	SVMGamma float64 `yaml:"svm_gamma"`
}

// Strategy names accepted by the feature builder.
const (
	StrategyTidy = "tidy"
	StrategyFull = "full"
)

// LoadConfig loads the configuration from a YAML file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %v", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %v", err)
	}

	config.Pipeline.applyDefaults()
	if err := config.Pipeline.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (p *Pipeline) applyDefaults() {
	if p.TextColumn == "" {
		p.TextColumn = "review"
	}
	if p.LabelColumn == "" {
		p.LabelColumn = "sentiment"
	}
	if p.IDColumn == "" {
		p.IDColumn = "reviewid"
	}
	if p.SampleFraction == 0 {
		p.SampleFraction = 0.1
	}
	if p.Seed == 0 {
		p.Seed = 42
	}
	if p.Strategy == "" {
		p.Strategy = StrategyFull
	}
	if p.NGramMin == 0 {
		p.NGramMin = 1
	}
	if p.NGramMax == 0 {
		p.NGramMax = 3
	}
	if p.MaxSparsity == 0 {
		p.MaxSparsity = 0.994
	}
	if p.NoiseTokens == nil {
		p.NoiseTokens = []string{"br"}
	}
	if p.SplitRatio == 0 {
		p.SplitRatio = 0.75
	}
	if p.TopTerms == 0 {
		p.TopTerms = 20
	}
	if p.MinPolarizingCount == 0 {
		p.MinPolarizingCount = 50
	}
	if p.KNNFolds == 0 {
		p.KNNFolds = 5
	}
	if p.KNNRepeats == 0 {
		p.KNNRepeats = 2
	}
	if len(p.KNNCandidates) == 0 {
		p.KNNCandidates = []int{1, 3, 5, 7, 9}
	}
	if p.SVMCost == 0 {
		p.SVMCost = 1
	}
}

// Validate checks the pipeline parameters against their legal ranges.
func (p *Pipeline) Validate() error {
	if p.SampleFraction < 0 || p.SampleFraction > 1 {
		return fmt.Errorf("sample_fraction must be in [0,1], got %v", p.SampleFraction)
	}
	if p.Strategy != StrategyTidy && p.Strategy != StrategyFull {
		return fmt.Errorf("strategy must be %q or %q, got %q", StrategyTidy, StrategyFull, p.Strategy)
	}
	if p.NGramMin < 1 || p.NGramMax < p.NGramMin {
		return fmt.Errorf("ngram range must satisfy 1 <= min <= max, got [%d,%d]", p.NGramMin, p.NGramMax)
	}
	if p.MaxSparsity < 0 || p.MaxSparsity > 1 {
		return fmt.Errorf("max_sparsity must be in [0,1], got %v", p.MaxSparsity)
	}
	if p.SplitRatio <= 0 || p.SplitRatio >= 1 {
		return fmt.Errorf("split_ratio must be in (0,1), got %v", p.SplitRatio)
	}
	if p.TopTerms < 1 {
		return fmt.Errorf("top_terms must be positive, got %d", p.TopTerms)
	}
	if p.KNNFolds < 2 {
		return fmt.Errorf("knn_folds must be at least 2, got %d", p.KNNFolds)
	}
	if p.KNNRepeats < 1 {
		return fmt.Errorf("knn_repeats must be positive, got %d", p.KNNRepeats)
	}
	for _, k := range p.KNNCandidates {
		if k < 1 {
			return fmt.Errorf("knn candidate k must be positive, got %d", k)
		}
	}
	return nil
}
