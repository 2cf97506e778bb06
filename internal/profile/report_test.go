package profile

import (
	"testing"
)

func TestFrequencyFrame(t *testing.T) {
	p, err := Build(toyCorpus(), 1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	freq := p.FrequencyFrame(3)
	if freq.Err != nil {
		t.Fatalf("FrequencyFrame() error = %v", freq.Err)
	}
	if freq.Nrow() != 3 {
		t.Fatalf("FrequencyFrame() rows = %d, want 3", freq.Nrow())
	}
	counts := freq.Col("Count").Float()
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[i-1] {
			t.Errorf("counts not descending: %v", counts)
		}
	}
	if counts[0] != 2 || counts[len(counts)-1] != 1 {
		t.Errorf("counts = %v, want 2 first and 1 last", counts)
	}
}

func TestFrequencyFrameEmptyProfile(t *testing.T) {
	p := &Profile{}
	freq := p.FrequencyFrame(5)
	if freq.Err != nil {
		t.Fatalf("FrequencyFrame() on empty profile error = %v", freq.Err)
	}
	if freq.Nrow() != 0 {
		t.Errorf("FrequencyFrame() rows = %d, want 0", freq.Nrow())
	}
}

func TestPolarityFrame(t *testing.T) {
	p, err := Build(toyCorpus(), 1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	polarity := p.PolarityFrame(1, 5)
	if polarity.Err != nil {
		t.Fatalf("PolarityFrame() error = %v", polarity.Err)
	}
	if polarity.Nrow() != 1 {
		t.Fatalf("PolarityFrame() rows = %d, want 1", polarity.Nrow())
	}
	if tokens := polarity.Col("Token").Records(); tokens[0] != "great" {
		t.Errorf("PolarityFrame() token = %q, want great", tokens[0])
	}
}

func TestPolarityFrameNoQualifyingTokens(t *testing.T) {
	p, err := Build(toyCorpus(), 1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	polarity := p.PolarityFrame(100, 5)
	if polarity.Err != nil {
		t.Fatalf("PolarityFrame() above threshold error = %v", polarity.Err)
	}
	if polarity.Nrow() != 0 {
		t.Errorf("PolarityFrame() rows = %d, want 0", polarity.Nrow())
	}
}
