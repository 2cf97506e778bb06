package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.psv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing data file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeDataFile(t,
		"review|sentiment|reviewid\n"+
			"a fine movie, 10/10|positive|r100\n"+
			"dull and \"overlong\"|negative|r100\n"+
			"POSITIVE surprise|Positive|r101\n")

	c, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Load() returned %d docs, want 3", c.Len())
	}

	for i, doc := range c.Docs {
		if doc.ID != i+1 {
			t.Errorf("doc %d has surrogate id %d, want %d", i, doc.ID, i+1)
		}
	}

	if got := c.Docs[1].Text; got != `dull and "overlong"` {
		t.Errorf("quote not read literally: got %q", got)
	}
	if got := c.Docs[2].Label; got != LabelPositive {
		t.Errorf("label not lowercased: got %q", got)
	}
	if got := c.Docs[0].AuxID; got != "r100" {
		t.Errorf("aux id = %q, want r100", got)
	}
	if c.Docs[0].AuxID != c.Docs[1].AuxID {
		t.Errorf("aux ids should be allowed to repeat")
	}
}

func TestLoadColumnResolution(t *testing.T) {
	path := writeDataFile(t,
		"ReviewID|Sentiment|Review\n"+
			"r1|negative|nope\n")

	c, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Docs[0].Text != "nope" || c.Docs[0].AuxID != "r1" {
		t.Errorf("columns resolved by position, not by name: %+v", c.Docs[0])
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing review column",
			content: "text|sentiment|reviewid\nhello|positive|r1\n",
		},
		{
			name:    "missing sentiment column",
			content: "review|label|reviewid\nhello|positive|r1\n",
		},
		{
			name:    "short row",
			content: "review|sentiment|reviewid\nhello|positive\n",
		},
		{
			name:    "long row",
			content: "review|sentiment|reviewid\nhello|there|positive|r1\n",
		},
		{
			name:    "unknown sentiment",
			content: "review|sentiment|reviewid\nhello|meh|r1\n",
		},
		{
			name:    "empty file",
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataFile(t, tt.content)
			if _, err := Load(path, LoadOptions{}); err == nil {
				t.Errorf("Load() expected an error, got none")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.psv"), LoadOptions{}); err == nil {
		t.Errorf("Load() expected an error for a missing file")
	}
}
