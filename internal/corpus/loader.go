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

package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Reviews are pipe-separated with no quoting; a quote character inside
// a review is literal text.
const delimiter = "|"

// LoadOptions names the input columns to read.
type LoadOptions struct {
	TextColumn  string
	LabelColumn string
	IDColumn    string
}

func (o *LoadOptions) setDefaults() {
	if o.TextColumn == "" {
		o.TextColumn = "review"
	}
	if o.LabelColumn == "" {
		o.LabelColumn = "sentiment"
	}
	if o.IDColumn == "" {
		o.IDColumn = "reviewid"
	}
}

// Load reads a pipe-delimited review file into a corpus. The first
// line is the header; surrogate ids are assigned sequentially in file
// order. A missing column, a row with the wrong field count, or an
// unknown sentiment value aborts the load.
func Load(path string, opts LoadOptions) (*Corpus, error) {
	opts.setDefaults()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open data file: %v", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("unable to read header: %v", err)
		}
		return nil, fmt.Errorf("data file %s is empty", path)
	}
	header := strings.Split(scanner.Text(), delimiter)

	textIdx, err := findColumn(header, opts.TextColumn)
	if err != nil {
		return nil, err
	}
	labelIdx, err := findColumn(header, opts.LabelColumn)
	if err != nil {
		return nil, err
	}
	idIdx, err := findColumn(header, opts.IDColumn)
	if err != nil {
		return nil, err
	}

	corpus := &Corpus{}
	line := 1
	for scanner.Scan() {
		line++
		record := strings.Split(scanner.Text(), delimiter)
		if len(record) != len(header) {
			return nil, fmt.Errorf("line %d has %d fields, expected %d", line, len(record), len(header))
		}
		label := strings.ToLower(strings.TrimSpace(record[labelIdx]))
		if label != LabelPositive && label != LabelNegative {
			return nil, fmt.Errorf("line %d has unknown sentiment %q", line, record[labelIdx])
		}
		corpus.Docs = append(corpus.Docs, Document{
			ID:    len(corpus.Docs) + 1,
			Text:  record[textIdx],
			Label: label,
			AuxID: strings.TrimSpace(record[idIdx]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read %s: %v", path, err)
	}

	return corpus, nil
}

// findColumn resolves a named column to its index in the header.
func findColumn(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found in header", name)
}
