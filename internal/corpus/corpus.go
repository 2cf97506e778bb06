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

// Sentiment labels carried by every document.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
)

// Document is one labeled review. ID is a surrogate assigned at load
// time; AuxID is the source-provided identifier and is not unique.
type Document struct {
	ID    int
	Text  string
	Label string
	AuxID string
}

// Corpus is an ordered collection of documents.
type Corpus struct {
	Docs []Document
}

func (c *Corpus) Len() int {
	return len(c.Docs)
}

// Labels returns the document id to sentiment label mapping.
func (c *Corpus) Labels() map[int]string {
	labels := make(map[int]string, len(c.Docs))
	for _, doc := range c.Docs {
		labels[doc.ID] = doc.Label
	}
	return labels
}

// Texts returns the document id to raw text mapping.
func (c *Corpus) Texts() map[int]string {
	texts := make(map[int]string, len(c.Docs))
	for _, doc := range c.Docs {
		texts[doc.ID] = doc.Text
	}
	return texts
}

// CountByLabel tallies documents per sentiment label.
func (c *Corpus) CountByLabel() map[string]int {
	counts := make(map[string]int)
	for _, doc := range c.Docs {
		counts[doc.Label]++
	}
	return counts
}
