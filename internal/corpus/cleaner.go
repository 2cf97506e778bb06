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
	"strings"

	godiacritics "gopkg.in/Regis24GmbH/go-diacritics.v2"
)

// Unicode punctuation and currency with stable ASCII equivalents.
var asciiReplacer = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'", "‛", "'",
	"“", `"`, "”", `"`, "„", `"`,
	"–", "-", "—", "-", "―", "-",
	"…", "...",
	"«", `"`, "»", `"`,
	" ", " ",
	"£", "GBP", "€", "EUR", "¥", "JPY",
	"¼", "1/4", "⅓", "1/3", "½", "1/2", "⅔", "2/3", "¾", "3/4",
	"×", "x",
)

// Clean returns a new corpus with every document text normalized to
// ASCII. The input corpus is left untouched.
func Clean(c *Corpus) *Corpus {
	out := &Corpus{Docs: make([]Document, len(c.Docs))}
	copy(out.Docs, c.Docs)
	for i := range out.Docs {
		out.Docs[i].Text = CleanText(out.Docs[i].Text)
	}
	return out
}

// CleanText collapses literal \n escape sequences, transliterates
// diacritics, maps common Unicode punctuation and currency symbols to
// ASCII, drops whatever non-ASCII remains, and squeezes whitespace.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, `\n`, " ")
	s = godiacritics.Normalize(s)
	s = asciiReplacer.Replace(s)
	s = stripNonASCII(s)
	return strings.Join(strings.Fields(s), " ")
}

func stripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
