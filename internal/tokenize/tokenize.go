package tokenize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball"
)

// Unigrams splits text into word tokens.
func Unigrams(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("unable to tokenize document: %v", err)
	}
	tokens := doc.Tokens()
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, tok.Text)
	}
	return words, nil
}

// NGrams calls fn with every n-gram of words, joined by single spaces.
// No intermediate slice is built; calling it again restarts the
// sequence.
func NGrams(words []string, n int, fn func(string)) {
	if n == 1 {
		for _, w := range words {
			fn(w)
		}
		return
	}
	for i := 0; i+n <= len(words); i++ {
		fn(strings.Join(words[i:i+n], " "))
	}
}

// Span calls fn with every n-gram for n in [min, max].
func Span(words []string, min, max int, fn func(string)) {
	for n := min; n <= max; n++ {
		NGrams(words, n, fn)
	}
}

// Normalize applies the aggressive preprocessing of the full
// feature-building path: lowercase, digits and punctuation replaced by
// spaces, English stopwords and the given noise tokens removed, each
// survivor stemmed, whitespace squeezed. An empty result is valid.
func Normalize(text string, noise []string) string {
	text = strings.ToLower(text)
	text = stripDigitsAndPunct(text)
	text = stopwords.CleanString(text, "en", false)

	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if isNoise(w, noise) {
			continue
		}
		stemmed, err := snowball.Stem(w, "english", true)
		if err != nil || stemmed == "" {
			kept = append(kept, w)
			continue
		}
		kept = append(kept, stemmed)
	}
	return strings.Join(kept, " ")
}

// Digits and punctuation become spaces rather than vanishing, so
// "end.Start" stays two words.
func stripDigitsAndPunct(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isNoise(word string, noise []string) bool {
	for _, n := range noise {
		if word == n {
			return true
		}
	}
	return false
}
