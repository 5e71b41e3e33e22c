package annotation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minFormLength is the exclusive lower bound on the rune length of both the
// wrong and the correct form. Short forms produce too many false positives.
const minFormLength = 4

// WordValidator reports whether a word is an acceptable word of the target
// language. lexicon.Validator implements it.
type WordValidator interface {
	ValidWord(word string) bool
}

// Filter keeps only triples that look like genuine word errors: a wrong form
// that is not a valid word, paired with a single-token, lowercase correction.
type Filter struct {
	words WordValidator
}

// NewFilter returns a Filter that judges wrong forms with words.
func NewFilter(words WordValidator) *Filter {
	return &Filter{words: words}
}

// Keep reports whether t should be kept. The cheap shape checks run before
// the lexicon lookup.
func (f *Filter) Keep(t Triple) bool {
	if utf8.RuneCountInString(t.Correct) <= minFormLength {
		return false
	}
	if utf8.RuneCountInString(t.Wrong) <= minFormLength {
		return false
	}
	if len(strings.Fields(t.Correct)) != 1 {
		return false
	}
	if !isAlpha(t.Wrong) {
		return false
	}
	if first, _ := utf8.DecodeRuneInString(t.Correct); unicode.IsUpper(first) {
		return false
	}
	if t.Kind == Explanation && noiseVocalizations[t.Wrong] {
		return false
	}
	return !f.words.ValidWord(t.Wrong)
}

// Apply returns the triples Keep accepts, in their original order.
func (f *Filter) Apply(triples []Triple) []Triple {
	var kept []Triple
	for _, t := range triples {
		if f.Keep(t) {
			kept = append(kept, t)
		}
	}
	return kept
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
