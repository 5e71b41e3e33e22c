package lexicon

import "strings"

// Punctuation lists the symbols accepted as valid words on their own.
const Punctuation = `.,?!:;"'`

// DefaultAllowWords are informal Dutch spellings that dictionaries reject but
// transcripts use deliberately.
var DefaultAllowWords = []string{"z'n", "dees", "cool"}

// Validator decides whether a word counts as a valid word: known to the
// lexicon, a punctuation symbol, or on the allow-list.
type Validator struct {
	lexicon Lexicon
	allow   map[string]bool
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithAllowWords replaces the allow-list (default: DefaultAllowWords).
func WithAllowWords(words []string) ValidatorOption {
	return func(v *Validator) {
		v.allow = make(map[string]bool, len(words))
		for _, w := range words {
			v.allow[w] = true
		}
	}
}

// NewValidator wraps lex. A nil lex knows no words.
func NewValidator(lex Lexicon, opts ...ValidatorOption) *Validator {
	if lex == nil {
		lex = Func(func(string) bool { return false })
	}
	v := &Validator{lexicon: lex}
	WithAllowWords(DefaultAllowWords)(v)
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidWord reports whether word is valid.
func (v *Validator) ValidWord(word string) bool {
	if v.lexicon.KnownWord(word) {
		return true
	}
	if word != "" && strings.Contains(Punctuation, word) {
		return true
	}
	return v.allow[word]
}
