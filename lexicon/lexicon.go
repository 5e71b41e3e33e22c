// Package lexicon answers whether a word belongs to the target language.
//
// The Lexicon interface is the dictionary oracle; Validator layers the
// punctuation symbols and a small allow-list of informal spellings on top of
// it, which is what annotation.Filter consults.
package lexicon

// Lexicon reports dictionary membership.
type Lexicon interface {
	KnownWord(word string) bool
}

// Func adapts a plain function to the Lexicon interface.
type Func func(word string) bool

// KnownWord calls f(word).
func (f Func) KnownWord(word string) bool { return f(word) }
