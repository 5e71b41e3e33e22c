// Package annotation extracts wrong/correct word pairs from CHAT markup.
//
// Three markup conventions are recognised:
//
//	(s)laap          non-completion: the speaker omitted the bracketed part
//	broot [: brood]  replacement: the written form is corrected in brackets
//	koekje [= cookie] explanation: the form is glossed in brackets
//
// Each extractor is permissive; a Filter decides which extractions are
// genuine errors worth keeping, and Rewrite turns the kept triples into a
// "wrong" and a "correct" version of the utterance.
package annotation

import "strings"

// Kind identifies the markup convention a Triple was extracted from.
type Kind int

const (
	Explanation Kind = iota
	Replacement
	NonCompletion
)

func (k Kind) String() string {
	switch k {
	case Explanation:
		return "explanation"
	case Replacement:
		return "replacement"
	case NonCompletion:
		return "noncompletion"
	default:
		return "unknown"
	}
}

// Triple is one extracted annotation.
type Triple struct {
	Kind Kind
	// Span is the text exactly as matched in the utterance.
	Span string
	// Match is Span with noise characters removed. It is the pattern reported
	// in frequency tables.
	Match   string
	Wrong   string
	Correct string
}

// noise lists the markup fragments removed from every extracted span, in the
// order they are removed.
var noise = []string{".", "?", "‹", "@c", ">", "<"}

// StripNoise removes the characters . ? ‹ > < and the "@c" form marker.
func StripNoise(s string) string {
	for _, n := range noise {
		s = strings.ReplaceAll(s, n, "")
	}
	return s
}

func newTriple(kind Kind, span, wrong, correct string) Triple {
	return Triple{
		Kind:    kind,
		Span:    span,
		Match:   StripNoise(span),
		Wrong:   StripNoise(wrong),
		Correct: StripNoise(correct),
	}
}
