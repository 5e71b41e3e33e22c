package annotation

import (
	"regexp"
	"strings"
)

// word matches one Unicode word character. RE2's \w is ASCII only, which
// would split Dutch words such as "één" or "café".
const word = `[\p{L}\p{N}_]`

var (
	// prefix(group)suffix, applied to a single token.
	nonCompletionRe = regexp.MustCompile(`(.*)\((` + word + `*)\)(.*)`)

	// form [: correction], the correction may carry a ’s style suffix.
	replacementRe = regexp.MustCompile(`(` + word + `+(?:\(` + word + `\))?)\s*\[:\s*(` + word + `+(?:’` + word + `+)?)\s*\]`)

	// form [= gloss]
	explanationRe = regexp.MustCompile(`(` + word + `+)\s*\[=\s+([ \p{L}\p{N}_]+)\s*\]`)

	// "[=" must be followed by a space, but transcribers often leave it out.
	// "[=!" and "[=?" are different markers and are left alone.
	explanationSpaceRe = regexp.MustCompile(`\[=([^!? ])`)
)

// noiseVocalizations are sound effects glossed with [= ...] that are never
// word errors.
var noiseVocalizations = map[string]bool{
	"brbr":     true,
	"brbrbr":   true,
	"brbrbrbr": true,
}

// NormalizeExplanations inserts the missing space after "[=".
func NormalizeExplanations(utterance string) string {
	return explanationSpaceRe.ReplaceAllString(utterance, "[= ${1}")
}

// Explanations returns every form [= gloss] annotation in utterance. Spans
// refer to the normalized utterance (see NormalizeExplanations).
func Explanations(utterance string) []Triple {
	normalized := NormalizeExplanations(utterance)
	var triples []Triple
	for _, m := range explanationRe.FindAllStringSubmatch(normalized, -1) {
		triples = append(triples, newTriple(Explanation, m[0], m[1], m[2]))
	}
	return triples
}

// Replacements returns every form [: correction] annotation in utterance.
func Replacements(utterance string) []Triple {
	var triples []Triple
	for _, m := range replacementRe.FindAllStringSubmatch(utterance, -1) {
		triples = append(triples, newTriple(Replacement, m[0], m[1], m[2]))
	}
	return triples
}

// NonCompletions returns a triple for every whitespace separated token that
// contains a parenthesized part. Wrong is the token as spoken (Undo), Correct
// the intended word (Apply).
func NonCompletions(utterance string) []Triple {
	var triples []Triple
	for _, token := range strings.Fields(utterance) {
		if !nonCompletionRe.MatchString(token) {
			continue
		}
		cleaned := StripNoise(token)
		triples = append(triples, newTriple(NonCompletion, token, Undo(cleaned), Apply(cleaned)))
	}
	return triples
}

// Extract runs all extractors in a fixed order: explanations, replacements,
// non-completions.
func Extract(utterance string) []Triple {
	var triples []Triple
	triples = append(triples, Explanations(utterance)...)
	triples = append(triples, Replacements(utterance)...)
	triples = append(triples, NonCompletions(utterance)...)
	return triples
}

// Undo drops every parenthesized part of a token: "(s)laap" becomes "laap".
func Undo(token string) string {
	return fold(token, "${1}${3}")
}

// Apply keeps the parenthesized parts without the brackets: "(s)laap"
// becomes "slaap".
func Apply(token string) string {
	return fold(token, "${1}${2}${3}")
}

// fold substitutes until the token stops changing. Each round removes at
// least one pair of brackets, so len(token)/2 rounds always suffice.
func fold(token, template string) string {
	current := token
	for i := 0; i <= len(token)/2; i++ {
		next := nonCompletionRe.ReplaceAllString(current, template)
		if next == current {
			return current
		}
		current = next
	}
	return current
}
