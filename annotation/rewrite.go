package annotation

import "strings"

// Rewrite applies triples to utterance in order and returns the utterance as
// the child said it (wrong) and as the adult target form (correct).
//
// Every occurrence of a triple's pattern is replaced. The noise-free Match is
// used when it occurs in the text, otherwise the verbatim Span. When an
// explanation triple is present the utterance is first normalized with
// NormalizeExplanations, since explanation spans refer to that form.
func Rewrite(utterance string, triples []Triple) (wrong, correct string) {
	if len(triples) == 0 {
		return utterance, utterance
	}

	base := utterance
	for _, t := range triples {
		if t.Kind == Explanation {
			base = NormalizeExplanations(utterance)
			break
		}
	}

	wrong, correct = base, base
	for _, t := range triples {
		wrong = replace(wrong, t, t.Wrong)
		correct = replace(correct, t, t.Correct)
	}
	return wrong, correct
}

func replace(text string, t Triple, with string) string {
	if t.Match != "" && strings.Contains(text, t.Match) {
		return strings.ReplaceAll(text, t.Match, with)
	}
	if t.Span != "" {
		return strings.ReplaceAll(text, t.Span, with)
	}
	return text
}
